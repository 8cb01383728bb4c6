package questiongen

import (
	"strings"
	"testing"
)

func validNumeric() *Question {
	return &Question{
		Text:        "What is 6 * 7?",
		Format:      FormatNumeric,
		Answer:      "42",
		AnswerType:  AnswerTypeInteger,
		Explanation: "Multiply 6 by 7.",
	}
}

func validChoice() *Question {
	return &Question{
		Text:        "Which is largest?",
		Format:      FormatMultipleChoice,
		Answer:      "0.9",
		AnswerType:  AnswerTypeText,
		Choices:     []string{"0.19", "0.9", "0.099", "0.85"},
		Explanation: "Compare the tenths digit first.",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(validNumeric()); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	q := validNumeric()
	q.Text = ""
	if v.Validate(q) == nil {
		t.Error("empty text accepted")
	}

	q = validNumeric()
	q.Text = strings.Repeat("x", 501)
	if v.Validate(q) == nil {
		t.Error("oversized text accepted")
	}

	q = validNumeric()
	q.Explanation = ""
	if v.Validate(q) == nil {
		t.Error("missing explanation accepted")
	}

	q = validNumeric()
	q.Format = "essay"
	if v.Validate(q) == nil {
		t.Error("unknown format accepted")
	}

	q = validNumeric()
	q.AnswerType = AnswerTypeText
	if v.Validate(q) == nil {
		t.Error("text answers must be multiple choice")
	}
}

func TestAnswerFormatValidator(t *testing.T) {
	v := &AnswerFormatValidator{}

	if err := v.Validate(validNumeric()); err != nil {
		t.Fatalf("valid numeric rejected: %v", err)
	}
	if err := v.Validate(validChoice()); err != nil {
		t.Fatalf("valid choice rejected: %v", err)
	}

	q := validChoice()
	q.Choices = q.Choices[:3]
	if v.Validate(q) == nil {
		t.Error("three choices accepted")
	}

	q = validChoice()
	q.Answer = "0.5"
	if v.Validate(q) == nil {
		t.Error("answer missing from choices accepted")
	}

	q = validChoice()
	q.Choices = []string{"0.9", "0.9", "0.1", "0.2"}
	if v.Validate(q) == nil {
		t.Error("duplicate correct choices accepted")
	}

	q = validNumeric()
	q.Answer = "forty-two"
	if v.Validate(q) == nil {
		t.Error("non-numeric integer answer accepted")
	}

	q = validNumeric()
	q.Choices = []string{"42"}
	if v.Validate(q) == nil {
		t.Error("numeric question with choices accepted")
	}

	q = validNumeric()
	q.AnswerType = AnswerTypeFraction
	q.Answer = "3/4"
	if err := v.Validate(q); err != nil {
		t.Errorf("valid fraction rejected: %v", err)
	}
}
