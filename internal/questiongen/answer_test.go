package questiongen

import "testing"

func numericQ(answer string, t AnswerType) *Question {
	return &Question{Text: "q", Format: FormatNumeric, Answer: answer, AnswerType: t}
}

func TestCheckAnswer_Integer(t *testing.T) {
	q := numericQ("7", AnswerTypeInteger)
	tests := []struct {
		input string
		want  bool
	}{
		{"7", true},
		{" 7 ", true},
		{"007", true},
		{"8", false},
		{"", false},
		{"seven", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, q); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	q := numericQ("3.5", AnswerTypeDecimal)
	if !CheckAnswer("3.50", q) {
		t.Error("trailing zeros should be ignored")
	}
	if !CheckAnswer("3.5", q) {
		t.Error("exact match rejected")
	}
	if CheckAnswer("3.05", q) {
		t.Error("wrong decimal accepted")
	}
}

func TestCheckAnswer_FractionEquivalence(t *testing.T) {
	q := numericQ("1/2", AnswerTypeFraction)
	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{"3/6", true},
		{"-1/-2", true},
		{"1/3", false},
		{"1/0", false},
		{"half", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, q); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := &Question{
		Text:       "Which fraction is larger?",
		Format:     FormatMultipleChoice,
		Answer:     "3/4",
		AnswerType: AnswerTypeText,
		Choices:    []string{"2/3", "3/4", "1/2", "5/8"},
	}
	if !CheckAnswer("3/4", q) {
		t.Error("choice text rejected")
	}
	if !CheckAnswer("2", q) {
		t.Error("1-based index of correct choice rejected")
	}
	if CheckAnswer("1", q) {
		t.Error("index of wrong choice accepted")
	}
	if CheckAnswer("5", q) {
		t.Error("out-of-range index accepted")
	}
}
