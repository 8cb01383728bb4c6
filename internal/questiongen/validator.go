package questiongen

import (
	"fmt"
	"strconv"
	"strings"
)

// Validator checks a generated question before it reaches the student.
// Implementations must be stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier for error messages.
	Name() string

	// Validate returns nil when the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError says why a generated question was rejected.
type ValidationError struct {
	Validator string
	Message   string

	// Retryable hints that regenerating is likely to produce a valid
	// question.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks required fields, length limits and enum
// values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if q.Text == "" {
		return fail("question_text is empty")
	}
	if len(q.Text) > 500 {
		return fail("question_text exceeds 500 characters")
	}
	if q.Explanation == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > 1000 {
		return fail("explanation exceeds 1000 characters")
	}
	if q.Format != FormatNumeric && q.Format != FormatMultipleChoice {
		return fail(`format must be "numeric" or "multiple_choice"`)
	}
	switch q.AnswerType {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction:
	case AnswerTypeText:
		if q.Format != FormatMultipleChoice {
			return fail(`answer_type "text" requires multiple_choice format`)
		}
	default:
		return fail(`answer_type must be "integer", "decimal", "fraction", or "text"`)
	}
	return nil
}

// AnswerFormatValidator checks that the answer parses under its declared
// type and, for multiple choice, that the choice set is well formed.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if q.Format == FormatMultipleChoice {
		if len(q.Choices) != 4 {
			return fail(fmt.Sprintf("multiple choice needs exactly 4 choices, got %d", len(q.Choices)))
		}
		matches := 0
		for _, c := range q.Choices {
			if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(q.Answer)) {
				matches++
			}
		}
		if matches != 1 {
			return fail(fmt.Sprintf("answer must match exactly one choice, matched %d", matches))
		}
		return nil
	}

	if len(q.Choices) != 0 {
		return fail("numeric format must not carry choices")
	}

	switch q.AnswerType {
	case AnswerTypeInteger:
		if _, err := strconv.ParseInt(strings.TrimSpace(q.Answer), 10, 64); err != nil {
			return fail(fmt.Sprintf("answer %q is not an integer", q.Answer))
		}
	case AnswerTypeDecimal:
		if _, err := strconv.ParseFloat(strings.TrimSpace(q.Answer), 64); err != nil {
			return fail(fmt.Sprintf("answer %q is not a decimal", q.Answer))
		}
	case AnswerTypeFraction:
		if _, _, err := parseFraction(q.Answer); err != nil {
			return fail(fmt.Sprintf("answer %q is not a fraction", q.Answer))
		}
	}
	return nil
}
