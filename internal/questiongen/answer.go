package questiongen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer judges the student's input against the correct answer.
//
// Normalization:
//   - whitespace trimmed, comparison case-insensitive
//   - equivalent fractions accepted ("2/4" matches "1/2")
//   - trailing zeros on decimals ignored ("3.50" matches "3.5")
//   - leading zeros on integers ignored ("007" matches "7")
//   - multiple choice accepts the option text or its 1-based index
func CheckAnswer(input string, q *Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if q.Format == FormatMultipleChoice {
		return checkChoice(input, q)
	}

	got, err := normalizeAnswer(input, q.AnswerType)
	if err != nil {
		return false
	}
	want, err := normalizeAnswer(q.Answer, q.AnswerType)
	if err != nil {
		return false
	}
	return got == want
}

func checkChoice(input string, q *Question) bool {
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Choices) {
		return strings.EqualFold(
			strings.TrimSpace(q.Choices[idx-1]),
			strings.TrimSpace(q.Answer),
		)
	}
	return strings.EqualFold(input, strings.TrimSpace(q.Answer))
}

func normalizeAnswer(answer string, t AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch t {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case AnswerTypeFraction:
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		if den < 0 {
			num, den = -num, -den
		}
		g := gcd(abs(num), den)
		return fmt.Sprintf("%d/%d", num/g, den/g), nil

	default:
		return strings.ToLower(answer), nil
	}
}

func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
