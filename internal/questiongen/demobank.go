package questiongen

import "github.com/schoolofai/drillcore/internal/difficulty"

// DemoBanks is the built-in offline content used by `drill --source
// static`. Three arithmetic topics with enough questions per tier to
// exercise the downgrade policy.
func DemoBanks() map[string]Bank {
	return map[string]Bank{
		"Fractions": {
			difficulty.Easy: []Question{
				nq("frac-e1", "What is 1/2 + 1/4?", "3/4", AnswerTypeFraction),
				nq("frac-e2", "What is 1/3 + 1/3?", "2/3", AnswerTypeFraction),
				nq("frac-e3", "What is 3/4 - 1/4?", "1/2", AnswerTypeFraction),
			},
			difficulty.Medium: []Question{
				nq("frac-m1", "What is 2/3 + 1/6?", "5/6", AnswerTypeFraction),
				nq("frac-m2", "What is 3/4 * 2/3?", "1/2", AnswerTypeFraction),
				nq("frac-m3", "What is 7/8 - 1/4?", "5/8", AnswerTypeFraction),
			},
			difficulty.Hard: []Question{
				nq("frac-h1", "What is 2/3 divided by 4/9?", "3/2", AnswerTypeFraction),
				nq("frac-h2", "A recipe uses 3/4 cup of flour. How many cups for 5 batches, as a fraction?", "15/4", AnswerTypeFraction),
				nq("frac-h3", "What is 5/6 + 3/8?", "29/24", AnswerTypeFraction),
			},
		},
		"Decimals": {
			difficulty.Easy: []Question{
				nq("dec-e1", "What is 0.5 + 0.25?", "0.75", AnswerTypeDecimal),
				nq("dec-e2", "What is 1.2 + 0.8?", "2", AnswerTypeDecimal),
				nq("dec-e3", "What is 3.5 - 1.5?", "2", AnswerTypeDecimal),
			},
			difficulty.Medium: []Question{
				nq("dec-m1", "What is 0.6 * 0.5?", "0.3", AnswerTypeDecimal),
				nq("dec-m2", "What is 7.2 / 0.9?", "8", AnswerTypeDecimal),
				nq("dec-m3", "What is 2.45 + 3.8?", "6.25", AnswerTypeDecimal),
			},
			difficulty.Hard: []Question{
				nq("dec-h1", "What is 0.125 * 0.4?", "0.05", AnswerTypeDecimal),
				nq("dec-h2", "A rope of 7.5 m is cut into pieces of 0.25 m. How many pieces?", "30", AnswerTypeInteger),
				nq("dec-h3", "What is 12.6 / 0.35?", "36", AnswerTypeInteger),
			},
		},
		"Percentages": {
			difficulty.Easy: []Question{
				nq("pct-e1", "What is 50% of 80?", "40", AnswerTypeInteger),
				nq("pct-e2", "What is 10% of 250?", "25", AnswerTypeInteger),
				nq("pct-e3", "What is 25% of 60?", "15", AnswerTypeInteger),
			},
			difficulty.Medium: []Question{
				nq("pct-m1", "What is 15% of 120?", "18", AnswerTypeInteger),
				nq("pct-m2", "A price of 200 rises by 30%. What is the new price?", "260", AnswerTypeInteger),
				nq("pct-m3", "What percent of 50 is 12?", "24", AnswerTypeInteger),
			},
			difficulty.Hard: []Question{
				nq("pct-h1", "A price drops 20% to 96. What was the original price?", "120", AnswerTypeInteger),
				nq("pct-h2", "A value rises 10% then falls 10%. What percent of the original remains?", "99", AnswerTypeInteger),
				nq("pct-h3", "What is 12.5% of 640?", "80", AnswerTypeInteger),
			},
		},
	}
}

func nq(id, text, answer string, t AnswerType) Question {
	return Question{
		ID:          id,
		Text:        text,
		Format:      FormatNumeric,
		Answer:      answer,
		AnswerType:  t,
		Explanation: "Work it through step by step and simplify the result.",
	}
}
