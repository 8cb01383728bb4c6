package questiongen

import "github.com/schoolofai/drillcore/internal/llm"

// QuestionSchema constrains LLM question output.
var QuestionSchema = &llm.Schema{
	Name:        "drill-question",
	Description: "A single practice question with answer and worked solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the student, plain ASCII text",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"numeric", "multiple_choice"},
				"description": "How the student answers: type a number or pick from choices",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For numeric: the number as a string. For multiple choice: the text of the correct option.",
			},
			"answer_type": map[string]any{
				"type":        "string",
				"enum":        []any{"integer", "decimal", "fraction", "text"},
				"description": "The representation of the answer",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple_choice format, empty array for numeric",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Short step-by-step worked solution",
			},
		},
		"required":             []any{"question_text", "format", "answer", "answer_type", "choices", "explanation"},
		"additionalProperties": false,
	},
}
