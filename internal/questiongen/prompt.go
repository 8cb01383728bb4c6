package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor creating practice questions for a student working through a lesson.

Rules:
- Generate a single question for the given topic at the given difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions and standard operators.
- The question must be self-contained and answerable without outside material.
- The answer must be correct and in simplest form (reduce fractions, no trailing zeros on decimals).
- The explanation should show the solution step by step.
- Choose "numeric" format for computation questions and "multiple_choice" for conceptual or comparison questions.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible mistakes.
- Difficulty "easy" means a single-step question, "medium" two steps or a small twist, "hard" multi-step reasoning.
- Never repeat a question from the "already asked" list, including trivial rewordings.`

// buildUserMessage renders the request into the prompt's user message.
func buildUserMessage(req Request, maxPrior int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(priorList(req.PriorTexts, maxPrior))

	return b.String()
}

// priorList numbers the most recent prior questions, capped at max.
func priorList(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
