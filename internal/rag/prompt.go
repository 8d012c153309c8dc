package rag

import (
	"fmt"
	"strings"
)

// passageSeparator visibly delimits retrieved passages so the model can
// tell where one ends and the next begins.
const passageSeparator = "\n\n---\n\n"

// noContextPlaceholder stands in for the context block when retrieval
// returns nothing, so the model never sees an empty section.
const noContextPlaceholder = "No context found."

// resolutionPolicy is a fixed contract emitted verbatim in front of every
// prompt. It orders the sources of truth the model may draw from.
const resolutionPolicy = `Answer the question using the context below.
Resolution policy:
- Lines beginning with "RULE:" are binding and take precedence over all other context.
- Other context lines take precedence over your own general knowledge.
- Use your own knowledge only when the context is silent.
- When rules conflict, prefer the more specific rule.
- If the context is ambiguous and the ambiguity cannot be resolved, state the uncertainty in your answer instead of guessing.`

// BuildPrompt combines the resolution policy, the retrieved passages, and
// the verbatim question into a single generation prompt.
func BuildPrompt(question string, passages []string) string {
	contextBlock := noContextPlaceholder
	if len(passages) > 0 {
		contextBlock = strings.Join(passages, passageSeparator)
	}
	return fmt.Sprintf("%s\n\nContext:\n%s\n\nQuestion: %s\nAnswer:", resolutionPolicy, contextBlock, question)
}
