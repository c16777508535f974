package coach

import (
	"fmt"
	"strings"

	"github.com/wortschatz/wortschatz/internal/vocab"
)

const systemPrompt = `You are a friendly German teacher helping an English speaker memorise vocabulary. Keep answers short and concrete.`

func buildUserMessage(w vocab.Word) string {
	var b strings.Builder

	fmt.Fprintf(&b, "German: %s\n", w.German)
	fmt.Fprintf(&b, "English: %s\n", w.English)
	if w.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", w.Category)
	}
	for _, d := range w.Details() {
		fmt.Fprintf(&b, "%s: %s\n", d.Label, d.Value)
	}

	b.WriteString(`
Instructions:
1. Write one new German example sentence that uses the word exactly as given. Do not repeat the example above.
2. Translate the sentence into English.
3. Give a one-sentence mnemonic (sound-alike, image or story) that links the German word to its English meaning.`)

	return b.String()
}
