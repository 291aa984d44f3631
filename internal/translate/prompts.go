package translate

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageName returns the English name of a BCP 47 code, or the code
// itself when it cannot be parsed.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// TranslationPrompt builds the instruction sent to LLM providers.
func TranslationPrompt(text, target string) string {
	return fmt.Sprintf(`Translate the following chatbot reply into %s.
Rules:
- Output only the translation, with no notes or quotes.
- Keep numbers, currency amounts, dates, phone numbers, e-mail addresses and URLs unchanged.
- Keep emoji and line breaks where they are.

Text:
%s`, languageName(target), text)
}
