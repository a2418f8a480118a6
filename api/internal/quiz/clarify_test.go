package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripClarifications(t *testing.T) {
	t.Run("no brackets is a no-op", func(t *testing.T) {
		assert.Equal(t, "Пушкин", StripClarifications("Пушкин"))
	})
	t.Run("leading parenthetical removed", func(t *testing.T) {
		assert.Equal(t, "Пушкин", StripClarifications("(о нём идёт речь) Пушкин"))
	})
	t.Run("leading square bracket removed", func(t *testing.T) {
		assert.Equal(t, "42", StripClarifications("[уточнение] 42"))
	})
	t.Run("leading curly bracket removed", func(t *testing.T) {
		assert.Equal(t, "ответ", StripClarifications("{вариант} ответ"))
	})
	t.Run("internal bracket truncates the tail", func(t *testing.T) {
		assert.Equal(t, "Пушкин", StripClarifications("Пушкин (великий поэт)"))
		assert.Equal(t, "42", StripClarifications("42 [the answer]"))
	})
	t.Run("leading and internal brackets combined", func(t *testing.T) {
		assert.Equal(t, "42", StripClarifications("[уточнение] 42 (примечание)"))
	})
	t.Run("leading bracket without closer truncates to empty", func(t *testing.T) {
		// первый проход ничего не делает, второй срезает по скобке
		assert.Equal(t, "", StripClarifications("(незакрытая скобка и текст"))
	})
	t.Run("whitespace trimmed", func(t *testing.T) {
		assert.Equal(t, "ответ", StripClarifications("  ответ  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, s := range []string{
			"Пушкин",
			"(о нём идёт речь) Пушкин",
			"[уточнение] 42 (примечание)",
			"Пушкин (великий поэт)",
			"42. Ответ на главный вопрос.",
			"",
		} {
			once := StripClarifications(s)
			assert.Equal(t, once, StripClarifications(once), "input %q", s)
		}
	})
}
