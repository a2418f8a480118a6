package quiz

import "strings"

// CheckAnswer reports whether a submitted free-text answer is accepted for a
// canonical answer. The canonical text is stripped of clarifications and cut at
// the first period (answers are authored as "Term. Optional elaboration."), then
// compared case-insensitively. No edit distance, no partial credit.
func CheckAnswer(submitted, canonical string) bool {
	if strings.TrimSpace(submitted) == "" {
		// пустой ввод — просто неверный ответ
		return false
	}
	core, _, _ := strings.Cut(StripClarifications(canonical), ".")
	return strings.EqualFold(submitted, core)
}
