package quiz

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
)

// Bank is the in-memory question bank: question text mapped to the canonical
// answer text. Built once at startup and treated as immutable afterwards, so it
// is safe to share across event loops without locking.
type Bank struct {
	answers   map[string]string
	questions []string
}

// NewBank copies the mapping into an immutable bank. The question list is kept
// sorted so random selection is reproducible with a seeded source.
func NewBank(answers map[string]string) *Bank {
	b := &Bank{
		answers:   make(map[string]string, len(answers)),
		questions: make([]string, 0, len(answers)),
	}
	for q, a := range answers {
		b.answers[q] = a
		b.questions = append(b.questions, q)
	}
	sort.Strings(b.questions)
	return b
}

func (b *Bank) Len() int { return len(b.questions) }

// Answer returns the canonical (unstripped) answer for a question.
func (b *Bank) Answer(question string) (string, bool) {
	a, ok := b.answers[question]
	return a, ok
}

// Random picks a question uniformly, with replacement: nothing prevents the
// same question from coming up twice in a row. A nil source falls back to the
// package-global one.
func (b *Bank) Random(r *rand.Rand) (string, bool) {
	if len(b.questions) == 0 {
		return "", false
	}
	if r != nil {
		return b.questions[r.Intn(len(b.questions))], true
	}
	return b.questions[rand.Intn(len(b.questions))], true
}

// LoadBank reads a bank previously written by SaveBank (or the offline builder).
func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	var answers map[string]string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return NewBank(answers), nil
}

// SaveBank serializes the mapping as indented UTF-8 JSON, Unicode left
// unescaped. Round-trip through LoadBank is lossless for arbitrary text.
func SaveBank(path string, answers map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save bank: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(answers); err != nil {
		f.Close()
		return fmt.Errorf("save bank %s: %w", path, err)
	}
	return f.Close()
}
