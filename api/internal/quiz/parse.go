package quiz

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// SourceError records a source file the builder had to skip. The corpus build
// itself keeps going: one broken archive file must not lose the rest.
type SourceError struct {
	File string
	Err  error
}

func (e *SourceError) Error() string { return fmt.Sprintf("%s: %v", e.File, e.Err) }
func (e *SourceError) Unwrap() error { return e.Err }

// Маркеры блоков в исходных архивах.
var (
	questionMarker = regexp.MustCompile(`^\n?Вопрос \d+:\n`)
	answerMarker   = regexp.MustCompile(`^Ответ:\n`)
)

// ParseDir builds the question→answer mapping from a directory of raw archive
// files. The archives are authored in KOI8-R, not UTF-8; each file is a sequence
// of paragraph blocks separated by a blank line. A "Вопрос N:" block starts a
// question, the next "Ответ:" block closes it; anything else (attributions,
// commentary) is ignored, as is a question with no answer block after it.
//
// Files are handled in directory-listing order (lexical, per os.ReadDir). When
// the same question text occurs twice, the later file wins.
func ParseDir(dir string) (map[string]string, []*SourceError, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read sources: %w", err)
	}

	answers := make(map[string]string)
	var skipped []*SourceError
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, &SourceError{File: path, Err: err})
			continue
		}
		decoded, err := charmap.KOI8R.NewDecoder().Bytes(raw)
		if err != nil {
			skipped = append(skipped, &SourceError{File: path, Err: fmt.Errorf("decode koi8-r: %w", err)})
			continue
		}
		parseBlocks(string(decoded), answers)
	}
	return answers, skipped, nil
}

func parseBlocks(content string, answers map[string]string) {
	var question string
	var haveQuestion bool

	for _, block := range strings.Split(content, "\n\n") {
		switch {
		case questionMarker.MatchString(block):
			if text, ok := afterColon(block); ok {
				question, haveQuestion = text, true
			}
		case answerMarker.MatchString(block):
			if answer, ok := afterColon(block); ok && haveQuestion {
				answers[question] = answer
			}
			question, haveQuestion = "", false
		}
	}
}

// afterColon collapses embedded newlines and returns the trimmed text after the
// block's first colon (the marker's own line).
func afterColon(block string) (string, bool) {
	_, rest, ok := strings.Cut(strings.ReplaceAll(block, "\n", " "), ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
