package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinWords is the smallest word list a layout request may carry.
const MinWords = 2

// DefaultMaxWords caps the word list so the n! search stays interactive.
const DefaultMaxWords = 8

// NormalizeWords trims and upper-cases every entry and drops the ones left
// empty. The input slice is not modified.
func NormalizeWords(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// ValidateWord checks a single normalized word against the grid size.
//
// The validation rules:
//   - No empty words
//   - Letters only: no whitespace, digits or punctuation
//   - At most gridSize letters, so the word fits on the grid
func ValidateWord(word string, gridSize int) error {
	if word == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	for _, r := range word {
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "name %q contains whitespace", word)
		}
		if !unicode.IsLetter(r) {
			return New(ErrCodeInvalidInput, "name %q may only contain letters", word)
		}
	}

	if n := utf8.RuneCountInString(word); n > gridSize {
		return New(ErrCodeWordTooLong, "name %q has %d letters, the grid holds %d", word, n, gridSize)
	}

	return nil
}

// ValidateWords checks a normalized word list before it reaches the layout
// search. maxWords <= 0 disables the upper bound.
func ValidateWords(words []string, gridSize, maxWords int) error {
	if len(words) < MinWords {
		return New(ErrCodeTooFewWords, "Enter at least %d names.", MinWords)
	}

	if maxWords > 0 && len(words) > maxWords {
		return New(ErrCodeTooManyWords, "too many names: %d (max %d)", len(words), maxWords)
	}

	for _, w := range words {
		if err := ValidateWord(w, gridSize); err != nil {
			return err
		}
	}

	return nil
}
