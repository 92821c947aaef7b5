package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxFocusLength caps the number of characters in a single focus entry.
const MaxFocusLength = 500

// FocusEntry is one line of a user's focus journal.
type FocusEntry struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Text      string    `json:"focus_text" bson:"focus_text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NormalizeFocus trims the text and enforces the length limits.
func NormalizeFocus(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyFocus
	}
	if utf8.RuneCountInString(text) > MaxFocusLength {
		return "", ErrFocusTooLong
	}
	return text, nil
}
