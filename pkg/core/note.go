package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength is the upper bound, in characters, for a note's content
// and for any in-progress compose or edit buffer.
const MaxContentLength = 500

// Note is the central entity of the domain.
// It is created only through Store.Create and replaced as a whole by Store.Update.
type Note struct {
	ID         string
	Content    string
	CreatedAt  time.Time
	Formatting Formatting
}

// TruncateContent cuts s to at most MaxContentLength characters. Invalid
// UTF-8 sequences are replaced with U+FFFD so the result survives encoding.
func TruncateContent(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if utf8.RuneCountInString(s) <= MaxContentLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxContentLength {
			return s[:i]
		}
		n++
	}
	return s
}
