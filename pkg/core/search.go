package core

import "strings"

// EmptyState tells a presentation layer which placeholder, if any, to show.
type EmptyState int

const (
	EmptyNone      EmptyState = iota // at least one note is visible
	EmptyNoNotes                     // the collection itself is empty
	EmptyNoMatches                   // notes exist but none match the term
)

func (e EmptyState) String() string {
	switch e {
	case EmptyNoNotes:
		return "no notes yet"
	case EmptyNoMatches:
		return "no matches"
	default:
		return ""
	}
}

// SearchResult is the visible subset of a collection for one search term.
type SearchResult struct {
	Term    string
	Notes   []Note
	Total   int
	Matched int
}

// EmptyState reports why Notes is empty, if it is.
func (r SearchResult) EmptyState() EmptyState {
	switch {
	case r.Total == 0:
		return EmptyNoNotes
	case r.Matched == 0:
		return EmptyNoMatches
	default:
		return EmptyNone
	}
}

// Filter returns the notes whose content contains term, ignoring case, in their original order.
func Filter(notes []Note, term string) []Note {
	if term == "" {
		return append([]Note(nil), notes...)
	}
	needle := strings.ToLower(term)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Content), needle) {
			out = append(out, n)
		}
	}
	return out
}

// Search runs Filter and records the counts.
func Search(notes []Note, term string) SearchResult {
	matched := Filter(notes, term)
	return SearchResult{
		Term:    term,
		Notes:   matched,
		Total:   len(notes),
		Matched: len(matched),
	}
}
