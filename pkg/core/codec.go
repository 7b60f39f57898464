package core

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// record is the persisted shape of a Note.
type record struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	CreatedAt  string     `json:"createdAt"`
	Formatting Formatting `json:"formatting"`
}

// Encode serializes a collection into the persisted JSON array.
// Order is preserved; an empty collection encodes as "[]".
func Encode(notes []Note) (string, error) {
	records := make([]record, len(notes))
	for i, n := range notes {
		records[i] = toRecord(n)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode notes: %w", err)
	}
	return string(data), nil
}

// MarshalJSON writes a single note in its persisted shape.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(toRecord(n))
}

func toRecord(n Note) record {
	return record{
		ID:         n.ID,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339Nano),
		Formatting: n.Formatting,
	}
}

// UnmarshalJSON reads a single note in its persisted shape, applying the
// same checks as Decode.
func (n *Note) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	note, err := r.note()
	if err != nil {
		return err
	}
	*n = note
	return nil
}

// note validates r against the Note invariants.
func (r record) note() (Note, error) {
	if r.ID == "" {
		return Note{}, fmt.Errorf("record has no id")
	}
	if utf8.RuneCountInString(r.Content) > MaxContentLength {
		return Note{}, fmt.Errorf("record %q: content exceeds %d characters", r.ID, MaxContentLength)
	}
	if err := r.Formatting.Validate(); err != nil {
		return Note{}, fmt.Errorf("record %q: %w", r.ID, err)
	}
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("record %q: invalid createdAt: %w", r.ID, err)
	}
	return Note{
		ID:         r.ID,
		Content:    r.Content,
		CreatedAt:  created,
		Formatting: r.Formatting,
	}, nil
}

// Decode parses a persisted JSON array back into a collection.
// Any record violating a Note invariant makes the whole value invalid.
func Decode(data string) ([]Note, error) {
	var records []record
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("invalid notes payload: %w", err)
	}

	notes := make([]Note, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		n, err := r.note()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = struct{}{}
		notes = append(notes, n)
	}
	return notes, nil
}
