package core

// FormattingSession holds the formatting currently selected for whichever
// compose or edit context is active. It starts at DefaultFormatting.
type FormattingSession struct {
	selection Formatting
}

// NewFormattingSession returns a session holding the default formatting.
func NewFormattingSession() *FormattingSession {
	return &FormattingSession{selection: DefaultFormatting()}
}

// SetAxis replaces one axis. Unknown axes or values are rejected with
// ErrInvalidFormatting and the selection is left untouched.
func (fs *FormattingSession) SetAxis(axis Axis, value string) error {
	next, err := fs.selection.With(axis, value)
	if err != nil {
		return err
	}
	fs.selection = next
	return nil
}

// Seed replaces the whole selection, e.g. with a stored note's formatting.
func (fs *FormattingSession) Seed(f Formatting) error {
	if err := f.Validate(); err != nil {
		return err
	}
	fs.selection = f
	return nil
}

// Reset restores the default formatting.
func (fs *FormattingSession) Reset() {
	fs.selection = DefaultFormatting()
}

// Selection returns the current formatting.
func (fs *FormattingSession) Selection() Formatting {
	return fs.selection
}
