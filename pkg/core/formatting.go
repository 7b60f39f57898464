package core

import (
	"fmt"
)

// FontFamily is the typeface axis of a note's formatting.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// FontSize is the size axis of a note's formatting.
type FontSize string

const (
	SizeSmall  FontSize = "small"
	SizeNormal FontSize = "normal"
	SizeLarge  FontSize = "large"
	SizeXLarge FontSize = "xlarge"
)

// TextCase is the letter-case axis of a note's formatting.
type TextCase string

const (
	CaseNormal     TextCase = "normal-case"
	CaseUpper      TextCase = "uppercase"
	CaseLower      TextCase = "lowercase"
	CaseCapitalize TextCase = "capitalize"
)

// TextAlign is the alignment axis of a note's formatting.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// Axis names one of the four formatting dimensions.
type Axis string

const (
	AxisFontFamily Axis = "fontFamily"
	AxisFontSize   Axis = "fontSize"
	AxisTextCase   Axis = "textCase"
	AxisTextAlign  Axis = "textAlign"
)

var (
	fontFamilies = []FontFamily{FontSans, FontSerif, FontMono}
	fontSizes    = []FontSize{SizeSmall, SizeNormal, SizeLarge, SizeXLarge}
	textCases    = []TextCase{CaseNormal, CaseUpper, CaseLower, CaseCapitalize}
	textAligns   = []TextAlign{AlignLeft, AlignCenter, AlignRight, AlignJustify}
	axes         = []Axis{AxisFontFamily, AxisFontSize, AxisTextCase, AxisTextAlign}
)

// FontFamilies returns every valid FontFamily in display order.
func FontFamilies() []FontFamily { return append([]FontFamily(nil), fontFamilies...) }

// FontSizes returns every valid FontSize in display order.
func FontSizes() []FontSize { return append([]FontSize(nil), fontSizes...) }

// TextCases returns every valid TextCase in display order.
func TextCases() []TextCase { return append([]TextCase(nil), textCases...) }

// TextAligns returns every valid TextAlign in display order.
func TextAligns() []TextAlign { return append([]TextAlign(nil), textAligns...) }

// Axes returns the four formatting axes.
func Axes() []Axis { return append([]Axis(nil), axes...) }

func (f FontFamily) Valid() bool { return contains(fontFamilies, f) }
func (f FontSize) Valid() bool   { return contains(fontSizes, f) }
func (c TextCase) Valid() bool   { return contains(textCases, c) }
func (a TextAlign) Valid() bool  { return contains(textAligns, a) }
func (a Axis) Valid() bool       { return contains(axes, a) }

func (f FontFamily) String() string { return string(f) }
func (f FontSize) String() string   { return string(f) }
func (c TextCase) String() string   { return string(c) }
func (a TextAlign) String() string  { return string(a) }
func (a Axis) String() string       { return string(a) }

// MarshalText implements encoding.TextMarshaler, refusing values outside the enumeration.
func (f FontFamily) MarshalText() ([]byte, error) { return marshalEnum(AxisFontFamily, f) }
func (f FontSize) MarshalText() ([]byte, error)   { return marshalEnum(AxisFontSize, f) }
func (c TextCase) MarshalText() ([]byte, error)   { return marshalEnum(AxisTextCase, c) }
func (a TextAlign) MarshalText() ([]byte, error)  { return marshalEnum(AxisTextAlign, a) }

// UnmarshalText implements encoding.TextUnmarshaler, refusing values outside the enumeration.
func (f *FontFamily) UnmarshalText(b []byte) error {
	v, err := ParseFontFamily(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *FontSize) UnmarshalText(b []byte) error {
	v, err := ParseFontSize(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (c *TextCase) UnmarshalText(b []byte) error {
	v, err := ParseTextCase(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (a *TextAlign) UnmarshalText(b []byte) error {
	v, err := ParseTextAlign(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseFontFamily validates s against the FontFamily enumeration.
func ParseFontFamily(s string) (FontFamily, error) { return parseEnum(AxisFontFamily, fontFamilies, s) }

// ParseFontSize validates s against the FontSize enumeration.
func ParseFontSize(s string) (FontSize, error) { return parseEnum(AxisFontSize, fontSizes, s) }

// ParseTextCase validates s against the TextCase enumeration.
func ParseTextCase(s string) (TextCase, error) { return parseEnum(AxisTextCase, textCases, s) }

// ParseTextAlign validates s against the TextAlign enumeration.
func ParseTextAlign(s string) (TextAlign, error) { return parseEnum(AxisTextAlign, textAligns, s) }

// ParseAxis validates s against the set of formatting axes.
func ParseAxis(s string) (Axis, error) {
	a := Axis(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: unknown axis %q", ErrInvalidFormatting, s)
	}
	return a, nil
}

// AxisValues returns the valid values of an axis as strings.
func AxisValues(a Axis) []string {
	switch a {
	case AxisFontFamily:
		return toStrings(fontFamilies)
	case AxisFontSize:
		return toStrings(fontSizes)
	case AxisTextCase:
		return toStrings(textCases)
	case AxisTextAlign:
		return toStrings(textAligns)
	}
	return nil
}

// Formatting is the per-note presentation snapshot.
type Formatting struct {
	FontFamily FontFamily `json:"fontFamily" yaml:"fontFamily"`
	FontSize   FontSize   `json:"fontSize" yaml:"fontSize"`
	TextCase   TextCase   `json:"textCase" yaml:"textCase"`
	TextAlign  TextAlign  `json:"textAlign" yaml:"textAlign"`
}

// DefaultFormatting returns the formatting applied when nothing has been selected.
func DefaultFormatting() Formatting {
	return Formatting{
		FontFamily: FontSans,
		FontSize:   SizeNormal,
		TextCase:   CaseNormal,
		TextAlign:  AlignLeft,
	}
}

// Validate reports the first axis holding a value outside its enumeration.
func (f Formatting) Validate() error {
	switch {
	case !f.FontFamily.Valid():
		return invalidValue(AxisFontFamily, string(f.FontFamily))
	case !f.FontSize.Valid():
		return invalidValue(AxisFontSize, string(f.FontSize))
	case !f.TextCase.Valid():
		return invalidValue(AxisTextCase, string(f.TextCase))
	case !f.TextAlign.Valid():
		return invalidValue(AxisTextAlign, string(f.TextAlign))
	}
	return nil
}

// With returns a copy of f with one axis replaced.
// The original is returned unchanged alongside the error when axis or value is invalid.
func (f Formatting) With(axis Axis, value string) (Formatting, error) {
	switch axis {
	case AxisFontFamily:
		v, err := ParseFontFamily(value)
		if err != nil {
			return f, err
		}
		f.FontFamily = v
	case AxisFontSize:
		v, err := ParseFontSize(value)
		if err != nil {
			return f, err
		}
		f.FontSize = v
	case AxisTextCase:
		v, err := ParseTextCase(value)
		if err != nil {
			return f, err
		}
		f.TextCase = v
	case AxisTextAlign:
		v, err := ParseTextAlign(value)
		if err != nil {
			return f, err
		}
		f.TextAlign = v
	default:
		return f, fmt.Errorf("%w: unknown axis %q", ErrInvalidFormatting, axis)
	}
	return f, nil
}

// Get returns the value of one axis as a string.
func (f Formatting) Get(axis Axis) string {
	switch axis {
	case AxisFontFamily:
		return string(f.FontFamily)
	case AxisFontSize:
		return string(f.FontSize)
	case AxisTextCase:
		return string(f.TextCase)
	case AxisTextAlign:
		return string(f.TextAlign)
	}
	return ""
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func toStrings[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}

func parseEnum[T ~string](axis Axis, set []T, s string) (T, error) {
	v := T(s)
	if !contains(set, v) {
		var zero T
		return zero, invalidValue(axis, s)
	}
	return v, nil
}

func marshalEnum[T ~string](axis Axis, v T) ([]byte, error) {
	if _, err := parseEnum(axis, enumSet[T](axis), string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func enumSet[T ~string](axis Axis) []T {
	values := AxisValues(axis)
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func invalidValue(axis Axis, value string) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidFormatting, value, axis)
}
