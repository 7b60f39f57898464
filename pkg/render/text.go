package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aretw0/scribe/pkg/core"
)

// ApplyCase transforms s according to tc.
func ApplyCase(s string, tc core.TextCase) string {
	switch tc {
	case core.CaseUpper:
		return cases.Upper(language.Und).String(s)
	case core.CaseLower:
		return cases.Lower(language.Und).String(s)
	case core.CaseCapitalize:
		return cases.Title(language.Und, cases.NoLower).String(s)
	case core.CaseNormal:
		return s
	default:
		return s
	}
}
