// Package dateformat renders store timestamps the way the app shows them:
// date plus time, e.g. "18/07/2022 às 10:00".
package dateformat

import (
	"time"
)

type Locale string

const (
	LocalePTBR Locale = "pt-BR"
	LocaleEN   Locale = "en"
)

var layouts = map[Locale]string{
	LocalePTBR: "02/01/2006 às 15:04",
	LocaleEN:   "02/01/2006 at 15:04",
}

// Format renders t in loc. A nil location means UTC; an unknown locale falls
// back to pt-BR. The zero time renders as an empty string.
func Format(t time.Time, locale Locale, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	layout, ok := layouts[locale]
	if !ok {
		layout = layouts[LocalePTBR]
	}
	return t.In(loc).Format(layout)
}

// FormatPtr is Format for optional timestamps.
func FormatPtr(t *time.Time, locale Locale, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return Format(*t, locale, loc)
}
