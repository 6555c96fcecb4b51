package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are the registry date formats seen most often, tried before
// falling back to natural date parsing.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
	"02.01.2006 15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"2006.01.02",
	"2006.1.2",
	"2006.01.02 15:04:05",
	"20060102",
	"02-Jan-2006",
	"02-Jan-2006 15:04:05 MST",
	"2006-Jan-02",
	"January 2 2006",
	"Jan 2 2006",
	"Mon Jan 2 2006",
	time.UnixDate,
	time.ANSIC,
}

var (
	embeddedDate = regexp.MustCompile(
		`(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})` +
			`(?:[ T](\d{1,2}:\d{2}(?::\d{2}(?:\.\d+)?)?)(?:[ ]?(Z|[+-]\d{2}:?\d{2}))?)?`)
	embeddedLayout = []string{
		"2006-1-2T15:04:05Z07:00",
		"2006-1-2T15:04Z07:00",
		"2006-1-2T15:04:05",
		"2006-1-2T15:04",
		"2006-1-2",
	}
)

// NormalizeDate turns a matched date substring into a timestamp. When no
// format fits, the input is kept as a raw date.
func NormalizeDate(raw string) Date {
	s := strings.ReplaceAll(raw, ". ", "")
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if s == "" {
		return RawDate(raw)
	}

	if t, ok := parseLayouts(s, dateLayouts); ok {
		return Timestamp(t)
	}
	if t, ok := parseEmbedded(s); ok {
		return Timestamp(t)
	}
	if t, ok := parseNatural(s); ok {
		return Timestamp(t)
	}
	return RawDate(raw)
}

func parseLayouts(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		// Zone abbreviations such as JST get a zero offset.
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseEmbedded picks the first numeric date out of descriptive text such as
// "2001/03/22 (JST)" or "before 2020-01-15". A numeric offset directly after
// the time is kept.
func parseEmbedded(s string) (time.Time, bool) {
	m := embeddedDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	token := m[1] + "-" + m[2] + "-" + m[3]
	if m[4] != "" {
		token += "T" + m[4]
	}
	if zone := m[5]; zone != "" {
		if len(zone) == 5 {
			zone = zone[:3] + ":" + zone[3:]
		}
		token += zone
	}
	return parseLayouts(token, embeddedLayout)
}

func parseNatural(s string) (t time.Time, ok bool) {
	// dateparse can panic on malformed input.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
