package parser

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultDelimiter separates a keyword from its value in most registries.
	DefaultDelimiter = ":"

	// SpaceOrTab is the default pattern placed between a prefix and its value.
	SpaceOrTab = `[ \t]*`

	// RestOfLine is the default value pattern: the remainder of the line,
	// holding at least one non-space character.
	RestOfLine = `[^\n]*\S`

	lineBreak = `[ \t]*\r?\n[ \t]*`
)

// KeywordOptions controls how CompileKeyword turns a keyword into a prefix.
type KeywordOptions struct {
	// CaseSensitive disables case folding of the keyword.
	CaseSensitive bool
	// Anywhere lets the keyword start mid-line instead of at line start.
	Anywhere bool
	// Delimiter is the literal expected after the keyword. Empty means none.
	Delimiter string
}

// DefaultKeywordOptions matches "Keyword:" case-insensitively at line start.
var DefaultKeywordOptions = KeywordOptions{Delimiter: DefaultDelimiter}

// Pattern finds single-line values following a prefix. It is immutable and
// safe for concurrent use.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern builds a pattern from a prefix expression, a delimiter
// expression placed between prefix and value, and a target expression for
// the value itself. An empty target selects RestOfLine. Leading blanks
// before the value are always skipped.
func NewPattern(prefix, delimiter, target string) (*Pattern, error) {
	if target == "" {
		target = RestOfLine
	}
	re, err := regexp.Compile("(?m)" + prefix + delimiter + SpaceOrTab + "(" + target + ")")
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", prefix, err)
	}
	return &Pattern{re: re}, nil
}

// MustPattern is like NewPattern but panics on an invalid expression. It is
// meant for rule tables built at init time.
func MustPattern(prefix, delimiter, target string) *Pattern {
	p, err := NewPattern(prefix, delimiter, target)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileKeyword turns a keyword into a pattern capturing the rest of the line.
func CompileKeyword(keyword string, opts KeywordOptions) *Pattern {
	prefix := regexp.QuoteMeta(keyword)
	if !opts.CaseSensitive {
		prefix = "(?i:" + prefix + ")"
	}
	if !opts.Anywhere {
		prefix = "^" + prefix
	}
	prefix += SpaceOrTab
	if opts.Delimiter != "" {
		prefix += regexp.QuoteMeta(opts.Delimiter)
	}
	return MustPattern(prefix, SpaceOrTab, "")
}

// CompileBlock matches a block of label lines, e.g. "Registrar:" followed by
// "Name:", with the value either inline after the last label or alone on
// the next line.
func CompileBlock(labels ...string) *Pattern {
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = regexp.QuoteMeta(label)
	}
	prefix := strings.Join(quoted, lineBreak) + `[ \t]*(?:\r?\n)?`
	return MustPattern(prefix, SpaceOrTab, "")
}

// FindFirst returns the value of the first match in text.
func (p *Pattern) FindFirst(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if v := cleanValue(m[1]); v != "" {
		return v, true
	}
	// Custom targets may capture blanks; keep looking past them.
	for _, m := range p.re.FindAllStringSubmatch(text, -1)[1:] {
		if v := cleanValue(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

// FindAll returns the values of every non-overlapping match, in text order.
func (p *Pattern) FindAll(text string) []string {
	values := []string{}
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		if v := cleanValue(m[1]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (p *Pattern) String() string {
	return p.re.String()
}

// cleanValue keeps a capture on a single line.
func cleanValue(v string) string {
	if i := strings.IndexByte(v, '\n'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// Rule is an ordered list of aliases for one field. The first alias that
// matches wins; later aliases are not consulted.
type Rule []*Pattern

// Keywords compiles each keyword with opts, keeping their order.
func Keywords(opts KeywordOptions, keywords ...string) Rule {
	rule := make(Rule, len(keywords))
	for i, kw := range keywords {
		rule[i] = CompileKeyword(kw, opts)
	}
	return rule
}

// First returns the value found by the first matching alias.
func (r Rule) First(text string) (string, bool) {
	for _, p := range r {
		if v, ok := p.FindFirst(text); ok {
			return v, true
		}
	}
	return "", false
}

// All returns the values of the first alias that matches at least once.
func (r Rule) All(text string) []string {
	for _, p := range r {
		if values := p.FindAll(text); len(values) > 0 {
			return values
		}
	}
	return []string{}
}
