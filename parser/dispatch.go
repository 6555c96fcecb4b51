package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySuffix  = errors.New("empty registry suffix")
	ErrDottedSuffix = errors.New("registry suffix must not contain a dot")
	ErrNilRuleSet   = errors.New("nil rule set")

	defaultParser = mustDefaultParser()
)

// Dispatcher selects a rule set by top-level domain. It is read-only after
// construction and safe for concurrent use.
type Dispatcher struct {
	baseline *RuleSet
	variants map[string]*RuleSet
}

// NewDispatcher copies variants into a lookup table. A nil baseline selects
// Baseline(). Keys are matched case-insensitively.
func NewDispatcher(base *RuleSet, variants map[string]*RuleSet) (*Dispatcher, error) {
	if base == nil {
		base = Baseline()
	}
	table := make(map[string]*RuleSet, len(variants))
	for suffix, rs := range variants {
		switch {
		case suffix == "":
			return nil, ErrEmptySuffix
		case strings.Contains(suffix, "."):
			return nil, fmt.Errorf("%w: %q", ErrDottedSuffix, suffix)
		case rs == nil:
			return nil, fmt.Errorf("%w for suffix %q", ErrNilRuleSet, suffix)
		}
		table[strings.ToLower(suffix)] = rs
	}
	return &Dispatcher{baseline: base, variants: table}, nil
}

// DefaultDispatcher returns a dispatcher over DefaultVariants.
func DefaultDispatcher() *Dispatcher {
	return defaultParser.dispatcher
}

// Select returns the rule set for hostname, falling back to the baseline
// when the hostname is empty or its suffix is unknown.
func (d *Dispatcher) Select(hostname string) *RuleSet {
	suffix := Suffix(hostname)
	if suffix == "" {
		return d.baseline
	}
	if rs, ok := d.variants[suffix]; ok {
		return rs
	}
	return d.baseline
}

// Suffix returns the lower-cased label after the last dot of hostname. A
// single trailing dot is ignored.
func Suffix(hostname string) string {
	hostname = strings.TrimSuffix(strings.TrimSpace(hostname), ".")
	if i := strings.LastIndexByte(hostname, '.'); i >= 0 {
		hostname = hostname[i+1:]
	}
	return strings.ToLower(hostname)
}

// Parser turns raw WHOIS text into records using a Dispatcher.
type Parser struct {
	dispatcher *Dispatcher
}

// New returns a parser that dispatches with d.
func New(d *Dispatcher) *Parser {
	return &Parser{dispatcher: d}
}

func mustDefaultParser() *Parser {
	d, err := NewDispatcher(Baseline(), DefaultVariants())
	if err != nil {
		panic(err)
	}
	return New(d)
}

// Parse extracts a record from raw. hostname only selects the registry
// rules and may be empty.
func (p *Parser) Parse(raw, hostname string) *WhoisRecord {
	return p.dispatcher.Select(hostname).Assemble(raw)
}

// Parse runs the default parser.
func Parse(raw, hostname string) *WhoisRecord {
	return defaultParser.Parse(raw, hostname)
}
