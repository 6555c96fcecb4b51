package parser

import "strings"

// Field names one extracted value of a WhoisRecord.
type Field string

const (
	FieldDomain       Field = "domain"
	FieldRegistrar    Field = "registrar"
	FieldRegisteredAt Field = "registered_at"
	FieldUpdatedAt    Field = "updated_at"
	FieldExpiresAt    Field = "expires_at"
	FieldStatuses     Field = "statuses"
	FieldNameServers  Field = "name_servers"

	FieldRegistrantName         Field = "registrant.name"
	FieldRegistrantEmail        Field = "registrant.email"
	FieldRegistrantTelephone    Field = "registrant.telephone"
	FieldRegistrantOrganization Field = "registrant.organization"

	FieldAdminName         Field = "admin.name"
	FieldAdminEmail        Field = "admin.email"
	FieldAdminTelephone    Field = "admin.telephone"
	FieldAdminOrganization Field = "admin.organization"

	FieldTechName         Field = "tech.name"
	FieldTechEmail        Field = "tech.email"
	FieldTechTelephone    Field = "tech.telephone"
	FieldTechOrganization Field = "tech.organization"

	FieldAbuseEmail     Field = "abuse.email"
	FieldAbuseTelephone Field = "abuse.telephone"
)

// RuleSet maps every field to the aliases used to find it. A RuleSet never
// changes after construction; Override returns a new one.
type RuleSet struct {
	name  string
	rules map[Field]Rule
}

// NewRuleSet builds a rule set from a complete table.
func NewRuleSet(name string, rules map[Field]Rule) *RuleSet {
	rs := &RuleSet{name: name, rules: make(map[Field]Rule, len(rules))}
	for f, r := range rules {
		rs.rules[f] = r
	}
	return rs
}

// Override returns a copy of rs where the fields in overrides are replaced.
// Fields not listed keep the rules of rs.
func (rs *RuleSet) Override(name string, overrides map[Field]Rule) *RuleSet {
	merged := NewRuleSet(name, rs.rules)
	for f, r := range overrides {
		merged.rules[f] = r
	}
	return merged
}

// Name identifies the rule set, e.g. "baseline" or "jp".
func (rs *RuleSet) Name() string { return rs.name }

// Rule returns the aliases configured for f.
func (rs *RuleSet) Rule(f Field) Rule { return rs.rules[f] }

func (rs *RuleSet) text(f Field, doc string) *string {
	return toPtr(rs.rules[f].First(doc))
}

func (rs *RuleSet) date(f Field, doc string) Date {
	v, ok := rs.rules[f].First(doc)
	if !ok {
		return Date{}
	}
	return NormalizeDate(v)
}

func (rs *RuleSet) contact(doc string, name, email, phone, org Field) Contact {
	return Contact{
		Name:         rs.text(name, doc),
		Email:        rs.text(email, doc),
		Telephone:    rs.text(phone, doc),
		Organization: rs.text(org, doc),
	}
}

// Domain returns the lower-cased domain name found in doc.
func (rs *RuleSet) Domain(doc string) *string {
	v, ok := rs.rules[FieldDomain].First(doc)
	return toPtr(strings.ToLower(v), ok)
}

func (rs *RuleSet) Registrar(doc string) *string {
	return rs.text(FieldRegistrar, doc)
}

func (rs *RuleSet) RegisteredAt(doc string) Date {
	return rs.date(FieldRegisteredAt, doc)
}

func (rs *RuleSet) UpdatedAt(doc string) Date {
	return rs.date(FieldUpdatedAt, doc)
}

func (rs *RuleSet) ExpiresAt(doc string) Date {
	return rs.date(FieldExpiresAt, doc)
}

// Statuses returns status values in the order they appear.
func (rs *RuleSet) Statuses(doc string) []string {
	return rs.rules[FieldStatuses].All(doc)
}

// NameServers returns lower-cased name server host names.
func (rs *RuleSet) NameServers(doc string) []string {
	values := rs.rules[FieldNameServers].All(doc)
	for i, v := range values {
		values[i] = strings.ToLower(v)
	}
	return values
}

func (rs *RuleSet) Registrant(doc string) Contact {
	return rs.contact(doc, FieldRegistrantName, FieldRegistrantEmail, FieldRegistrantTelephone, FieldRegistrantOrganization)
}

func (rs *RuleSet) Admin(doc string) Contact {
	return rs.contact(doc, FieldAdminName, FieldAdminEmail, FieldAdminTelephone, FieldAdminOrganization)
}

func (rs *RuleSet) Tech(doc string) Contact {
	return rs.contact(doc, FieldTechName, FieldTechEmail, FieldTechTelephone, FieldTechOrganization)
}

func (rs *RuleSet) Abuse(doc string) AbuseContact {
	return AbuseContact{
		Email:     rs.text(FieldAbuseEmail, doc),
		Telephone: rs.text(FieldAbuseTelephone, doc),
	}
}

// Assemble normalizes raw once and extracts every field from it.
func (rs *RuleSet) Assemble(raw string) *WhoisRecord {
	doc := NormalizeText(raw)
	return &WhoisRecord{
		RawText:      raw,
		Registrant:   rs.Registrant(doc),
		Admin:        rs.Admin(doc),
		Tech:         rs.Tech(doc),
		Abuse:        rs.Abuse(doc),
		Statuses:     rs.Statuses(doc),
		NameServers:  rs.NameServers(doc),
		Domain:       rs.Domain(doc),
		Registrar:    rs.Registrar(doc),
		RegisteredAt: rs.RegisteredAt(doc),
		UpdatedAt:    rs.UpdatedAt(doc),
		ExpiresAt:    rs.ExpiresAt(doc),
	}
}
