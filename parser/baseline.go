package parser

// anywhere matches keywords that registries often indent or prefix, such as
// "Registry Expiry Date:".
var anywhere = KeywordOptions{Anywhere: true, Delimiter: DefaultDelimiter}

func keywords(kw ...string) Rule { return Keywords(DefaultKeywordOptions, kw...) }

func keywordsAnywhere(kw ...string) Rule { return Keywords(anywhere, kw...) }

var baseline = NewRuleSet("baseline", map[Field]Rule{
	FieldDomain: keywords("Domain Name", "domain"),

	FieldRegistrar: keywords(
		"Registrar",
		"Registrar Name",
		"Sponsoring Registrar",
		"registrar-name",
		"Registration Service Provider",
		"Domain Support",
		"Sponsoring Registrar Organization",
		"Account Name",
	),

	FieldRegisteredAt: keywordsAnywhere(
		"Creation Date",
		"registered",
		"created",
		"activated",
		"Registration Time",
		"Registered Date",
		"Registration Date",
		"Record created on",
		"Created On",
		"registered on",
	),
	FieldUpdatedAt: keywordsAnywhere(
		"Updated Date",
		"updated",
		"changed",
		"modified",
		"Last Updated On",
		"Last Updated Date",
		"domain_datelastmodified",
		"Last Update",
	),
	FieldExpiresAt: keywordsAnywhere(
		"Expiry Date",
		"Expiration Date",
		"expire",
		"expires",
		"Expires On",
		"Expiration Time",
		"Renewal Date",
		"Record expires on",
		"paid-till",
		"expire-date",
		"domain_datebilleduntil",
		"Valid Until",
		"validity",
	),

	FieldStatuses:    keywords("Domain Status", "domaintype"),
	FieldNameServers: keywords("Name server", "Nserver", "Host Name"),

	FieldRegistrantName: keywords(
		"Registrant Name",
		"Registrant",
		"Registrant Contact Name",
		"Person",
		"registrant_contact_name",
		"Domain Holder",
		"personname",
		"responsible",
	),
	FieldRegistrantEmail:     keywords("Registrant Email", "Registrant Contact Email"),
	FieldRegistrantTelephone: keywords("Registrant Phone"),
	FieldRegistrantOrganization: keywords(
		"Registrant Organization",
		"org",
		"org-name",
		"Registrant Contact Organisation",
	),

	FieldAdminName:         keywords("Admin Name"),
	FieldAdminEmail:        keywords("Admin Email"),
	FieldAdminTelephone:    keywords("Admin Phone"),
	FieldAdminOrganization: keywords("Admin Organization"),

	FieldTechName:         keywords("Tech Name", "Tech Contact Name"),
	FieldTechEmail:        keywords("Tech Email", "Tech Contact Email"),
	FieldTechTelephone:    keywords("Tech Phone"),
	FieldTechOrganization: keywords("Tech Organization", "Tech Contact Organisation"),

	FieldAbuseEmail:     keywords("Registrar Abuse Contact Email", "AC E-Mail"),
	FieldAbuseTelephone: keywords("Registrar Abuse Contact Phone", "AC Phone Number"),
})

// Baseline returns the rule set for the common colon-delimited layout.
func Baseline() *RuleSet { return baseline }
