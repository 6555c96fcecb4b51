package parser

// bracketLabel matches JPRS style labels such as "[ドメイン名]" which may
// follow a list marker like "a." and carry no delimiter.
func bracketLabel(label string) Rule {
	return Rule{CompileKeyword(label, KeywordOptions{Anywhere: true})}
}

var (
	jpRules = baseline.Override("jp", map[Field]Rule{
		FieldDomain:                 bracketLabel("[ドメイン名]"),
		FieldRegistrantOrganization: bracketLabel("[組織名]"),
		FieldRegisteredAt:           bracketLabel("[登録年月日]"),
		FieldUpdatedAt:              bracketLabel("[最終更新]"),
		FieldStatuses:               bracketLabel("[状態]"),
		FieldNameServers:            bracketLabel("[ネームサーバ]"),
	})

	ukRules = baseline.Override("uk", map[Field]Rule{
		FieldRegistrar:      {CompileBlock("Registrar:")},
		FieldRegistrantName: {CompileBlock("Registrant:")},
	})

	beRules = baseline.Override("be", map[Field]Rule{
		FieldRegistrar:      {CompileBlock("Registrar:", "Name:")},
		FieldRegistrantName: {CompileBlock("Registrant:")},
	})
)

// JPRules handles the bracket-labelled layout of the .jp registry.
func JPRules() *RuleSet { return jpRules }

// UKRules handles Nominet's indented label/value blocks.
func UKRules() *RuleSet { return ukRules }

// BERules handles DNS Belgium's label/value blocks.
func BERules() *RuleSet { return beRules }

// DefaultVariants returns a fresh copy of the registry overrides shipped
// with the package, keyed by top-level domain.
func DefaultVariants() map[string]*RuleSet {
	return map[string]*RuleSet{
		"jp": jpRules,
		"uk": ukRules,
		"be": beRules,
	}
}
