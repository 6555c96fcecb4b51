package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverrideReplacesOnlyListedFields(t *testing.T) {
	base := Baseline()
	custom := base.Override("custom", map[Field]Rule{
		FieldRegistrar: Keywords(DefaultKeywordOptions, "Sponsor"),
	})

	require.Equal(t, "custom", custom.Name())
	require.Equal(t, "baseline", base.Name())

	doc := "Registrar: Generic\nSponsor: Custom\nDomain Name: EXAMPLE.COM"
	require.Equal(t, "Custom", *custom.Registrar(doc))
	require.Equal(t, "Generic", *base.Registrar(doc))
	require.Equal(t, "example.com", *custom.Domain(doc))
	require.Equal(t, base.Rule(FieldDomain), custom.Rule(FieldDomain))
}

func TestVariantsOverrideExpectedFields(t *testing.T) {
	base := Baseline()

	jp := JPRules()
	for _, f := range []Field{FieldDomain, FieldRegistrantOrganization, FieldRegisteredAt, FieldUpdatedAt, FieldStatuses, FieldNameServers} {
		require.NotEqual(t, base.Rule(f), jp.Rule(f), "field %s", f)
	}
	require.Equal(t, base.Rule(FieldRegistrar), jp.Rule(FieldRegistrar))
	require.Equal(t, base.Rule(FieldExpiresAt), jp.Rule(FieldExpiresAt))

	for _, rs := range []*RuleSet{UKRules(), BERules()} {
		require.NotEqual(t, base.Rule(FieldRegistrar), rs.Rule(FieldRegistrar))
		require.NotEqual(t, base.Rule(FieldRegistrantName), rs.Rule(FieldRegistrantName))
		require.Equal(t, base.Rule(FieldDomain), rs.Rule(FieldDomain))
		require.Equal(t, base.Rule(FieldNameServers), rs.Rule(FieldNameServers))
	}
}

func TestBaselineCoversEveryField(t *testing.T) {
	fields := []Field{
		FieldDomain, FieldRegistrar, FieldRegisteredAt, FieldUpdatedAt, FieldExpiresAt,
		FieldStatuses, FieldNameServers,
		FieldRegistrantName, FieldRegistrantEmail, FieldRegistrantTelephone, FieldRegistrantOrganization,
		FieldAdminName, FieldAdminEmail, FieldAdminTelephone, FieldAdminOrganization,
		FieldTechName, FieldTechEmail, FieldTechTelephone, FieldTechOrganization,
		FieldAbuseEmail, FieldAbuseTelephone,
	}
	for _, f := range fields {
		require.NotEmpty(t, Baseline().Rule(f), "field %s", f)
	}
}

func TestBaselineContacts(t *testing.T) {
	doc := `Registrant Name: Jane Doe
Registrant Organization: Example Org
Registrant Email: jane@example.com
Registrant Phone: +1.5550100
Admin Name: Admin Person
Admin Organization: Admin Org
Admin Email: admin@example.com
Admin Phone: +1.5550101
Tech Contact Name: Tech Person
Tech Contact Organisation: Tech Org
Tech Contact Email: tech@example.com
Tech Phone: +1.5550102`

	r := Baseline().Registrant(doc)
	require.Equal(t, "Jane Doe", *r.Name)
	require.Equal(t, "Example Org", *r.Organization)
	require.Equal(t, "jane@example.com", *r.Email)
	require.Equal(t, "+1.5550100", *r.Telephone)

	a := Baseline().Admin(doc)
	require.Equal(t, "Admin Person", *a.Name)
	require.Equal(t, "Admin Org", *a.Organization)
	require.Equal(t, "admin@example.com", *a.Email)
	require.Equal(t, "+1.5550101", *a.Telephone)

	tech := Baseline().Tech(doc)
	require.Equal(t, "Tech Person", *tech.Name)
	require.Equal(t, "Tech Org", *tech.Organization)
	require.Equal(t, "tech@example.com", *tech.Email)
	require.Equal(t, "+1.5550102", *tech.Telephone)

	abuse := Baseline().Abuse(doc)
	require.Nil(t, abuse.Email)
	require.Nil(t, abuse.Telephone)
}

func TestAssembleLowerCasesHosts(t *testing.T) {
	rec := Baseline().Assemble("Domain Name: EXAMPLE.ORG\nNserver: NS1.EXAMPLE.ORG\nNserver: Ns2.Example.Org")
	require.Equal(t, "example.org", *rec.Domain)
	require.Equal(t, []string{"ns1.example.org", "ns2.example.org"}, rec.NameServers)
}
