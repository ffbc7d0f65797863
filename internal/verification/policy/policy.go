// Package policy holds the static verification policy tables: which checks
// each tier requires, how each tier auto-approves, which providers serve each
// country, and which documents each country accepts. Pure data, no behavior.
package policy

import "vouch/internal/verification/models"

// Provider names referenced by the routing tables. The registry resolves
// these to concrete capability providers.
const (
	ProviderSmileID     = "smileid"
	ProviderDojah       = "dojah"
	ProviderCertiscreen = "certiscreen"
	ProviderLocalCheck  = "localcheck"
	ProviderTermii      = "termii"
)

// requiredChecks is the tier -> required-check matrix over all seven domains.
var requiredChecks = map[models.Tier]map[models.CheckType]bool{
	models.Tier1: {
		models.CheckEmail: true,
		models.CheckPhone: true,
	},
	models.Tier2: {
		models.CheckEmail:      true,
		models.CheckPhone:      true,
		models.CheckIDDocument: true,
		models.CheckFaceMatch:  true,
		models.CheckAML:        true,
	},
	models.Tier3: {
		models.CheckEmail:      true,
		models.CheckPhone:      true,
		models.CheckIDDocument: true,
		models.CheckFaceMatch:  true,
		models.CheckAddress:    true,
		models.CheckTaxID:      true,
		models.CheckAML:        true,
	},
}

// Threshold is a tier's auto-approval policy: the minimum mean confidence
// across executed checks plus the checks that must individually pass.
type Threshold struct {
	MinConfidence float64
	MustPass      []models.CheckType
}

var thresholds = map[models.Tier]Threshold{
	models.Tier1: {
		MinConfidence: 80,
		MustPass:      []models.CheckType{models.CheckEmail, models.CheckPhone},
	},
	models.Tier2: {
		MinConfidence: 75,
		MustPass: []models.CheckType{
			models.CheckIDDocument,
			models.CheckFaceMatch,
			models.CheckAML,
		},
	},
	// Tier3 never auto-approves; the threshold exists for score reporting
	// and reviewer guidance only.
	models.Tier3: {
		MinConfidence: 85,
		MustPass: []models.CheckType{
			models.CheckIDDocument,
			models.CheckFaceMatch,
			models.CheckAML,
		},
	},
}

// countryProviders maps ISO country codes to the ordered provider list for
// document-family checks. First entry is the primary; later entries are
// configured fallbacks that the engine does not try automatically.
var countryProviders = map[string][]string{
	"NG": {ProviderDojah, ProviderSmileID},
	"GH": {ProviderDojah, ProviderSmileID},
	"KE": {ProviderSmileID, ProviderDojah},
	"ZA": {ProviderSmileID},
	"GB": {ProviderSmileID},
	"US": {ProviderSmileID},
}

// defaultProviders serves countries without an explicit routing entry.
var defaultProviders = []string{ProviderSmileID}

// DocumentRules describes what identity material a country accepts and
// mandates. Consumed by callers and upstream validation, not interpreted by
// the orchestrator.
type DocumentRules struct {
	AcceptedIDDocuments      []string
	AcceptedAddressDocuments []string
	NationalIdentifier       string
}

var documentRules = map[string]DocumentRules{
	"NG": {
		AcceptedIDDocuments:      []string{"nin_slip", "passport", "drivers_license", "voters_card"},
		AcceptedAddressDocuments: []string{"utility_bill", "bank_statement"},
		NationalIdentifier:       "bvn",
	},
	"GH": {
		AcceptedIDDocuments:      []string{"ghana_card", "passport", "drivers_license"},
		AcceptedAddressDocuments: []string{"utility_bill", "bank_statement"},
		NationalIdentifier:       "ghana_card_number",
	},
	"KE": {
		AcceptedIDDocuments:      []string{"national_id", "passport"},
		AcceptedAddressDocuments: []string{"utility_bill"},
		NationalIdentifier:       "kra_pin",
	},
	"ZA": {
		AcceptedIDDocuments:      []string{"national_id", "passport"},
		AcceptedAddressDocuments: []string{"utility_bill", "bank_statement"},
		NationalIdentifier:       "said",
	},
	"GB": {
		AcceptedIDDocuments:      []string{"passport", "drivers_license", "brp"},
		AcceptedAddressDocuments: []string{"utility_bill", "bank_statement", "council_tax_bill"},
	},
	"US": {
		AcceptedIDDocuments:      []string{"passport", "drivers_license", "state_id"},
		AcceptedAddressDocuments: []string{"utility_bill", "bank_statement", "lease_agreement"},
		NationalIdentifier:       "ssn",
	},
}

// RequiredChecks returns the required-check matrix row for a tier. The map
// covers all seven domains; absent entries mean not required.
func RequiredChecks(tier models.Tier) map[models.CheckType]bool {
	return requiredChecks[tier]
}

// ApprovalThreshold returns the tier's auto-approval policy.
func ApprovalThreshold(tier models.Tier) (Threshold, bool) {
	t, ok := thresholds[tier]
	return t, ok
}

// ProvidersForCountry returns the ordered provider-name list for a country,
// falling back to the default route for unknown countries.
func ProvidersForCountry(country string) []string {
	if names, ok := countryProviders[country]; ok {
		return names
	}
	return defaultProviders
}

// DocumentRulesForCountry returns the country's document policy.
func DocumentRulesForCountry(country string) (DocumentRules, bool) {
	r, ok := documentRules[country]
	return r, ok
}
