package rules

import "compliancehub/cmd/internal/domain/entity"

// TurnoverMonthlyGST is the strict threshold (₹1.5 Crores) above which a
// company files GST monthly instead of quarterly.
const TurnoverMonthlyGST = 15_000_000

// LaborMinEmployees is the inclusive headcount at which PF and ESI filings
// become applicable.
const LaborMinEmployees = 10

// professionalTaxStates levy a state professional tax.
var professionalTaxStates = map[string]bool{
	"MH": true, "KA": true, "TN": true, "WB": true,
	"AS": true, "MP": true, "GJ": true,
}

// BusinessProfile is the snapshot the applicability rules evaluate. Values
// are taken as-is; positivity of turnover and headcount is a form concern.
type BusinessProfile struct {
	AnnualTurnover float64
	EmployeeCount  int
	State          string
}

// Draft is one derived obligation with a human-readable justification.
type Draft struct {
	Name           string
	Type           entity.ComplianceType
	Frequency      entity.Frequency
	RegulatoryBody entity.RegulatoryBody
	Justification  string
}

// ApplicableCompliances derives the compliances a company must track from
// its business profile. Deterministic and total: the four corporate entries
// are emitted for every input. The GST branch is mutually exclusive; all
// other rules are additive.
func ApplicableCompliances(p BusinessProfile) []Draft {
	var drafts []Draft

	if p.AnnualTurnover > TurnoverMonthlyGST {
		drafts = append(drafts, Draft{
			Name:           "GST Monthly Return (GSTR-1 & GSTR-3B)",
			Type:           entity.TypeTax,
			Frequency:      entity.FrequencyMonthly,
			RegulatoryBody: entity.BodyCBIC,
			Justification:  "Annual turnover exceeds ₹1.5 Crores",
		})
	} else {
		drafts = append(drafts, Draft{
			Name:           "GST Quarterly Return (GSTR-1 & GSTR-3B)",
			Type:           entity.TypeTax,
			Frequency:      entity.FrequencyQuarterly,
			RegulatoryBody: entity.BodyCBIC,
			Justification:  "Annual turnover is ₹1.5 Crores or below",
		})
	}

	if p.EmployeeCount >= LaborMinEmployees {
		drafts = append(drafts, Draft{
			Name:           "Provident Fund (PF) Monthly Return",
			Type:           entity.TypeLabor,
			Frequency:      entity.FrequencyMonthly,
			RegulatoryBody: entity.BodyEPFO,
			Justification:  "Employee count is 10 or more",
		}, Draft{
			Name:           "Employee State Insurance (ESI) Monthly Return",
			Type:           entity.TypeLabor,
			Frequency:      entity.FrequencyMonthly,
			RegulatoryBody: entity.BodyESIC,
			Justification:  "Employee count is 10 or more",
		})
	}

	if professionalTaxStates[p.State] {
		drafts = append(drafts, Draft{
			Name:           "Professional Tax Monthly Return",
			Type:           entity.TypeLabor,
			Frequency:      entity.FrequencyMonthly,
			RegulatoryBody: entity.BodyState,
			Justification:  "Required in " + p.State,
		})
	}

	// Mandatory corporate filings, independent of profile.
	drafts = append(drafts,
		Draft{
			Name:           "Annual Return (MGT-7)",
			Type:           entity.TypeCorporate,
			Frequency:      entity.FrequencyAnnual,
			RegulatoryBody: entity.BodyMCA,
			Justification:  "Mandatory for all private companies",
		},
		Draft{
			Name:           "Financial Statements (AOC-4)",
			Type:           entity.TypeCorporate,
			Frequency:      entity.FrequencyAnnual,
			RegulatoryBody: entity.BodyMCA,
			Justification:  "Mandatory for all private companies",
		},
		Draft{
			Name:           "Board Meetings",
			Type:           entity.TypeCorporate,
			Frequency:      entity.FrequencyQuarterly,
			RegulatoryBody: entity.BodyMCA,
			Justification:  "Minimum 4 meetings per year required",
		},
		Draft{
			Name:           "Director KYC (DIR-3 KYC)",
			Type:           entity.TypeCorporate,
			Frequency:      entity.FrequencyAnnual,
			RegulatoryBody: entity.BodyMCA,
			Justification:  "Required for all directors annually",
		},
	)

	return drafts
}
