// Package insurance implements the premium tax computation and the policy
// form rules.
package insurance

import "math"

// Tunisian motor insurance tax parameters.
const (
	DefaultVATRate     = 19.0
	DefaultFiscalStamp = 1.0
)

// VATRates lists the rates the form accepts.
var VATRates = []float64{0, 7, 13, 19}

// ValidVATRate reports whether rate is one of the accepted VAT rates.
func ValidVATRate(rate float64) bool {
	for _, r := range VATRates {
		if r == rate {
			return true
		}
	}
	return false
}

// TaxInputs are the four independently editable premium components.
type TaxInputs struct {
	PremiumExcludingTax float64 `json:"premiumExcludingTax"`
	VATRate             float64 `json:"vatRate"`
	FiscalStamp         float64 `json:"fiscalStamp"`
	OtherTaxes          float64 `json:"otherTaxes"`
}

// TaxFields are the derived amounts. PremiumIncludingTax equals
// PremiumExcludingTax + VATAmount + FiscalStamp + OtherTaxes up to cent
// rounding, after every recomputation.
type TaxFields struct {
	VATAmount           float64 `json:"vatAmount"`
	TotalTaxAmount      float64 `json:"totalTaxAmount"`
	PremiumIncludingTax float64 `json:"premiumIncludingTax"`
}

// ComputeTaxFields is the single reducer deriving all tax fields from the
// current inputs. It is invoked after any input change; there is no
// per-field recomputation path that could drift.
func ComputeTaxFields(in TaxInputs) TaxFields {
	vat := Round2(in.PremiumExcludingTax * in.VATRate / 100)
	total := Round2(vat + in.FiscalStamp + in.OtherTaxes)
	return TaxFields{
		VATAmount:           vat,
		TotalTaxAmount:      total,
		PremiumIncludingTax: Round2(in.PremiumExcludingTax + total),
	}
}

// Round2 rounds to cent precision, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
