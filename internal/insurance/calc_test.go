package insurance

import (
	"math"
	"testing"
)

func TestComputeTaxFieldsStandardPolicy(t *testing.T) {
	fields := ComputeTaxFields(TaxInputs{
		PremiumExcludingTax: 2016.00,
		VATRate:             19,
		FiscalStamp:         1.00,
		OtherTaxes:          0,
	})
	if fields.VATAmount != 383.04 {
		t.Fatalf("expected vat 383.04 got %.2f", fields.VATAmount)
	}
	if fields.TotalTaxAmount != 384.04 {
		t.Fatalf("expected total tax 384.04 got %.2f", fields.TotalTaxAmount)
	}
	if fields.PremiumIncludingTax != 2400.04 {
		t.Fatalf("expected premium incl. tax 2400.04 got %.2f", fields.PremiumIncludingTax)
	}
}

func TestComputeTaxFieldsZeroBase(t *testing.T) {
	fields := ComputeTaxFields(TaxInputs{
		PremiumExcludingTax: 0,
		VATRate:             19,
		FiscalStamp:         1.00,
		OtherTaxes:          0,
	})
	if fields.VATAmount != 0 {
		t.Fatalf("expected zero vat got %.2f", fields.VATAmount)
	}
	if fields.PremiumIncludingTax != 1.00 {
		t.Fatalf("expected premium incl. tax 1.00 got %.2f", fields.PremiumIncludingTax)
	}
}

// The inclusive premium must equal the sum of its parts, up to cent
// rounding, for any valid combination of inputs.
func TestComputeTaxFieldsInvariant(t *testing.T) {
	bases := []float64{0, 0.01, 1, 99.99, 123.45, 500, 2016, 9999.99, 33333.33, 100000}
	stamps := []float64{0, 0.5, 1, 4.75, 10}
	others := []float64{0, 0.01, 12.3, 240.6, 1000}

	for _, base := range bases {
		for _, rate := range VATRates {
			for _, stamp := range stamps {
				for _, other := range others {
					fields := ComputeTaxFields(TaxInputs{
						PremiumExcludingTax: base,
						VATRate:             rate,
						FiscalStamp:         stamp,
						OtherTaxes:          other,
					})
					want := Round2(base + Round2(base*rate/100) + stamp + other)
					if math.Abs(fields.PremiumIncludingTax-want) > 0.01 {
						t.Fatalf("base=%v rate=%v stamp=%v other=%v: got %.2f want %.2f",
							base, rate, stamp, other, fields.PremiumIncludingTax, want)
					}
					sum := base + fields.VATAmount + stamp + other
					if math.Abs(fields.PremiumIncludingTax-sum) > 0.01 {
						t.Fatalf("inclusive premium %.2f drifted from component sum %.2f", fields.PremiumIncludingTax, sum)
					}
				}
			}
		}
	}
}

func TestComputeTaxFieldsIsDeterministic(t *testing.T) {
	in := TaxInputs{PremiumExcludingTax: 750.40, VATRate: 13, FiscalStamp: 1, OtherTaxes: 3.6}
	first := ComputeTaxFields(in)
	second := ComputeTaxFields(in)
	if first != second {
		t.Fatalf("same inputs produced %v and %v", first, second)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	// Inputs are exact binary fractions so the half-cent boundary is hit
	// precisely, without the usual decimal-literal drift.
	cases := map[float64]float64{
		0.125:  0.13,
		2.375:  2.38,
		-0.125: -0.13,
		-2.375: -2.38,
		383.04: 383.04,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestValidVATRate(t *testing.T) {
	for _, rate := range VATRates {
		if !ValidVATRate(rate) {
			t.Fatalf("rate %v should be valid", rate)
		}
	}
	for _, rate := range []float64{1, 18, 20, -7} {
		if ValidVATRate(rate) {
			t.Fatalf("rate %v should be invalid", rate)
		}
	}
}
