package insurance

import (
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() PolicyForm {
	form := NewPolicyForm()
	form.VehicleID = "veh-1"
	form.Type = "comprehensive"
	form.Company = "STAR Assurances"
	form.PolicyNumber = "STAR-2026-00412"
	form.PremiumExcludingTax = 2016
	form.Coverage = 50000
	form.Deductible = 500
	form.SetStartDate("2026-01-01")
	return form
}

func TestPolicyFormValidatesCleanForm(t *testing.T) {
	v := validator.New()
	form := validForm()
	errs := form.Validate(v)
	assert.Empty(t, errs)
}

func TestPolicyFormCollectsFieldErrors(t *testing.T) {
	v := validator.New()
	form := NewPolicyForm()
	form.Coverage = 0
	form.Deductible = -1
	errs := form.Validate(v)

	for _, field := range []string{"vehicleId", "type", "company", "policyNumber", "startDate", "endDate", "coverage", "deductible"} {
		assert.Contains(t, errs, field, "expected error for %s", field)
	}
}

func TestPolicyFormRejectsEndBeforeStart(t *testing.T) {
	v := validator.New()
	form := validForm()
	form.EndDate = "2025-12-31"
	errs := form.Validate(v)
	require.Contains(t, errs, "endDate")
	assert.Equal(t, "end date must be after start date", errs["endDate"])

	form.EndDate = form.StartDate
	errs = form.Validate(v)
	assert.Contains(t, errs, "endDate", "end date equal to start date must be rejected")
}

func TestPolicyFormRejectsUnknownVATRate(t *testing.T) {
	v := validator.New()
	form := validForm()
	form.VATRate = 18
	errs := form.Validate(v)
	assert.Contains(t, errs, "vatRate")
}

func TestPolicyFormZeroBaseStillHasPositivePremium(t *testing.T) {
	v := validator.New()
	form := validForm()
	form.PremiumExcludingTax = 0
	// Fiscal stamp alone keeps the inclusive premium above zero.
	errs := form.Validate(v)
	assert.NotContains(t, errs, "premium")
}

func TestPolicyFormRejectsZeroPremium(t *testing.T) {
	v := validator.New()
	form := validForm()
	form.PremiumExcludingTax = 0
	form.FiscalStamp = 0
	form.OtherTaxes = 0
	errs := form.Validate(v)
	assert.Contains(t, errs, "premium")
}

func TestDeriveEndDate(t *testing.T) {
	assert.Equal(t, "2026-12-31", DeriveEndDate("2026-01-01"))
	assert.Equal(t, "2027-03-14", DeriveEndDate("2026-03-15"))
	assert.Equal(t, "", DeriveEndDate("not-a-date"))
}

func TestSetStartDateDerivesEndDate(t *testing.T) {
	form := NewPolicyForm()
	form.SetStartDate("2026-01-01")
	assert.Equal(t, "2026-12-31", form.EndDate)

	form.SetStartDate("2026-06-01")
	assert.Equal(t, "2027-05-31", form.EndDate)
}

func TestRenewalPrefillKeepsExplicitEndDate(t *testing.T) {
	values := url.Values{}
	values.Set("renew", "true")
	values.Set("vehicleId", "veh-2")
	values.Set("type", "third_party")
	values.Set("company", "COMAR")
	values.Set("premium", "840")
	values.Set("coverage", "20000")
	values.Set("deductible", "250")
	values.Set("startDate", "2027-03-15")
	values.Set("endDate", "2027-09-14")

	form, renew := ParseRenewalValues(values)
	require.True(t, renew)
	assert.Equal(t, "veh-2", form.VehicleID)
	assert.Equal(t, 840.0, form.PremiumExcludingTax)
	assert.Equal(t, "2027-03-15", form.StartDate)
	// The explicit six-month end date must survive the start-date
	// derivation.
	assert.Equal(t, "2027-09-14", form.EndDate)

	// Later start-date edits still must not clobber it.
	form.SetStartDate("2027-04-01")
	assert.Equal(t, "2027-09-14", form.EndDate)
}

func TestRenewalPrefillDerivesEndDateWhenAbsent(t *testing.T) {
	values := url.Values{}
	values.Set("renew", "true")
	values.Set("startDate", "2027-03-15")

	form, renew := ParseRenewalValues(values)
	require.True(t, renew)
	assert.Equal(t, "2028-03-14", form.EndDate)
}

func TestRenewalPrefillRequiresRenewFlag(t *testing.T) {
	values := url.Values{}
	values.Set("vehicleId", "veh-2")

	form, renew := ParseRenewalValues(values)
	assert.False(t, renew)
	assert.Empty(t, form.VehicleID)
	assert.Equal(t, DefaultVATRate, form.VATRate)
	assert.Equal(t, DefaultFiscalStamp, form.FiscalStamp)
}
