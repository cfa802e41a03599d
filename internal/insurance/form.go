package insurance

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// PolicyForm carries the editable fields of the insurance form. Validation
// failures are collected per field and block submission; nothing is thrown.
type PolicyForm struct {
	VehicleID    string `json:"vehicleId" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Company      string `json:"company"`
	PolicyNumber string `json:"policyNumber"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"required"`

	TaxInputs

	Coverage   float64 `json:"coverage" validate:"gt=0"`
	Deductible float64 `json:"deductible" validate:"gte=0"`
	AgentName  string  `json:"agentName"`
	AgentPhone string  `json:"agentPhone"`

	// endDateLocked marks an end date supplied by a renewal prefill; the
	// start-date derivation must not clobber it.
	endDateLocked bool
}

// NewPolicyForm returns a form with the tax defaults applied.
func NewPolicyForm() PolicyForm {
	return PolicyForm{
		TaxInputs: TaxInputs{
			VATRate:     DefaultVATRate,
			FiscalStamp: DefaultFiscalStamp,
		},
	}
}

// SetStartDate records a start-date change and derives the end date as one
// year minus one day later, unless a renewal prefill already fixed it.
func (f *PolicyForm) SetStartDate(date string) {
	f.StartDate = date
	if f.endDateLocked {
		return
	}
	if derived := DeriveEndDate(date); derived != "" {
		f.EndDate = derived
	}
}

// DeriveEndDate returns start + 1 year - 1 day, or "" when start does not
// parse.
func DeriveEndDate(start string) string {
	t, err := time.Parse(dateLayout, start)
	if err != nil {
		return ""
	}
	return t.AddDate(1, 0, 0).AddDate(0, 0, -1).Format(dateLayout)
}

// Validate runs the form rules and returns the field->message map. An empty
// map means the form may be submitted.
func (f *PolicyForm) Validate(v *validator.Validate) map[string]string {
	errs := map[string]string{}

	if err := v.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs[formField(fieldErr.Field())] = fieldMessage(fieldErr.Field())
		}
	}
	if strings.TrimSpace(f.Company) == "" {
		errs["company"] = "company is required"
	}
	if strings.TrimSpace(f.PolicyNumber) == "" {
		errs["policyNumber"] = "policy number is required"
	}
	if !ValidVATRate(f.VATRate) {
		errs["vatRate"] = "vat rate must be one of 0, 7, 13 or 19"
	}
	if f.PremiumExcludingTax < 0 {
		errs["premiumExcludingTax"] = "premium excluding tax must not be negative"
	}
	if f.OtherTaxes < 0 {
		errs["otherTaxes"] = "other taxes must not be negative"
	}

	if f.StartDate != "" && f.EndDate != "" {
		start, errStart := time.Parse(dateLayout, f.StartDate)
		end, errEnd := time.Parse(dateLayout, f.EndDate)
		switch {
		case errStart != nil:
			errs["startDate"] = "start date is invalid"
		case errEnd != nil:
			errs["endDate"] = "end date is invalid"
		case !end.After(start):
			errs["endDate"] = "end date must be after start date"
		}
	}

	if _, ok := errs["premiumExcludingTax"]; !ok {
		if ComputeTaxFields(f.TaxInputs).PremiumIncludingTax <= 0 {
			errs["premium"] = "premium must be greater than zero"
		}
	}

	return errs
}

// formField maps struct field names onto the form keys used by the client.
func formField(name string) string {
	switch name {
	case "VehicleID":
		return "vehicleId"
	case "Type":
		return "type"
	case "Company":
		return "company"
	case "PolicyNumber":
		return "policyNumber"
	case "StartDate":
		return "startDate"
	case "EndDate":
		return "endDate"
	case "Coverage":
		return "coverage"
	case "Deductible":
		return "deductible"
	default:
		return name
	}
}

func fieldMessage(name string) string {
	switch name {
	case "VehicleID":
		return "vehicle is required"
	case "Type":
		return "type is required"
	case "StartDate":
		return "start date is required"
	case "EndDate":
		return "end date is required"
	case "Coverage":
		return "coverage must be greater than zero"
	case "Deductible":
		return "deductible must not be negative"
	default:
		return strings.ToLower(name) + " is invalid"
	}
}

// ParseRenewalValues seeds a form from the renewal query string. The second
// return value reports whether renewal mode was requested at all. A supplied
// end date is locked against the start-date derivation.
func ParseRenewalValues(values url.Values) (PolicyForm, bool) {
	form := NewPolicyForm()
	if values.Get("renew") != "true" {
		return form, false
	}

	form.VehicleID = values.Get("vehicleId")
	form.Type = values.Get("type")
	form.Company = values.Get("company")
	form.AgentName = values.Get("agentName")
	form.AgentPhone = values.Get("agentPhone")

	if v, err := strconv.ParseFloat(values.Get("premium"), 64); err == nil {
		form.PremiumExcludingTax = v
	}
	if v, err := strconv.ParseFloat(values.Get("coverage"), 64); err == nil {
		form.Coverage = v
	}
	if v, err := strconv.ParseFloat(values.Get("deductible"), 64); err == nil {
		form.Deductible = v
	}

	if end := values.Get("endDate"); end != "" {
		form.EndDate = end
		form.endDateLocked = true
	}
	if start := values.Get("startDate"); start != "" {
		form.SetStartDate(start)
	}
	return form, true
}
