// Package fleet holds the fleet entities and their CRUD services backed by
// the in-memory store.
package fleet

// VehicleStatus enumerates the operational states of a vehicle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInactive    VehicleStatus = "inactive"
)

// VehicleType enumerates the fleet vehicle categories.
type VehicleType string

const (
	TypeCar   VehicleType = "car"
	TypeTruck VehicleType = "truck"
	TypeVan   VehicleType = "van"
	TypeBus   VehicleType = "bus"
	TypeOther VehicleType = "other"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID          string        `json:"id"`
	PlateNumber string        `json:"plateNumber"`
	Brand       string        `json:"brand"`
	Model       string        `json:"model"`
	Year        int           `json:"year"`
	Type        VehicleType   `json:"type"`
	Status      VehicleStatus `json:"status"`
	Mileage     int           `json:"mileage"`
	FuelType    string        `json:"fuelType"`
}

// DisplayName is the label used for the vehicle across lists and calendars.
func (v Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model + " (" + v.PlateNumber + ")"
}

// DriverStatus enumerates driver states.
type DriverStatus string

const (
	DriverActive    DriverStatus = "active"
	DriverSuspended DriverStatus = "suspended"
	DriverInactive  DriverStatus = "inactive"
)

// Driver represents a fleet driver. Dates are ISO YYYY-MM-DD strings, the
// native shape of the seed data.
type Driver struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	LicenseNumber     string       `json:"licenseNumber"`
	LicenseExpiryDate string       `json:"licenseExpiryDate"`
	Phone             string       `json:"phone"`
	Status            DriverStatus `json:"status"`
}

// ServiceStatus is shared by maintenances and oil changes.
type ServiceStatus string

const (
	StatusScheduled  ServiceStatus = "scheduled"
	StatusInProgress ServiceStatus = "in_progress"
	StatusCompleted  ServiceStatus = "completed"
	StatusCancelled  ServiceStatus = "cancelled"
)

// Upcoming reports whether the record still counts toward the upcoming
// service-event figure.
func (s ServiceStatus) Upcoming() bool {
	return s == StatusScheduled || s == StatusInProgress
}

// Maintenance represents a scheduled or past maintenance intervention.
// VehicleID is not enforced against the vehicle collection; dangling
// references are tolerated.
type Maintenance struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"vehicleId"`
	Type          string        `json:"type"`
	Description   string        `json:"description"`
	Status        ServiceStatus `json:"status"`
	ScheduledDate string        `json:"scheduledDate"`
	CompletedDate string        `json:"completedDate,omitempty"`
	Cost          float64       `json:"cost"`
}

// OilChange represents an oil change service record.
type OilChange struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"vehicleId"`
	Status        ServiceStatus `json:"status"`
	ScheduledDate string        `json:"scheduledDate"`
	CompletedDate string        `json:"completedDate,omitempty"`
	OilType       string        `json:"oilType"`
	Mileage       int           `json:"mileage"`
}

// InspectionResult enumerates technical inspection outcomes.
type InspectionResult string

const (
	InspectionPassed      InspectionResult = "passed"
	InspectionFailed      InspectionResult = "failed"
	InspectionConditional InspectionResult = "conditional"
)

// TechnicalInspection represents a periodic technical inspection.
type TechnicalInspection struct {
	ID                 string           `json:"id"`
	VehicleID          string           `json:"vehicleId"`
	InspectionDate     string           `json:"inspectionDate"`
	NextInspectionDate string           `json:"nextInspectionDate,omitempty"`
	InspectionCenter   string           `json:"inspectionCenter"`
	Result             InspectionResult `json:"result"`
}

// FuelRecord represents one refueling.
type FuelRecord struct {
	ID        string  `json:"id"`
	VehicleID string  `json:"vehicleId"`
	Date      string  `json:"date"`
	Quantity  float64 `json:"quantity"`
	Cost      float64 `json:"cost"`
	Station   string  `json:"station"`
	Mileage   int     `json:"mileage"`
}

// PolicyStatus enumerates insurance policy states.
type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "active"
	PolicyExpired   PolicyStatus = "expired"
	PolicyCancelled PolicyStatus = "cancelled"
)

// InsurancePolicy represents an insurance contract for one vehicle.
// The tax fields are derived from PremiumExcludingTax by the insurance
// package; Premium mirrors PremiumIncludingTax for older consumers.
type InsurancePolicy struct {
	ID                  string       `json:"id"`
	VehicleID           string       `json:"vehicleId"`
	Type                string       `json:"type"`
	Company             string       `json:"company"`
	PolicyNumber        string       `json:"policyNumber"`
	StartDate           string       `json:"startDate"`
	EndDate             string       `json:"endDate"`
	PremiumExcludingTax float64      `json:"premiumExcludingTax"`
	VATRate             float64      `json:"vatRate"`
	VATAmount           float64      `json:"vatAmount"`
	FiscalStamp         float64      `json:"fiscalStamp"`
	OtherTaxes          float64      `json:"otherTaxes"`
	TotalTaxAmount      float64      `json:"totalTaxAmount"`
	PremiumIncludingTax float64      `json:"premiumIncludingTax"`
	Premium             float64      `json:"premium"`
	Coverage            float64      `json:"coverage"`
	Deductible          float64      `json:"deductible"`
	AgentName           string       `json:"agentName,omitempty"`
	AgentPhone          string       `json:"agentPhone,omitempty"`
	Status              PolicyStatus `json:"status"`
}

// CardStatus enumerates fuel card states.
type CardStatus string

const (
	CardActive  CardStatus = "active"
	CardBlocked CardStatus = "blocked"
	CardExpired CardStatus = "expired"
)

// FuelCard represents a fuel payment card assigned to a vehicle or driver.
type FuelCard struct {
	ID         string     `json:"id"`
	CardNumber string     `json:"cardNumber"`
	Provider   string     `json:"provider"`
	VehicleID  string     `json:"vehicleId,omitempty"`
	DriverID   string     `json:"driverId,omitempty"`
	Balance    float64    `json:"balance"`
	ExpiryDate string     `json:"expiryDate"`
	Status     CardStatus `json:"status"`
}
