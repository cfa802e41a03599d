package fleet

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validateVehicle(v Vehicle) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(v.PlateNumber) == "" {
		errs["plateNumber"] = "plate number is required"
	}
	if strings.TrimSpace(v.Brand) == "" {
		errs["brand"] = "brand is required"
	}
	if strings.TrimSpace(v.Model) == "" {
		errs["model"] = "model is required"
	}
	if v.Year < 1950 || v.Year > time.Now().Year()+1 {
		errs["year"] = "year is out of range"
	}
	switch v.Type {
	case TypeCar, TypeTruck, TypeVan, TypeBus, TypeOther:
	default:
		errs["type"] = "unknown vehicle type"
	}
	switch v.Status {
	case VehicleActive, VehicleMaintenance, VehicleInactive:
	default:
		errs["status"] = "unknown vehicle status"
	}
	if v.Mileage < 0 {
		errs["mileage"] = "mileage must not be negative"
	}
	return errs
}

func validateDriver(d Driver) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if strings.TrimSpace(d.LicenseNumber) == "" {
		errs["licenseNumber"] = "license number is required"
	}
	if d.LicenseExpiryDate != "" && !validDate(d.LicenseExpiryDate) {
		errs["licenseExpiryDate"] = "license expiry date is invalid"
	}
	switch d.Status {
	case DriverActive, DriverSuspended, DriverInactive:
	default:
		errs["status"] = "unknown driver status"
	}
	return errs
}

func validServiceStatus(s ServiceStatus) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func validateMaintenance(m Maintenance) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(m.VehicleID) == "" {
		errs["vehicleId"] = "vehicle is required"
	}
	if strings.TrimSpace(m.Type) == "" {
		errs["type"] = "type is required"
	}
	if !validServiceStatus(m.Status) {
		errs["status"] = "unknown maintenance status"
	}
	if m.ScheduledDate == "" {
		errs["scheduledDate"] = "scheduled date is required"
	}
	if m.Cost < 0 {
		errs["cost"] = "cost must not be negative"
	}
	return errs
}

func validateOilChange(o OilChange) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(o.VehicleID) == "" {
		errs["vehicleId"] = "vehicle is required"
	}
	if !validServiceStatus(o.Status) {
		errs["status"] = "unknown oil change status"
	}
	if o.ScheduledDate == "" {
		errs["scheduledDate"] = "scheduled date is required"
	}
	if o.Mileage < 0 {
		errs["mileage"] = "mileage must not be negative"
	}
	return errs
}

func validateInspection(i TechnicalInspection) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(i.VehicleID) == "" {
		errs["vehicleId"] = "vehicle is required"
	}
	if !validDate(i.InspectionDate) {
		errs["inspectionDate"] = "inspection date is invalid"
	}
	if i.NextInspectionDate != "" && !validDate(i.NextInspectionDate) {
		errs["nextInspectionDate"] = "next inspection date is invalid"
	}
	switch i.Result {
	case InspectionPassed, InspectionFailed, InspectionConditional:
	default:
		errs["result"] = "unknown inspection result"
	}
	return errs
}

func validateFuelRecord(f FuelRecord) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.VehicleID) == "" {
		errs["vehicleId"] = "vehicle is required"
	}
	if !validDate(f.Date) {
		errs["date"] = "date is invalid"
	}
	if f.Quantity <= 0 {
		errs["quantity"] = "quantity must be greater than zero"
	}
	if f.Cost < 0 {
		errs["cost"] = "cost must not be negative"
	}
	if f.Mileage < 0 {
		errs["mileage"] = "mileage must not be negative"
	}
	return errs
}

func validateFuelCard(c FuelCard) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(c.CardNumber) == "" {
		errs["cardNumber"] = "card number is required"
	}
	if strings.TrimSpace(c.Provider) == "" {
		errs["provider"] = "provider is required"
	}
	if c.ExpiryDate != "" && !validDate(c.ExpiryDate) {
		errs["expiryDate"] = "expiry date is invalid"
	}
	switch c.Status {
	case CardActive, CardBlocked, CardExpired:
	default:
		errs["status"] = "unknown fuel card status"
	}
	return errs
}
