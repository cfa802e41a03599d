package fleet

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fleetdesk/fleetdesk/internal/insurance"
	"github.com/fleetdesk/fleetdesk/internal/platform/httpx"
)

// CacheBumper invalidates derived analytics after a write. A nil bumper is
// a no-op, matching a deployment without Redis.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

// Service exposes the fleet CRUD operations over the store.
type Service struct {
	store    *MemoryStore
	bumper   CacheBumper
	validate *validator.Validate
}

// NewService wires the store with the optional cache bumper.
func NewService(store *MemoryStore, bumper CacheBumper) *Service {
	return &Service{store: store, bumper: bumper, validate: validator.New()}
}

func (s *Service) bump(ctx context.Context) {
	if s.bumper != nil {
		_ = s.bumper.Bump(ctx)
	}
}

// FieldErrors carries a per-field validation failure map. It satisfies the
// error interface so services can return it through the usual path while
// handlers unwrap the map for the response body.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("%v: %d field(s)", httpx.ErrValidation, len(f))
}

// Unwrap lets errors.Is match httpx.ErrValidation.
func (f FieldErrors) Unwrap() error { return httpx.ErrValidation }

func (s *Service) Vehicles(ctx context.Context) ([]Vehicle, error) {
	return s.store.Vehicles(ctx)
}

func (s *Service) Vehicle(ctx context.Context, id string) (Vehicle, error) {
	return s.store.Vehicle(ctx, id)
}

func (s *Service) CreateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	if errs := validateVehicle(v); len(errs) > 0 {
		return Vehicle{}, errs
	}
	created, err := s.store.CreateVehicle(ctx, v)
	if err != nil {
		return Vehicle{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id string, v Vehicle) error {
	if errs := validateVehicle(v); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateVehicle(ctx, id, v); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.store.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) Drivers(ctx context.Context) ([]Driver, error) {
	return s.store.Drivers(ctx)
}

func (s *Service) Driver(ctx context.Context, id string) (Driver, error) {
	return s.store.Driver(ctx, id)
}

func (s *Service) CreateDriver(ctx context.Context, d Driver) (Driver, error) {
	if errs := validateDriver(d); len(errs) > 0 {
		return Driver{}, errs
	}
	created, err := s.store.CreateDriver(ctx, d)
	if err != nil {
		return Driver{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateDriver(ctx context.Context, id string, d Driver) error {
	if errs := validateDriver(d); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateDriver(ctx, id, d); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteDriver(ctx context.Context, id string) error {
	if err := s.store.DeleteDriver(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) Maintenances(ctx context.Context) ([]Maintenance, error) {
	return s.store.Maintenances(ctx)
}

func (s *Service) Maintenance(ctx context.Context, id string) (Maintenance, error) {
	return s.store.Maintenance(ctx, id)
}

func (s *Service) CreateMaintenance(ctx context.Context, m Maintenance) (Maintenance, error) {
	if errs := validateMaintenance(m); len(errs) > 0 {
		return Maintenance{}, errs
	}
	created, err := s.store.CreateMaintenance(ctx, m)
	if err != nil {
		return Maintenance{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateMaintenance(ctx context.Context, id string, m Maintenance) error {
	if errs := validateMaintenance(m); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateMaintenance(ctx, id, m); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteMaintenance(ctx context.Context, id string) error {
	if err := s.store.DeleteMaintenance(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) OilChanges(ctx context.Context) ([]OilChange, error) {
	return s.store.OilChanges(ctx)
}

func (s *Service) OilChange(ctx context.Context, id string) (OilChange, error) {
	return s.store.OilChange(ctx, id)
}

func (s *Service) CreateOilChange(ctx context.Context, o OilChange) (OilChange, error) {
	if errs := validateOilChange(o); len(errs) > 0 {
		return OilChange{}, errs
	}
	created, err := s.store.CreateOilChange(ctx, o)
	if err != nil {
		return OilChange{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateOilChange(ctx context.Context, id string, o OilChange) error {
	if errs := validateOilChange(o); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateOilChange(ctx, id, o); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteOilChange(ctx context.Context, id string) error {
	if err := s.store.DeleteOilChange(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) Inspections(ctx context.Context) ([]TechnicalInspection, error) {
	return s.store.Inspections(ctx)
}

func (s *Service) Inspection(ctx context.Context, id string) (TechnicalInspection, error) {
	return s.store.Inspection(ctx, id)
}

func (s *Service) CreateInspection(ctx context.Context, i TechnicalInspection) (TechnicalInspection, error) {
	if errs := validateInspection(i); len(errs) > 0 {
		return TechnicalInspection{}, errs
	}
	created, err := s.store.CreateInspection(ctx, i)
	if err != nil {
		return TechnicalInspection{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateInspection(ctx context.Context, id string, i TechnicalInspection) error {
	if errs := validateInspection(i); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateInspection(ctx, id, i); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteInspection(ctx context.Context, id string) error {
	if err := s.store.DeleteInspection(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) FuelRecords(ctx context.Context) ([]FuelRecord, error) {
	return s.store.FuelRecords(ctx)
}

func (s *Service) FuelRecord(ctx context.Context, id string) (FuelRecord, error) {
	return s.store.FuelRecord(ctx, id)
}

func (s *Service) CreateFuelRecord(ctx context.Context, f FuelRecord) (FuelRecord, error) {
	if errs := validateFuelRecord(f); len(errs) > 0 {
		return FuelRecord{}, errs
	}
	created, err := s.store.CreateFuelRecord(ctx, f)
	if err != nil {
		return FuelRecord{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateFuelRecord(ctx context.Context, id string, f FuelRecord) error {
	if errs := validateFuelRecord(f); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateFuelRecord(ctx, id, f); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteFuelRecord(ctx context.Context, id string) error {
	if err := s.store.DeleteFuelRecord(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) Policies(ctx context.Context) ([]InsurancePolicy, error) {
	return s.store.Policies(ctx)
}

func (s *Service) Policy(ctx context.Context, id string) (InsurancePolicy, error) {
	return s.store.Policy(ctx, id)
}

// CreatePolicy validates the policy form, derives the tax fields and stores
// the resulting policy. The legacy premium mirrors the tax-inclusive figure.
func (s *Service) CreatePolicy(ctx context.Context, form insurance.PolicyForm) (InsurancePolicy, error) {
	if errs := form.Validate(s.validate); len(errs) > 0 {
		return InsurancePolicy{}, FieldErrors(errs)
	}
	created, err := s.store.CreatePolicy(ctx, policyFromForm("", form))
	if err != nil {
		return InsurancePolicy{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdatePolicy(ctx context.Context, id string, form insurance.PolicyForm) error {
	if errs := form.Validate(s.validate); len(errs) > 0 {
		return FieldErrors(errs)
	}
	if err := s.store.UpdatePolicy(ctx, id, policyFromForm(id, form)); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeletePolicy(ctx context.Context, id string) error {
	if err := s.store.DeletePolicy(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func policyFromForm(id string, form insurance.PolicyForm) InsurancePolicy {
	derived := insurance.ComputeTaxFields(form.TaxInputs)
	return InsurancePolicy{
		ID:                  id,
		VehicleID:           form.VehicleID,
		Type:                form.Type,
		Company:             form.Company,
		PolicyNumber:        form.PolicyNumber,
		StartDate:           form.StartDate,
		EndDate:             form.EndDate,
		PremiumExcludingTax: form.PremiumExcludingTax,
		VATRate:             form.VATRate,
		VATAmount:           derived.VATAmount,
		FiscalStamp:         form.FiscalStamp,
		OtherTaxes:          form.OtherTaxes,
		TotalTaxAmount:      derived.TotalTaxAmount,
		PremiumIncludingTax: derived.PremiumIncludingTax,
		Premium:             derived.PremiumIncludingTax,
		Coverage:            form.Coverage,
		Deductible:          form.Deductible,
		AgentName:           form.AgentName,
		AgentPhone:          form.AgentPhone,
		Status:              PolicyActive,
	}
}

func (s *Service) FuelCards(ctx context.Context) ([]FuelCard, error) {
	return s.store.FuelCards(ctx)
}

func (s *Service) FuelCard(ctx context.Context, id string) (FuelCard, error) {
	return s.store.FuelCard(ctx, id)
}

func (s *Service) CreateFuelCard(ctx context.Context, c FuelCard) (FuelCard, error) {
	if errs := validateFuelCard(c); len(errs) > 0 {
		return FuelCard{}, errs
	}
	created, err := s.store.CreateFuelCard(ctx, c)
	if err != nil {
		return FuelCard{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) UpdateFuelCard(ctx context.Context, id string, c FuelCard) error {
	if errs := validateFuelCard(c); len(errs) > 0 {
		return errs
	}
	if err := s.store.UpdateFuelCard(ctx, id, c); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) DeleteFuelCard(ctx context.Context, id string) error {
	if err := s.store.DeleteFuelCard(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}
