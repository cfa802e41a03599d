package fleet

import "context"

// Seed loads the built-in demo fleet. IDs are fixed so the dataset is
// reproducible across restarts.
func Seed(ctx context.Context, store *MemoryStore) error {
	for _, v := range []Vehicle{
		{ID: "veh-1", PlateNumber: "120 TU 4567", Brand: "Renault", Model: "Clio", Year: 2021, Type: TypeCar, Status: VehicleActive, Mileage: 45230, FuelType: "gasoline"},
		{ID: "veh-2", PlateNumber: "135 TU 8821", Brand: "Peugeot", Model: "Partner", Year: 2020, Type: TypeVan, Status: VehicleActive, Mileage: 78410, FuelType: "diesel"},
		{ID: "veh-3", PlateNumber: "142 TU 0093", Brand: "Iveco", Model: "Daily", Year: 2019, Type: TypeTruck, Status: VehicleMaintenance, Mileage: 132800, FuelType: "diesel"},
		{ID: "veh-4", PlateNumber: "150 TU 3310", Brand: "Volkswagen", Model: "Caddy", Year: 2022, Type: TypeVan, Status: VehicleActive, Mileage: 21540, FuelType: "diesel"},
		{ID: "veh-5", PlateNumber: "118 TU 7742", Brand: "Fiat", Model: "Tipo", Year: 2018, Type: TypeCar, Status: VehicleInactive, Mileage: 164300, FuelType: "gasoline"},
	} {
		if _, err := store.CreateVehicle(ctx, v); err != nil {
			return err
		}
	}

	for _, d := range []Driver{
		{ID: "drv-1", FirstName: "Mohamed", LastName: "Ben Salah", LicenseNumber: "TN-458912", LicenseExpiryDate: "2027-03-14", Phone: "+216 22 345 678", Status: DriverActive},
		{ID: "drv-2", FirstName: "Sami", LastName: "Trabelsi", LicenseNumber: "TN-512307", LicenseExpiryDate: "2026-11-02", Phone: "+216 98 120 554", Status: DriverActive},
		{ID: "drv-3", FirstName: "Leila", LastName: "Gharbi", LicenseNumber: "TN-390284", LicenseExpiryDate: "2026-01-22", Phone: "+216 55 601 992", Status: DriverSuspended},
		{ID: "drv-4", FirstName: "Karim", LastName: "Jlassi", LicenseNumber: "TN-601458", LicenseExpiryDate: "2028-06-30", Phone: "+216 29 774 310", Status: DriverInactive},
	} {
		if _, err := store.CreateDriver(ctx, d); err != nil {
			return err
		}
	}

	for _, m := range []Maintenance{
		{ID: "mnt-1", VehicleID: "veh-3", Type: "brake_service", Description: "Front brake pads and discs", Status: StatusInProgress, ScheduledDate: "2026-08-24", Cost: 420},
		{ID: "mnt-2", VehicleID: "veh-1", Type: "general_service", Description: "60k km service", Status: StatusScheduled, ScheduledDate: "2026-09-10", Cost: 310},
		{ID: "mnt-3", VehicleID: "veh-2", Type: "tire_rotation", Description: "Rotate and balance tires", Status: StatusCompleted, ScheduledDate: "2026-07-02", CompletedDate: "2026-07-02", Cost: 95},
		{ID: "mnt-4", VehicleID: "veh-5", Type: "battery_service", Description: "Battery replacement", Status: StatusCancelled, ScheduledDate: "2026-06-18", Cost: 260},
	} {
		if _, err := store.CreateMaintenance(ctx, m); err != nil {
			return err
		}
	}

	for _, o := range []OilChange{
		{ID: "oil-1", VehicleID: "veh-1", Status: StatusScheduled, ScheduledDate: "2026-09-05", OilType: "5W-30", Mileage: 45000},
		{ID: "oil-2", VehicleID: "veh-2", Status: StatusCompleted, ScheduledDate: "2026-07-15", CompletedDate: "2026-07-15", OilType: "10W-40", Mileage: 76000},
		{ID: "oil-3", VehicleID: "veh-4", Status: StatusScheduled, ScheduledDate: "2026-09-20", OilType: "5W-30", Mileage: 22000},
	} {
		if _, err := store.CreateOilChange(ctx, o); err != nil {
			return err
		}
	}

	for _, i := range []TechnicalInspection{
		{ID: "insp-1", VehicleID: "veh-2", InspectionDate: "2026-02-11", NextInspectionDate: "2027-02-11", InspectionCenter: "Centre Visite Technique Ariana", Result: InspectionPassed},
		{ID: "insp-2", VehicleID: "veh-3", InspectionDate: "2026-04-03", NextInspectionDate: "2026-10-03", InspectionCenter: "Centre Visite Technique Ben Arous", Result: InspectionConditional},
		{ID: "insp-3", VehicleID: "veh-5", InspectionDate: "2025-12-19", InspectionCenter: "Centre Visite Technique Sfax", Result: InspectionFailed},
	} {
		if _, err := store.CreateInspection(ctx, i); err != nil {
			return err
		}
	}

	for _, f := range []FuelRecord{
		{ID: "fuel-1", VehicleID: "veh-1", Date: "2026-08-03", Quantity: 38.5, Cost: 96.25, Station: "Agil Lac 2", Mileage: 44980},
		{ID: "fuel-2", VehicleID: "veh-2", Date: "2026-08-05", Quantity: 52.0, Cost: 117.0, Station: "Shell Charguia", Mileage: 78010},
		{ID: "fuel-3", VehicleID: "veh-3", Date: "2026-08-09", Quantity: 64.3, Cost: 144.68, Station: "Total Mornag", Mileage: 132400},
		{ID: "fuel-4", VehicleID: "veh-1", Date: "2026-08-17", Quantity: 40.2, Cost: 100.5, Station: "Agil Lac 2", Mileage: 45210},
		{ID: "fuel-5", VehicleID: "veh-4", Date: "2026-08-21", Quantity: 35.0, Cost: 78.75, Station: "Ola Energy Sousse", Mileage: 21480},
		{ID: "fuel-6", VehicleID: "veh-2", Date: "2026-08-25", Quantity: 49.8, Cost: 112.05, Station: "Shell Charguia", Mileage: 78390},
	} {
		if _, err := store.CreateFuelRecord(ctx, f); err != nil {
			return err
		}
	}

	for _, p := range []InsurancePolicy{
		{ID: "pol-1", VehicleID: "veh-1", Type: "comprehensive", Company: "STAR Assurances", PolicyNumber: "STAR-2026-00412", StartDate: "2026-01-01", EndDate: "2026-12-31", PremiumExcludingTax: 2016, VATRate: 19, VATAmount: 383.04, FiscalStamp: 1, OtherTaxes: 0, TotalTaxAmount: 384.04, PremiumIncludingTax: 2400.04, Premium: 2400.04, Coverage: 50000, Deductible: 500, AgentName: "Agence El Menzah", AgentPhone: "+216 71 234 567", Status: PolicyActive},
		{ID: "pol-2", VehicleID: "veh-2", Type: "third_party", Company: "COMAR", PolicyNumber: "COMAR-2026-11873", StartDate: "2026-03-15", EndDate: "2027-03-14", PremiumExcludingTax: 840, VATRate: 19, VATAmount: 159.6, FiscalStamp: 1, OtherTaxes: 12, TotalTaxAmount: 172.6, PremiumIncludingTax: 1012.6, Premium: 1012.6, Coverage: 20000, Deductible: 250, Status: PolicyActive},
		{ID: "pol-3", VehicleID: "veh-5", Type: "third_party", Company: "GAT Assurances", PolicyNumber: "GAT-2025-09120", StartDate: "2025-09-01", EndDate: "2026-08-31", PremiumExcludingTax: 720, VATRate: 13, VATAmount: 93.6, FiscalStamp: 1, OtherTaxes: 0, TotalTaxAmount: 94.6, PremiumIncludingTax: 814.6, Premium: 814.6, Coverage: 15000, Deductible: 200, Status: PolicyExpired},
	} {
		if _, err := store.CreatePolicy(ctx, p); err != nil {
			return err
		}
	}

	for _, c := range []FuelCard{
		{ID: "card-1", CardNumber: "7030 1102 3344 5566", Provider: "Agil", VehicleID: "veh-1", Balance: 420.5, ExpiryDate: "2027-05-31", Status: CardActive},
		{ID: "card-2", CardNumber: "7030 2215 7788 9900", Provider: "Shell", VehicleID: "veh-2", DriverID: "drv-2", Balance: 185.0, ExpiryDate: "2026-12-31", Status: CardActive},
		{ID: "card-3", CardNumber: "7030 8810 2233 4455", Provider: "Total", VehicleID: "veh-5", Balance: 0, ExpiryDate: "2026-02-28", Status: CardExpired},
	} {
		if _, err := store.CreateFuelCard(ctx, c); err != nil {
			return err
		}
	}

	return nil
}
