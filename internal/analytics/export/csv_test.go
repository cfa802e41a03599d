package export

import (
	"strings"
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

func TestWriteTableQuotingScenario(t *testing.T) {
	cols := []Column{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}}
	rows := []map[string]any{{"a": `x"y`, "b": nil}}

	var sb strings.Builder
	if err := WriteTable(&sb, cols, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := "\ufeff" + `"A","B"` + "\n" + `"x""y",""`
	if sb.String() != want {
		t.Fatalf("got %q want %q", sb.String(), want)
	}
}

func TestWriteTableAlwaysQuotes(t *testing.T) {
	cols := []Column{{Key: "n", Label: "N"}}
	rows := []map[string]any{{"n": 42}, {"n": 1.5}, {"n": true}}

	var sb strings.Builder
	if err := WriteTable(&sb, cols, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	body := strings.TrimPrefix(sb.String(), "\ufeff")
	lines := strings.Split(body, "\n")
	want := []string{`"N"`, `"42"`, `"1.5"`, `"true"`}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d: got %q want %q", i, line, want[i])
		}
	}
	if strings.HasSuffix(sb.String(), "\n") {
		t.Fatal("output must not end with a newline")
	}
}

func TestWriteTableHeaderOnly(t *testing.T) {
	var sb strings.Builder
	if err := WriteTable(&sb, []Column{{Key: "a", Label: "A"}}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "\ufeff"+`"A"` {
		t.Fatalf("got %q", sb.String())
	}
}

func TestFormatValueDates(t *testing.T) {
	d := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	if got := formatValue(d); got != "30/08/2026" {
		t.Fatalf("date format: got %q", got)
	}
}

func TestFormatValueNonScalar(t *testing.T) {
	if got := formatValue([]string{"a", "b"}); got != `["a","b"]` {
		t.Fatalf("slice: got %q", got)
	}
	if got := formatValue(map[string]int{"k": 1}); got != `{"k":1}` {
		t.Fatalf("map: got %q", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	if got := Filename("vehicles", now); got != "vehicles_2026-08-30.csv" {
		t.Fatalf("filename: got %q", got)
	}
}

func TestVehicleRowsRoundTrip(t *testing.T) {
	vehicles := []fleet.Vehicle{{
		PlateNumber: "120 TU 4521",
		Brand:       "Renault",
		Model:       "Trafic",
		Year:        2021,
		Type:        fleet.TypeVan,
		Status:      fleet.VehicleActive,
		Mileage:     45230,
		FuelType:    "diesel",
	}}

	var sb strings.Builder
	if err := WriteTable(&sb, VehicleColumns, VehicleRows(vehicles)); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimPrefix(sb.String(), "\ufeff"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[1] != `"120 TU 4521","Renault","Trafic","2021","van","active","45230","diesel"` {
		t.Fatalf("row: %q", lines[1])
	}
}

func TestPolicyRowsIncludeTaxFields(t *testing.T) {
	policies := []fleet.InsurancePolicy{{
		PolicyNumber:        "POL-2026-001",
		Company:             "STAR Assurances",
		VehicleID:           "v1",
		Type:                "comprehensive",
		StartDate:           "2026-01-01",
		EndDate:             "2026-12-31",
		PremiumExcludingTax: 2016,
		TotalTaxAmount:      384.04,
		PremiumIncludingTax: 2400.04,
		Status:              fleet.PolicyActive,
	}}

	var sb strings.Builder
	if err := WriteTable(&sb, PolicyColumns, PolicyRows(policies)); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimPrefix(sb.String(), "\ufeff"), "\n")
	if lines[1] != `"POL-2026-001","STAR Assurances","v1","comprehensive","2026-01-01","2026-12-31","2016","384.04","2400.04","active"` {
		t.Fatalf("row: %q", lines[1])
	}
}
