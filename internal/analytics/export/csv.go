// Package export serialises fleet data for download.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/fleet"
)

// Column describes one CSV column: the row key it reads and the header
// label it prints.
type Column struct {
	Key   string
	Label string
}

// utf8BOM keeps spreadsheet tools from misreading the encoding.
const utf8BOM = "\ufeff"

// WriteTable emits rows as CSV. Every field is double-quoted regardless of
// content, embedded quotes are doubled, nil values become empty quoted
// strings, dates use the dd/mm/yyyy display locale and non-scalar values are
// JSON-stringified. The stdlib csv writer quotes only on demand, which is
// why this writer is hand-rolled.
func WriteTable(w io.Writer, cols []Column, rows []map[string]any) error {
	var b strings.Builder
	b.WriteString(utf8BOM)

	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = quote(col.Label)
	}
	b.WriteString(strings.Join(labels, ","))

	for _, row := range rows {
		b.WriteString("\n")
		fields := make([]string, len(cols))
		for i, col := range cols {
			fields[i] = quote(formatValue(row[col.Key]))
		}
		b.WriteString(strings.Join(fields, ","))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Filename appends the ISO date suffix: <base>_<YYYY-MM-DD>.csv.
func Filename(base string, now time.Time) string {
	return base + "_" + now.Format("2006-01-02") + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("02/01/2006")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val)
	case fmt.Stringer:
		return val.String()
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	default:
		return fmt.Sprint(v)
	}
}

// VehicleColumns is the column set of the vehicle export.
var VehicleColumns = []Column{
	{Key: "plateNumber", Label: "Plate Number"},
	{Key: "brand", Label: "Brand"},
	{Key: "model", Label: "Model"},
	{Key: "year", Label: "Year"},
	{Key: "type", Label: "Type"},
	{Key: "status", Label: "Status"},
	{Key: "mileage", Label: "Mileage (km)"},
	{Key: "fuelType", Label: "Fuel Type"},
}

// VehicleRows converts vehicles into export rows.
func VehicleRows(vehicles []fleet.Vehicle) []map[string]any {
	rows := make([]map[string]any, len(vehicles))
	for i, v := range vehicles {
		rows[i] = map[string]any{
			"plateNumber": v.PlateNumber,
			"brand":       v.Brand,
			"model":       v.Model,
			"year":        v.Year,
			"type":        string(v.Type),
			"status":      string(v.Status),
			"mileage":     v.Mileage,
			"fuelType":    v.FuelType,
		}
	}
	return rows
}

// FuelRecordColumns is the column set of the fuel export.
var FuelRecordColumns = []Column{
	{Key: "date", Label: "Date"},
	{Key: "vehicleId", Label: "Vehicle"},
	{Key: "quantity", Label: "Quantity (L)"},
	{Key: "cost", Label: "Cost"},
	{Key: "station", Label: "Station"},
	{Key: "mileage", Label: "Mileage (km)"},
}

// FuelRecordRows converts fuel records into export rows.
func FuelRecordRows(records []fleet.FuelRecord) []map[string]any {
	rows := make([]map[string]any, len(records))
	for i, f := range records {
		rows[i] = map[string]any{
			"date":      f.Date,
			"vehicleId": f.VehicleID,
			"quantity":  f.Quantity,
			"cost":      f.Cost,
			"station":   f.Station,
			"mileage":   f.Mileage,
		}
	}
	return rows
}

// PolicyColumns is the column set of the insurance export.
var PolicyColumns = []Column{
	{Key: "policyNumber", Label: "Policy Number"},
	{Key: "company", Label: "Company"},
	{Key: "vehicleId", Label: "Vehicle"},
	{Key: "type", Label: "Type"},
	{Key: "startDate", Label: "Start Date"},
	{Key: "endDate", Label: "End Date"},
	{Key: "premiumExcludingTax", Label: "Premium Excl. Tax"},
	{Key: "totalTaxAmount", Label: "Taxes"},
	{Key: "premiumIncludingTax", Label: "Premium Incl. Tax"},
	{Key: "status", Label: "Status"},
}

// PolicyRows converts insurance policies into export rows.
func PolicyRows(policies []fleet.InsurancePolicy) []map[string]any {
	rows := make([]map[string]any, len(policies))
	for i, p := range policies {
		rows[i] = map[string]any{
			"policyNumber":        p.PolicyNumber,
			"company":             p.Company,
			"vehicleId":           p.VehicleID,
			"type":                p.Type,
			"startDate":           p.StartDate,
			"endDate":             p.EndDate,
			"premiumExcludingTax": p.PremiumExcludingTax,
			"totalTaxAmount":      p.TotalTaxAmount,
			"premiumIncludingTax": p.PremiumIncludingTax,
			"status":              string(p.Status),
		}
	}
	return rows
}
