package cuif

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transformer turns raw dataset rows into scaled, sign-corrected records
// ready for pivoting. It carries the catalog (for the sign-flip set) and the
// unit scale selected for the report.
type Transformer struct {
	catalog *Catalog
	unit    UnitScale
}

func NewTransformer(catalog *Catalog, unit UnitScale) *Transformer {
	return &Transformer{catalog: catalog, unit: unit}
}

// Apply transforms every record. A valor that does not parse as a number
// becomes an absent cell, never an error and never a zero. Rounding after
// unit division is half-away-from-zero to the nearest integer.
func (t *Transformer) Apply(records []RawRecord) []TransformedRecord {
	out := make([]TransformedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, TransformedRecord{
			Account:     r.Cuenta,
			AccountName: r.NombreCuenta,
			EntityLabel: EntityLabel(r.CodigoEntidad, r.NombreEntidad),
			Value:       t.scaleValue(r.Cuenta, r.Valor),
		})
	}
	return out
}

func (t *Transformer) scaleValue(account, raw string) CellValue {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return CellValue{}
	}
	if t.catalog.IsSignFlipped(account) {
		d = d.Abs()
	}
	scaled := d.Div(t.unit.Divisor).Round(0)
	return CellValue{Value: scaled.IntPart(), Valid: true}
}

// EntityLabel builds the column label for a reporting entity.
func EntityLabel(code, name string) string {
	return code + " - " + name
}
