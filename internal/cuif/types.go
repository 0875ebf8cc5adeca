package cuif

import (
	"time"
)

// RawRecord is one row of the CUIF open-data resource as it comes off the
// wire. Every field is text-typed in the upstream JSON, including valor; the
// transformer is responsible for numeric interpretation.
type RawRecord struct {
	FechaCorte        string `json:"fecha_corte"`
	NombreMoneda      string `json:"nombre_moneda"`
	NombreTipoEntidad string `json:"nombre_tipo_entidad"`
	CodigoEntidad     string `json:"codigo_entidad"`
	NombreEntidad     string `json:"nombre_entidad"`
	Cuenta            string `json:"cuenta"`
	NombreCuenta      string `json:"nombre_cuenta"`
	Valor             string `json:"valor"`
}

// FilterCriteria identifies one record set on the remote dataset: entity type
// plus an inclusive [From, To] cutoff-date interval. Currency is always the
// "Total" aggregate and is not configurable. A criteria value is built once
// per report request and shared by the count and download queries so both
// observe the same filter.
type FilterCriteria struct {
	EntityType string
	From       time.Time
	To         time.Time
}

// TransformedRecord is a RawRecord after sign correction, parsing and unit
// scaling. Value.Valid is false when valor did not parse as a number; that
// absence survives into the pivot as an empty cell rather than a zero.
type TransformedRecord struct {
	Account     string
	AccountName string
	EntityLabel string
	Value       CellValue
}

// CellValue is a scaled, rounded monetary value that may be absent. Absence
// and zero are distinct states until reconciliation fills gaps with zero.
type CellValue struct {
	Value int64
	Valid bool
}

// TemplateEntry is one canonical account from the NIIF template workbook.
// Account codes are carried as text so leading zeros survive.
type TemplateEntry struct {
	Account     string
	Description string
}

// ReconciledRow is one output row: a template account with one value per
// matrix column, zeros where the source had nothing.
type ReconciledRow struct {
	Account     string
	Description string
	Values      []int64
}

// ReconciledTable is the final tabular artifact handed to layout: one row per
// template account in template order, columns exactly as discovered in the
// wide matrix.
type ReconciledTable struct {
	Columns []string
	Rows    []ReconciledRow
}
