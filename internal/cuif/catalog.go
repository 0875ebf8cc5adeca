package cuif

import "github.com/shopspring/decimal"

// EntityType is one entry of the closed SFC entity-type enumeration. Code is
// the numeric type identifier used by the regulator; SheetCode is the
// 4-character zero-padded form embedded in sheet and file names.
type EntityType struct {
	Label     string
	Code      string
	SheetCode string
}

// UnitScale is a named divisor applied to every monetary value, plus the
// human-readable label the report declares for that range of values.
type UnitScale struct {
	Name    string
	Divisor decimal.Decimal
	Label   string
}

// Catalog bundles the process-wide constant tables: the entity-type
// enumeration with sheet codes, the unit-scale table, and the set of account
// codes published with an inverted sign. It is built once at startup and
// passed into the components that need it; none of the tables are mutated
// after construction.
type Catalog struct {
	entityTypes map[string]EntityType
	entityOrder []string
	units       map[string]UnitScale
	unitOrder   []string
	signFlip    map[string]struct{}
}

// DefaultCatalog builds the catalog for the SFC CUIF dataset.
func DefaultCatalog() *Catalog {
	entityTypes := []EntityType{
		{Label: "ESTABLECIMIENTOS BANCARIOS", Code: "1", SheetCode: "0001"},
		{Label: "CORPORACIONES FINANCIERAS", Code: "2", SheetCode: "0002"},
		{Label: "COMPANIAS DE FINANCIAMIENTO", Code: "4", SheetCode: "0004"},
		{Label: "SOCIEDADES FIDUCIARIAS", Code: "5", SheetCode: "0005"},
		{Label: "SOCIEDADES DE CAPITALIZACION", Code: "11", SheetCode: "0011"},
		{Label: "COMPANIAS DE SEGUROS DE VIDA", Code: "12", SheetCode: "0012"},
		{Label: "COMPANIAS DE SEGUROS GENERALES", Code: "13", SheetCode: "0013"},
		{Label: "COOPERATIVAS FINANCIERAS", Code: "22", SheetCode: "0022"},
		{Label: "SOCIEDADES ADMINISTRADORAS DE FONDOS DE PENSIONES Y CESANTIAS", Code: "23", SheetCode: "0023"},
		{Label: "SOCIEDADES COMISIONISTAS DE BOLSA", Code: "25", SheetCode: "0025"},
		{Label: "SOCIEDADES ADMINISTRADORAS DE INVERSION", Code: "26", SheetCode: "0026"},
		{Label: "ALMACENES GENERALES DE DEPOSITO", Code: "27", SheetCode: "0027"},
		{Label: "INSTITUCIONES OFICIALES ESPECIALES", Code: "32", SheetCode: "0032"},
	}

	units := []UnitScale{
		{Name: "Sin Unidades", Divisor: decimal.NewFromInt(1), Label: "Pesos"},
		{Name: "Miles", Divisor: decimal.NewFromInt(1_000), Label: "Miles de Pesos"},
		{Name: "Millones", Divisor: decimal.NewFromInt(1_000_000), Label: "Millones de Pesos"},
		{Name: "Cientos de Millones", Divisor: decimal.NewFromInt(100_000_000), Label: "Cientos de Millones de Pesos"},
		{Name: "Miles de Millones", Divisor: decimal.NewFromInt(1_000_000_000), Label: "Miles de Millones de Pesos"},
		{Name: "Billones", Divisor: decimal.NewFromInt(1_000_000_000_000), Label: "Billones de Pesos"},
	}

	// Income and result accounts the source publishes with an inverted sign.
	// Their magnitude is reported; this is presentation correction, not a
	// filter, and applies regardless of entity type or unit.
	signFlip := []string{"390500", "391500", "410000", "420000"}

	catalog := &Catalog{
		entityTypes: make(map[string]EntityType, len(entityTypes)),
		entityOrder: make([]string, 0, len(entityTypes)),
		units:       make(map[string]UnitScale, len(units)),
		unitOrder:   make([]string, 0, len(units)),
		signFlip:    make(map[string]struct{}, len(signFlip)),
	}
	for _, e := range entityTypes {
		catalog.entityTypes[e.Label] = e
		catalog.entityOrder = append(catalog.entityOrder, e.Label)
	}
	for _, u := range units {
		catalog.units[u.Name] = u
		catalog.unitOrder = append(catalog.unitOrder, u.Name)
	}
	for _, code := range signFlip {
		catalog.signFlip[code] = struct{}{}
	}
	return catalog
}

// EntityType looks up an entity type by its exact label.
func (c *Catalog) EntityType(label string) (EntityType, bool) {
	e, ok := c.entityTypes[label]
	return e, ok
}

// EntityTypes returns the enumeration in catalog order.
func (c *Catalog) EntityTypes() []EntityType {
	out := make([]EntityType, 0, len(c.entityOrder))
	for _, label := range c.entityOrder {
		out = append(out, c.entityTypes[label])
	}
	return out
}

// Unit looks up a unit scale by name.
func (c *Catalog) Unit(name string) (UnitScale, bool) {
	u, ok := c.units[name]
	return u, ok
}

// Units returns the unit-scale table in catalog order.
func (c *Catalog) Units() []UnitScale {
	out := make([]UnitScale, 0, len(c.unitOrder))
	for _, name := range c.unitOrder {
		out = append(out, c.units[name])
	}
	return out
}

// IsSignFlipped reports whether the account code is published with an
// inverted sign.
func (c *Catalog) IsSignFlipped(account string) bool {
	_, ok := c.signFlip[account]
	return ok
}
