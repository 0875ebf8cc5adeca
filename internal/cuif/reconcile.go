package cuif

import "strings"

// Reconcile left-joins the account template onto the wide matrix. The output
// has exactly one row per template entry, in template order; accounts present
// only in the matrix are dropped; absent cells become zero. The description
// always comes from the template, overriding whatever nombre_cuenta the
// source carried. Columns are the matrix's full column set, untouched.
func Reconcile(template []TemplateEntry, matrix *WideMatrix) (*ReconciledTable, error) {
	table := &ReconciledTable{
		Columns: matrix.Columns,
		Rows:    make([]ReconciledRow, 0, len(template)),
	}

	for _, entry := range template {
		account := strings.TrimSpace(entry.Account)
		if account == "" {
			return nil, &DataIntegrityError{
				Account: entry.Account,
				Message: "template account code has no parseable text form",
			}
		}
		row := ReconciledRow{
			Account:     account,
			Description: entry.Description,
			Values:      make([]int64, len(matrix.Columns)),
		}
		for i, column := range matrix.Columns {
			if v, ok := matrix.Cell(account, column); ok {
				row.Values[i] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
