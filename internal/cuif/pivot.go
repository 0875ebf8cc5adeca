package cuif

import (
	"regexp"
	"sort"
	"strconv"
)

// WideMatrix is the pivoted account-by-entity view of one record set. Rows
// are keyed by account code; Columns holds the entity labels in their final
// report order. Cells are absent (not zero) where the source had no parseable
// value for an (account, entity) pair.
type WideMatrix struct {
	Columns  []string
	Accounts []string
	cells    map[string]map[string]int64
}

// Cell returns the value at (account, column) and whether it is present.
func (m *WideMatrix) Cell(account, column string) (int64, bool) {
	row, ok := m.cells[account]
	if !ok {
		return 0, false
	}
	v, ok := row[column]
	return v, ok
}

// HasAccount reports whether the account appeared in the source data.
func (m *WideMatrix) HasAccount(account string) bool {
	_, ok := m.cells[account]
	return ok
}

// BuildMatrix pivots transformed records into a WideMatrix. The column and
// row universes come from the distinct entity labels and accounts in the
// input, including records whose value failed to parse. A second record for
// the same (account, entity) pair is a DataIntegrityError: the pivot refuses
// to pick a winner silently.
func BuildMatrix(records []TransformedRecord) (*WideMatrix, error) {
	matrix := &WideMatrix{cells: make(map[string]map[string]int64)}
	columns := make(map[string]struct{})
	seen := make(map[[2]string]struct{}, len(records))

	for _, r := range records {
		pair := [2]string{r.Account, r.EntityLabel}
		if _, dup := seen[pair]; dup {
			return nil, &DataIntegrityError{
				Account: r.Account,
				Entity:  r.EntityLabel,
				Message: "duplicate record for the same account and entity",
			}
		}
		seen[pair] = struct{}{}

		if _, ok := columns[r.EntityLabel]; !ok {
			columns[r.EntityLabel] = struct{}{}
			matrix.Columns = append(matrix.Columns, r.EntityLabel)
		}
		row, ok := matrix.cells[r.Account]
		if !ok {
			row = make(map[string]int64)
			matrix.cells[r.Account] = row
			matrix.Accounts = append(matrix.Accounts, r.Account)
		}
		if r.Value.Valid {
			row[r.EntityLabel] = r.Value.Value
		}
	}

	sortEntityLabels(matrix.Columns)
	return matrix, nil
}

var labelPrefixPattern = regexp.MustCompile(`^(\d+)\s*-`)

// sortEntityLabels orders columns ascending by the integer entity-code prefix
// of each label. Labels without a parseable numeric prefix sort after every
// numeric-prefixed label, lexicographically among themselves so the order is
// total.
func sortEntityLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		ni, oki := labelPrefix(labels[i])
		nj, okj := labelPrefix(labels[j])
		switch {
		case oki && okj:
			if ni != nj {
				return ni < nj
			}
			return labels[i] < labels[j]
		case oki:
			return true
		case okj:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
}

func labelPrefix(label string) (int, bool) {
	m := labelPrefixPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
