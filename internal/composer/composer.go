// Package composer holds the draft filter rows a user edits before applying
// them as a filter list. Drafts never leave this package incomplete: only
// ValidRows survives Apply.
package composer

import (
	"github.com/google/uuid"

	"roster-browser/internal/roster"
)

// DraftRow is one in-progress filter condition. Each of field, operator and
// value may be unset. The ID is stable across edits and independent of the
// row's position, so removing one row cannot corrupt another's identity.
type DraftRow struct {
	ID       string
	Field    string
	Operator roster.Operator
	Value    string
}

// Filter converts the draft to a descriptor; meaningful only for valid rows.
func (r DraftRow) Filter() roster.Filter {
	return roster.Filter{Field: r.Field, Operator: r.Operator, Value: r.Value}
}

// Valid reports whether the row is complete enough to apply.
func (r DraftRow) Valid() bool {
	return r.Filter().Complete()
}

// Composer owns the draft row set for one open/close cycle of the filter
// panel. Not safe for concurrent use; it lives on the UI event loop.
type Composer struct {
	rows []DraftRow
}

func New() *Composer {
	c := &Composer{}
	c.Initialize(nil)
	return c
}

func newRowID() string {
	return uuid.New().String()
}

// Initialize replaces all draft rows with rows seeded from applied, or with
// a single empty row when applied is empty. Callers run this on every
// closed-to-open transition so edits from a cancelled cycle never leak in.
func (c *Composer) Initialize(applied []roster.Filter) {
	if len(applied) == 0 {
		c.rows = []DraftRow{{ID: newRowID()}}
		return
	}
	rows := make([]DraftRow, 0, len(applied))
	for _, f := range applied {
		rows = append(rows, DraftRow{
			ID:       newRowID(),
			Field:    f.Field,
			Operator: f.Operator,
			Value:    f.Value,
		})
	}
	c.rows = rows
}

// Rows returns a copy of the current draft rows in order.
func (c *Composer) Rows() []DraftRow {
	out := make([]DraftRow, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *Composer) find(rowID string) *DraftRow {
	for i := range c.rows {
		if c.rows[i].ID == rowID {
			return &c.rows[i]
		}
	}
	return nil
}

// SetField assigns a field to a row and resets its operator and value. A
// repeated assignment of the same field is a no-op. Returns false when the
// row does not exist.
func (c *Composer) SetField(rowID, field string) bool {
	row := c.find(rowID)
	if row == nil {
		return false
	}
	if row.Field == field {
		return true
	}
	row.Field = field
	row.Operator = ""
	row.Value = ""
	return true
}

// SetOperator assigns an operator to a row and resets its value. Operators
// not allowed for the row's field are ignored.
func (c *Composer) SetOperator(rowID string, op roster.Operator) bool {
	row := c.find(rowID)
	if row == nil {
		return false
	}
	if !roster.AllowsOperator(row.Field, op) {
		return false
	}
	if row.Operator == op {
		return true
	}
	row.Operator = op
	row.Value = ""
	return true
}

// SetValue assigns a raw value to a row. No coercion happens here; a
// non-numeric value on a numeric field simply keeps the row invalid.
func (c *Composer) SetValue(rowID, value string) bool {
	row := c.find(rowID)
	if row == nil {
		return false
	}
	row.Value = value
	return true
}

// AddRow appends one empty draft row and returns its ID.
func (c *Composer) AddRow() string {
	row := DraftRow{ID: newRowID()}
	c.rows = append(c.rows, row)
	return row.ID
}

// RemoveRow deletes the row. Emptying the set substitutes a fresh empty row,
// so at least one row always exists.
func (c *Composer) RemoveRow(rowID string) bool {
	for i := range c.rows {
		if c.rows[i].ID == rowID {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			if len(c.rows) == 0 {
				c.rows = []DraftRow{{ID: newRowID()}}
			}
			return true
		}
	}
	return false
}

// ClearAll resets the composer to a single empty row.
func (c *Composer) ClearAll() {
	c.Initialize(nil)
}

// ValidRows returns the complete draft rows as filter descriptors, in row
// order. This drives the "N filters ready to apply" summary.
func (c *Composer) ValidRows() []roster.Filter {
	out := make([]roster.Filter, 0, len(c.rows))
	for _, row := range c.rows {
		if row.Valid() {
			out = append(out, row.Filter())
		}
	}
	return out
}

// Apply returns the valid rows as the new applied filter list. The caller
// closes the panel and hands the list to the orchestrator.
func (c *Composer) Apply() []roster.Filter {
	return c.ValidRows()
}

// Cancel discards the draft set. The applied list is untouched; the next
// open re-seeds via Initialize.
func (c *Composer) Cancel() {
	c.Initialize(nil)
}
