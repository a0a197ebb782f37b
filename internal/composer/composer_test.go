package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-browser/internal/roster"
)

func TestNewStartsWithSingleEmptyRow(t *testing.T) {
	c := New()

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].ID)
	assert.Empty(t, rows[0].Field)
	assert.Empty(t, rows[0].Operator)
	assert.Empty(t, rows[0].Value)
	assert.Empty(t, c.ValidRows())
}

func TestInitializeSeedsFromApplied(t *testing.T) {
	c := New()
	applied := []roster.Filter{
		{Field: "position", Operator: roster.OpEquals, Value: "C"},
		{Field: "goals", Operator: roster.OpGreater, Value: "20"},
	}

	c.Initialize(applied)

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "position", rows[0].Field)
	assert.Equal(t, roster.OpGreater, rows[1].Operator)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, applied, c.ValidRows())
}

func TestInitializeDiscardsStaleEdits(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	c.SetField(rowID, "goals")
	c.SetOperator(rowID, roster.OpGreater)
	c.SetValue(rowID, "30")

	// Re-open with the same (empty) applied list: edits from the previous
	// cycle must not leak in.
	c.Initialize(nil)

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Field)
	assert.Empty(t, c.ValidRows())
}

func TestSetFieldResetsOperatorAndValue(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	require.True(t, c.SetField(rowID, "goals"))
	require.True(t, c.SetOperator(rowID, roster.OpGreaterOrEqual))
	require.True(t, c.SetValue(rowID, "10"))

	require.True(t, c.SetField(rowID, "position"))

	row := c.Rows()[0]
	assert.Equal(t, "position", row.Field)
	assert.Empty(t, row.Operator)
	assert.Empty(t, row.Value)
}

func TestSetFieldSameFieldKeepsOperatorAndValue(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	c.SetField(rowID, "goals")
	c.SetOperator(rowID, roster.OpGreater)
	c.SetValue(rowID, "10")

	require.True(t, c.SetField(rowID, "goals"))

	row := c.Rows()[0]
	assert.Equal(t, roster.OpGreater, row.Operator)
	assert.Equal(t, "10", row.Value)
}

func TestSetOperatorResetsValue(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	c.SetField(rowID, "goals")
	c.SetOperator(rowID, roster.OpGreater)
	c.SetValue(rowID, "10")

	require.True(t, c.SetOperator(rowID, roster.OpLess))

	row := c.Rows()[0]
	assert.Equal(t, roster.OpLess, row.Operator)
	assert.Empty(t, row.Value)
}

func TestSetOperatorRejectsDisallowed(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	c.SetField(rowID, "position")

	assert.False(t, c.SetOperator(rowID, roster.OpGreater))
	assert.Empty(t, c.Rows()[0].Operator)

	// No field chosen yet means no operator is allowed either.
	other := c.AddRow()
	assert.False(t, c.SetOperator(other, roster.OpEquals))
}

func TestUnknownRowID(t *testing.T) {
	c := New()

	assert.False(t, c.SetField("nope", "goals"))
	assert.False(t, c.SetOperator("nope", roster.OpEquals))
	assert.False(t, c.SetValue("nope", "1"))
	assert.False(t, c.RemoveRow("nope"))
}

func TestValidRowsExcludesIncomplete(t *testing.T) {
	c := New()
	first := c.Rows()[0].ID
	c.SetField(first, "goals")
	c.SetOperator(first, roster.OpGreaterOrEqual)
	c.SetValue(first, "not-a-number") // numeric field: silently invalid

	second := c.AddRow()
	c.SetField(second, "position")
	c.SetOperator(second, roster.OpEquals)
	c.SetValue(second, "D")

	third := c.AddRow()
	c.SetField(third, "active_status")
	c.SetOperator(third, roster.OpEquals) // value still unset

	valid := c.ValidRows()
	require.Len(t, valid, 1)
	assert.Equal(t, "position", valid[0].Field)

	// Zero and false are values, not sentinels.
	c.SetValue(first, "0")
	c.SetValue(third, "false")
	assert.Len(t, c.ValidRows(), 3)
}

func TestRemoveRowKeepsAtLeastOne(t *testing.T) {
	c := New()
	only := c.Rows()[0].ID
	c.SetField(only, "goals")

	require.True(t, c.RemoveRow(only))

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.NotEqual(t, only, rows[0].ID)
	assert.Empty(t, rows[0].Field)
}

func TestRemoveRowPreservesOtherIdentities(t *testing.T) {
	c := New()
	first := c.Rows()[0].ID
	second := c.AddRow()
	third := c.AddRow()

	require.True(t, c.RemoveRow(second))

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, first, rows[0].ID)
	assert.Equal(t, third, rows[1].ID)
}

func TestClearAllAndApply(t *testing.T) {
	c := New()
	rowID := c.Rows()[0].ID
	c.SetField(rowID, "team")
	c.SetOperator(rowID, roster.OpContains)
	c.SetValue(rowID, "Bruins")

	applied := c.Apply()
	require.Len(t, applied, 1)
	assert.Equal(t, roster.OpContains, applied[0].Operator)

	c.ClearAll()
	require.Len(t, c.Rows(), 1)
	assert.Empty(t, c.ValidRows())
}
