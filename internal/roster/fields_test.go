package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorsFor(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected []Operator
	}{
		{
			name:     "string field",
			field:    "position",
			expected: []Operator{OpEquals, OpNotEquals, OpContains, OpNotContains},
		},
		{
			name:     "numeric field",
			field:    "goals",
			expected: []Operator{OpEquals, OpNotEquals, OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual},
		},
		{
			name:     "boolean field",
			field:    "active_status",
			expected: []Operator{OpEquals, OpNotEquals},
		},
		{
			name:     "unknown field returns empty set",
			field:    "shoe_size",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OperatorsFor(tt.field))
		})
	}
}

func TestFieldType(t *testing.T) {
	dt, ok := FieldType("team")
	assert.True(t, ok)
	assert.Equal(t, DataTypeString, dt)

	dt, ok = FieldType("playoff_points")
	assert.True(t, ok)
	assert.Equal(t, DataTypeNumeric, dt)

	_, ok = FieldType("birthplace")
	assert.False(t, ok)
}

func TestAllowsOperator(t *testing.T) {
	assert.True(t, AllowsOperator("team", OpContains))
	assert.False(t, AllowsOperator("goals", OpContains))
	assert.True(t, AllowsOperator("goals", OpGreaterOrEqual))
	assert.False(t, AllowsOperator("active_status", OpGreater))
	assert.False(t, AllowsOperator("unknown", OpEquals))
}

func TestOperatorLabel(t *testing.T) {
	assert.Equal(t, "equals", OperatorLabel(OpEquals, DataTypeNumeric))
	assert.Equal(t, "is", OperatorLabel(OpEquals, DataTypeBoolean))
	assert.Equal(t, "does not contain", OperatorLabel(OpNotContains, DataTypeString))
	assert.Equal(t, "greater than or equal", OperatorLabel(OpGreaterOrEqual, DataTypeNumeric))
}

func TestValidSearchAndSortFields(t *testing.T) {
	assert.True(t, ValidSearchField(SearchFieldJerseyNumber))
	assert.False(t, ValidSearchField("handedness"))
	assert.True(t, ValidSortField(SortFieldActiveStatus))
	assert.True(t, ValidSortField("regular_season_points"))
	assert.False(t, ValidSortField("nationality"))
}
