// Package roster defines the canonical query descriptor sent to the player
// endpoint and the field catalog that validates it.
package roster

// DataType classifies a filterable field.
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeNumeric DataType = "numeric"
	DataTypeBoolean DataType = "boolean"
)

// Operator is a filter comparison operator, wire-encoded as-is.
type Operator string

const (
	OpEquals         Operator = "="
	OpNotEquals      Operator = "!="
	OpContains       Operator = "contains"
	OpNotContains    Operator = "not_contains"
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// SearchField selects which column free-text search matches against.
type SearchField string

const (
	SearchFieldAll          SearchField = "all"
	SearchFieldName         SearchField = "name"
	SearchFieldPosition     SearchField = "position"
	SearchFieldTeam         SearchField = "team"
	SearchFieldNationality  SearchField = "nationality"
	SearchFieldJerseyNumber SearchField = "jersey_number"
)

// SortDirection represents ordering direction for sortable fields.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField enumerates fields the endpoint can sort by.
type SortField string

const (
	SortFieldName         SortField = "name"
	SortFieldPosition     SortField = "position"
	SortFieldTeam         SortField = "team"
	SortFieldJerseyNumber SortField = "jersey_number"
	SortFieldGoals        SortField = "goals"
	SortFieldAssists      SortField = "assists"
	SortFieldPoints       SortField = "points"
	SortFieldActiveStatus SortField = "active_status"
)

var validSearchFields = map[SearchField]bool{
	SearchFieldAll: true, SearchFieldName: true, SearchFieldPosition: true,
	SearchFieldTeam: true, SearchFieldNationality: true, SearchFieldJerseyNumber: true,
}

var validSortFields = map[SortField]bool{
	SortFieldName: true, SortFieldPosition: true, SortFieldTeam: true,
	SortFieldJerseyNumber: true, SortFieldActiveStatus: true,
	SortFieldGoals: true, SortFieldAssists: true, SortFieldPoints: true,
	// Stat-split columns exposed by the endpoint.
	"games_played": true,
	"regular_season_games_played": true, "regular_season_goals": true,
	"regular_season_assists": true, "regular_season_points": true,
	"playoff_games_played": true, "playoff_goals": true,
	"playoff_assists": true, "playoff_points": true,
}

// filterFieldTypes maps every filterable field to its data type. Fields not
// present here cannot be filtered on.
var filterFieldTypes = map[string]DataType{
	"position": DataTypeString,
	"team":     DataTypeString,

	"jersey_number":               DataTypeNumeric,
	"goals":                       DataTypeNumeric,
	"assists":                     DataTypeNumeric,
	"points":                      DataTypeNumeric,
	"games_played":                DataTypeNumeric,
	"regular_season_games_played": DataTypeNumeric,
	"regular_season_goals":        DataTypeNumeric,
	"regular_season_assists":      DataTypeNumeric,
	"regular_season_points":       DataTypeNumeric,
	"playoff_games_played":        DataTypeNumeric,
	"playoff_goals":               DataTypeNumeric,
	"playoff_assists":             DataTypeNumeric,
	"playoff_points":              DataTypeNumeric,

	"active_status": DataTypeBoolean,
}

var operatorsByType = map[DataType][]Operator{
	DataTypeString:  {OpEquals, OpNotEquals, OpContains, OpNotContains},
	DataTypeNumeric: {OpEquals, OpNotEquals, OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual},
	DataTypeBoolean: {OpEquals, OpNotEquals},
}

// FieldType returns the data type of a filterable field.
func FieldType(field string) (DataType, bool) {
	dt, ok := filterFieldTypes[field]
	return dt, ok
}

// FilterFields returns every filterable field name, in no particular order.
func FilterFields() []string {
	out := make([]string, 0, len(filterFieldTypes))
	for f := range filterFieldTypes {
		out = append(out, f)
	}
	return out
}

// OperatorsFor returns the allowed operators for a field. Unknown fields get
// an empty set; callers render a disabled operator control rather than fail.
func OperatorsFor(field string) []Operator {
	dt, ok := filterFieldTypes[field]
	if !ok {
		return nil
	}
	ops := operatorsByType[dt]
	out := make([]Operator, len(ops))
	copy(out, ops)
	return out
}

// AllowsOperator reports whether op is valid for field.
func AllowsOperator(field string, op Operator) bool {
	for _, allowed := range OperatorsFor(field) {
		if allowed == op {
			return true
		}
	}
	return false
}

// OperatorLabel returns a human-readable label for an operator in the
// context of a data type.
func OperatorLabel(op Operator, dt DataType) string {
	switch op {
	case OpEquals:
		if dt == DataTypeBoolean {
			return "is"
		}
		return "equals"
	case OpNotEquals:
		if dt == DataTypeBoolean {
			return "is not"
		}
		return "not equals"
	case OpContains:
		return "contains"
	case OpNotContains:
		return "does not contain"
	case OpGreater:
		return "greater than"
	case OpLess:
		return "less than"
	case OpGreaterOrEqual:
		return "greater than or equal"
	case OpLessOrEqual:
		return "less than or equal"
	default:
		return string(op)
	}
}

// ValidSearchField reports whether f is a known search target.
func ValidSearchField(f SearchField) bool {
	return validSearchFields[f]
}

// ValidSortField reports whether f is a known sort column.
func ValidSortField(f SortField) bool {
	return validSortFields[f]
}
