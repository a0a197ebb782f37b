package roster

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Filter is a single applied filter condition. Value is carried as entered;
// Complete reports whether the condition may be materialized into a query,
// and MarshalJSON emits the wire-typed value the endpoint expects.
type Filter struct {
	Field    string
	Operator Operator
	Value    string
}

// Complete reports whether the filter satisfies the descriptor invariant:
// field, operator and value all present, value non-empty, operator allowed
// for the field, and numeric values parseable. "0" and "false" are valid
// values; the empty string is the unset sentinel.
func (f Filter) Complete() bool {
	if f.Field == "" || f.Operator == "" || f.Value == "" {
		return false
	}
	dt, ok := FieldType(f.Field)
	if !ok || !AllowsOperator(f.Field, f.Operator) {
		return false
	}
	if dt == DataTypeNumeric {
		if _, err := strconv.ParseFloat(f.Value, 64); err != nil {
			return false
		}
	}
	return true
}

type wireFilter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// MarshalJSON encodes the value with its wire type: JSON numbers for numeric
// fields, JSON booleans for boolean fields, strings otherwise.
func (f Filter) MarshalJSON() ([]byte, error) {
	w := wireFilter{Field: f.Field, Operator: string(f.Operator), Value: f.Value}
	switch dt, _ := FieldType(f.Field); dt {
	case DataTypeNumeric:
		if n, err := strconv.ParseFloat(f.Value, 64); err == nil {
			if n == float64(int64(n)) {
				w.Value = int64(n)
			} else {
				w.Value = n
			}
		}
	case DataTypeBoolean:
		w.Value = parseBoolValue(f.Value)
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the wire form, converting typed values back to the
// string representation used in client state.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var w wireFilter
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	f.Field = w.Field
	f.Operator = Operator(w.Operator)
	switch v := w.Value.(type) {
	case string:
		f.Value = v
	case float64:
		f.Value = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		f.Value = strconv.FormatBool(v)
	case nil:
		f.Value = ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		f.Value = string(b)
	}
	return nil
}

// parseBoolValue mirrors the endpoint's boolean coercion.
func parseBoolValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "active":
		return true
	default:
		return false
	}
}
