package export

import (
	"encoding/json"
	"strings"
	"time"
)

// Style selects the flattening conventions of a tabular target
type Style int

const (
	// StyleExcel joins nested keys with "." and renders arrays inline:
	// object arrays as "k: v" lines, primitive arrays comma-separated.
	StyleExcel Style = iota
	// StyleCSV joins nested keys with "_" and JSON-encodes every array.
	StyleCSV
)

// Entry is one flattened key/value cell. Value is a plain scalar:
// string, bool, number, time.Time or nil.
type Entry struct {
	Key   string
	Value any
}

// Flatten collapses a Value tree into ordered key/value entries suitable
// for one spreadsheet row. Nested maps merge into the parent with joined
// key names; arrays become single cells per the style.
func Flatten(v Value, style Style) []Entry {
	var out []Entry
	flattenInto(&out, v, "", style)
	return out
}

func flattenInto(out *[]Entry, v Value, prefix string, style Style) {
	switch v.Kind {
	case KindMap:
		for _, key := range v.Keys {
			name := key
			if prefix != "" {
				name = prefix + separator(style) + key
			}
			child := v.Fields[key]
			if child.Kind == KindMap {
				flattenInto(out, child, name, style)
			} else {
				*out = append(*out, Entry{Key: name, Value: cellValue(child, style)})
			}
		}
	default:
		*out = append(*out, Entry{Key: prefix, Value: cellValue(v, style)})
	}
}

func separator(style Style) string {
	if style == StyleCSV {
		return "_"
	}
	return "."
}

func cellValue(v Value, style Style) any {
	switch v.Kind {
	case KindScalar:
		return v.Scalar
	case KindDate:
		return v.Date
	case KindList:
		if style == StyleCSV {
			encoded, err := json.Marshal(v)
			if err != nil {
				return "[]"
			}
			return string(encoded)
		}
		return excelListCell(v)
	case KindMap:
		// only reachable for maps nested inside arrays
		return excelMapCell(v)
	default:
		return nil
	}
}

// excelListCell renders an array into a single Excel cell: object arrays
// one "k: v, k: v" line per item, primitive arrays comma-separated.
func excelListCell(v Value) string {
	if v.IsObjectList() {
		lines := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			lines = append(lines, excelMapCell(item))
		}
		return strings.Join(lines, "\n")
	}
	parts := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		parts = append(parts, item.ScalarString())
	}
	return strings.Join(parts, ", ")
}

func excelMapCell(v Value) string {
	pairs := make([]string, 0, len(v.Keys))
	for _, key := range v.Keys {
		pairs = append(pairs, key+": "+v.Fields[key].ScalarString())
	}
	return strings.Join(pairs, ", ")
}

// cellString renders a flattened cell value as text for CSV output
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return strings.Trim(string(encoded), `"`)
	}
}
