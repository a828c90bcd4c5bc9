package export

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates the Value union
type Kind int

const (
	KindScalar Kind = iota
	KindDate
	KindMap
	KindList
)

// Value is a renderer-neutral tree built from a report payload. Maps keep
// their key order so exports are deterministic and follow the payload's
// field order.
type Value struct {
	Kind   Kind
	Scalar any
	Date   time.Time
	Keys   []string
	Fields map[string]Value
	Items  []Value
}

// Scalar constructs a scalar value
func scalarValue(v any) Value {
	return Value{Kind: KindScalar, Scalar: v}
}

// IsObjectList reports whether the value is a non-empty list of maps
func (v Value) IsObjectList() bool {
	if v.Kind != KindList || len(v.Items) == 0 {
		return false
	}
	for _, item := range v.Items {
		if item.Kind != KindMap {
			return false
		}
	}
	return true
}

// ScalarString formats a scalar or date for cell output. Dates render
// as RFC 3339 and nil as an empty string.
func (v Value) ScalarString() string {
	switch v.Kind {
	case KindDate:
		return v.Date.Format(time.RFC3339)
	case KindScalar:
		if v.Scalar == nil {
			return ""
		}
		return fmt.Sprintf("%v", v.Scalar)
	default:
		return ""
	}
}

// MarshalJSON serializes the value preserving map key order
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindDate:
		return json.Marshal(v.Date)
	case KindMap:
		var b strings.Builder
		b.WriteByte('{')
		for i, key := range v.Keys {
			if i > 0 {
				b.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			b.Write(k)
			b.WriteByte(':')
			field, err := json.Marshal(v.Fields[key])
			if err != nil {
				return nil, err
			}
			b.Write(field)
		}
		b.WriteByte('}')
		return []byte(b.String()), nil
	case KindList:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			encoded, err := json.Marshal(item)
			if err != nil {
				return nil, err
			}
			b.Write(encoded)
		}
		b.WriteByte(']')
		return []byte(b.String()), nil
	default:
		return json.Marshal(v.Scalar)
	}
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// FromPayload converts an arbitrary report payload into a Value tree.
// Struct fields follow declaration order and use their json tag names;
// map keys are sorted for determinism.
func FromPayload(payload any) Value {
	if payload == nil {
		return scalarValue(nil)
	}
	return fromReflect(reflect.ValueOf(payload))
}

func fromReflect(rv reflect.Value) Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return scalarValue(nil)
		}
		rv = rv.Elem()
	}

	switch rv.Type() {
	case timeType:
		return Value{Kind: KindDate, Date: rv.Interface().(time.Time)}
	case uuidType:
		return scalarValue(rv.Interface().(uuid.UUID).String())
	case decimalType:
		f, _ := rv.Interface().(decimal.Decimal).Float64()
		return scalarValue(f)
	}

	switch rv.Kind() {
	case reflect.Struct:
		return fromStruct(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Slice, reflect.Array:
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, fromReflect(rv.Index(i)))
		}
		return Value{Kind: KindList, Items: items}
	case reflect.String:
		return scalarValue(rv.String())
	case reflect.Bool:
		return scalarValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalarValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scalarValue(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return scalarValue(rv.Float())
	default:
		return scalarValue(fmt.Sprintf("%v", rv.Interface()))
	}
}

func fromStruct(rv reflect.Value) Value {
	t := rv.Type()
	out := Value{Kind: KindMap, Fields: make(map[string]Value)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		omitEmpty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}

		fv := rv.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct {
			embedded := fromStruct(fv)
			for _, k := range embedded.Keys {
				out.Keys = append(out.Keys, k)
				out.Fields[k] = embedded.Fields[k]
			}
			continue
		}
		if omitEmpty && fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}

		out.Keys = append(out.Keys, name)
		out.Fields[name] = fromReflect(fv)
	}
	return out
}

func fromMap(rv reflect.Value) Value {
	out := Value{Kind: KindMap, Fields: make(map[string]Value)}
	keys := make([]string, 0, rv.Len())
	byKey := make(map[string]reflect.Value, rv.Len())
	for _, key := range rv.MapKeys() {
		k := fmt.Sprintf("%v", key.Interface())
		keys = append(keys, k)
		byKey[k] = rv.MapIndex(key)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Keys = append(out.Keys, k)
		out.Fields[k] = fromReflect(byKey[k])
	}
	return out
}
