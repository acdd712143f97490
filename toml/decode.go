package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses settings data and stores the result in the value pointed to by v
// Keys absent from data leave the corresponding fields untouched, so v can be
// pre-filled with defaults
func Unmarshal(data []byte, v any) error {
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(tree, v)
}

// Decode maps a parsed tree onto v using `toml` struct tags, falling back to field names
func Decode(tree map[string]any, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode: target must be a non-nil pointer")
	}
	return decodeInto(tree, rv.Elem())
}

func decodeInto(data any, dst reflect.Value) error {
	if data == nil {
		return nil
	}

	switch dst.Kind() {
	case reflect.Ptr:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decodeInto(data, dst.Elem())

	case reflect.Struct:
		table, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		return decodeStruct(table, dst)

	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		table, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMapWithSize(dst.Type(), len(table)))
		}
		for k, raw := range table {
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := decodeInto(raw, elem); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			dst.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), elem)
		}

	case reflect.Slice:
		arr, ok := data.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", data)
		}
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, raw := range arr {
			if err := decodeInto(raw, out.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		dst.Set(out)

	case reflect.Interface:
		dst.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := data.(int)
		if !ok {
			return fmt.Errorf("cannot convert %T to integer", data)
		}
		if dst.OverflowInt(int64(n)) {
			return fmt.Errorf("integer %d overflows %s", n, dst.Type())
		}
		dst.SetInt(int64(n))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int)
		if !ok || n < 0 {
			return fmt.Errorf("cannot convert %v to unsigned integer", data)
		}
		if dst.OverflowUint(uint64(n)) {
			return fmt.Errorf("integer %d overflows %s", n, dst.Type())
		}
		dst.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			dst.SetFloat(f)
		case int:
			dst.SetFloat(float64(f))
		default:
			return fmt.Errorf("cannot convert %T to float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		dst.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
		dst.SetBool(b)

	default:
		return fmt.Errorf("unsupported kind %s", dst.Kind())
	}

	return nil
}

func decodeStruct(table map[string]any, dst reflect.Value) error {
	typ := dst.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, skip := fieldKey(field)
		if skip {
			continue
		}
		raw, ok := table[key]
		if !ok {
			continue
		}
		if err := decodeInto(raw, dst.Field(i)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// fieldKey resolves the settings key for a struct field
func fieldKey(field reflect.StructField) (key string, skip bool) {
	tag := field.Tag.Get("toml")
	if tag == "" {
		return field.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		return field.Name, false
	}
	return name, false
}
