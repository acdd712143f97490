package toml

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Marshal returns the settings encoding of a struct
// Scalars and arrays are written first, nested structs become [tables] in field order
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("marshal: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal: root must be a struct, got %s", rv.Kind())
	}

	var buf bytes.Buffer
	if err := writeTable(&buf, rv, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTable(buf *bytes.Buffer, rv reflect.Value, prefix string) error {
	typ := rv.Type()
	var tables []int

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, skip := fieldKey(field)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if fv.Kind() == reflect.Struct {
			tables = append(tables, i)
			continue
		}
		buf.WriteString(key)
		buf.WriteString(" = ")
		if err := writeValue(buf, fv); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		buf.WriteByte('\n')
	}

	for _, i := range tables {
		key, _ := fieldKey(typ.Field(i))
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Ptr {
			fv = fv.Elem()
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("[" + full + "]\n")
		if err := writeTable(buf, fv, full); err != nil {
			return err
		}
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.String:
		buf.WriteString(strconv.Quote(v.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	case reflect.Slice, reflect.Array:
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := writeValue(buf, v.Index(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
