package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv renders the env-tagged fields of one or more struct pointers
// as .env lines. Zero values are skipped unless the field has an
// envDefault, in which case the current value is written so the file
// documents the effective setting.
func MarshalEnv(configs ...any) (string, error) {
	var lines []string
	for _, c := range configs {
		l, err := marshalOne(c)
		if err != nil {
			return "", err
		}
		lines = append(lines, l...)
	}

	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}
	return result, nil
}

func marshalOne(c any) ([]string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("env: expected pointer to struct, got %T", c)
	}
	v = v.Elem()
	t := v.Type()

	var lines []string
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")
		if tag == "" || !field.IsExported() {
			continue
		}

		key, _, _ := strings.Cut(tag, ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		_, hasDefault := field.Tag.Lookup("envDefault")
		if isZeroValue(val) && !hasDefault {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s=%s", key, quote(formatValue(val))))
	}
	return lines, nil
}

// quote wraps values godotenv would otherwise split or truncate.
func quote(s string) string {
	if s == "" || !strings.ContainsAny(s, " \t#\"'\\") {
		return s
	}
	return strconv.Quote(s)
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return v.IsZero()
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", v.Interface())
}
