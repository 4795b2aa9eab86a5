package httpio

import (
	"reflect"
	"strings"
	"unicode"
)

// Sanitize recursively walks v (a pointer to a decoded payload) and strips
// null bytes and non-printable control characters from every string field,
// preserving tab, newline, and carriage return. It is idempotent and never
// rejects input.
func Sanitize(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(stripControl(rv.String()))
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).IsExported() {
				sanitizeValue(rv.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			elem := rv.MapIndex(key)
			if elem.Kind() == reflect.String {
				rv.SetMapIndex(key, reflect.ValueOf(stripControl(elem.String())))
			} else if elem.Kind() == reflect.Interface {
				if s, ok := elem.Interface().(string); ok {
					rv.SetMapIndex(key, reflect.ValueOf(stripControl(s)))
				}
			}
		}
	default:
	}
}

// CleanParam strips control characters from a single query or URL parameter
// value. Parameters never pass through the body pipeline, so handlers clean
// them here before they reach a filter or lookup.
func CleanParam(s string) string {
	return stripControl(s)
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return r
		}
		if r == 0 || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
