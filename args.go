package localize

import (
	"fmt"
	"reflect"
)

// appendArgs coerces value into zero or more positional format arguments and
// appends them to dst. Sequences are spliced element-wise in place; values
// that cannot serve as format arguments are dropped and reported through the
// dropped callback (which may be nil).
func appendArgs(dst []any, value any, dropped func(any)) []any {
	if value == nil {
		if dropped != nil {
			dropped(value)
		}
		return dst
	}

	switch v := value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return append(dst, v)
	case []byte:
		// One string-like argument; byte-wise splicing is never useful
		// in a format string.
		return append(dst, v)
	case fmt.Stringer:
		return append(dst, v)
	case error:
		return append(dst, v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		// Named byte-slice types get the same treatment as []byte.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append(dst, rv.Bytes())
		}
		for i := 0; i < rv.Len(); i++ {
			dst = appendArgs(dst, rv.Index(i).Interface(), dropped)
		}
		return dst
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = appendArgs(dst, rv.Index(i).Interface(), dropped)
		}
		return dst
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		// Named types with a formattable underlying kind pass through
		// unchanged; fmt resolves them positionally like their kind.
		return append(dst, value)
	case reflect.Pointer:
		if rv.IsNil() {
			break
		}
		return appendArgs(dst, rv.Elem().Interface(), dropped)
	}

	if dropped != nil {
		dropped(value)
	}
	return dst
}
