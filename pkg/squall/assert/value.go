package assert

import (
	"fmt"
	"reflect"
)

// displayValue renders a value for failure messages. Func and channel kinds
// have no useful textual display and report false, which selects the generic
// "values differ" phrasing.
func displayValue(v any) (string, bool) {
	if v == nil {
		return "<nil>", true
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan:
		return "", false
	default:
		return fmt.Sprintf("%+v", v), true
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// identityPointer extracts the referent identity of a reference-kind value.
// Identity checks on value kinds are misuse, not a comparison that happens to
// be false.
func identityPointer(v any) (uintptr, bool) {
	if v == nil {
		return 0, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	default:
		return 0, false
	}
}

// isNilValue reports whether v is nil. The second return is false for kinds
// that cannot be nil at all.
func isNilValue(v any) (bool, bool) {
	if v == nil {
		return true, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice, reflect.Interface:
		return rv.IsNil(), true
	default:
		return false, false
	}
}
