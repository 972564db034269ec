package utils

import "reflect"

// isNilSlice reports whether v is a typed nil slice.
func isNilSlice(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice && rv.IsNil()
}
