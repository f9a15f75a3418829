package result

import "reflect"

// IsNil reports whether v is nil, either directly or as a nil pointer,
// map, slice, channel, function or interface boxed in a non-nil interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
