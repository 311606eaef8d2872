package rawmem

import "reflect"

// typeHasPointers reports whether values of T contain pointers the
// garbage collector would need to see.
func typeHasPointers[T any]() bool {
	// reflect.TypeOf((*T)(nil)).Elem() is the pre-Go-1.22 spelling of
	// reflect.TypeFor[T]().
	return kindHasPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func kindHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Map, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		if t.Len() == 0 {
			return false
		}
		return kindHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if kindHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
