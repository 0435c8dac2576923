package timedmap

import (
	"cmp"
	"fmt"
	"reflect"
)

// Ascending is the default Sort comparator: values in their natural order,
// keys ignored. Numbers compare numerically, strings lexically and false
// before true; values of any other kind compare by their %v text.
func Ascending[K comparable, V any](a, b V, _, _ K) int {
	return compareValues(a, b)
}

// Descending is Ascending reversed.
func Descending[K comparable, V any](a, b V, ka, kb K) int {
	return compareValues(b, a)
}

func compareValues(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())

		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())

		case reflect.String:
			return cmp.Compare(va.String(), vb.String())

		case reflect.Bool:
			x, y := va.Bool(), vb.Bool()

			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
