package engine

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Type is the comparable runtime type-identity tag spec.md's external
// type-identity service must yield. It stands in for the surrounding
// toolkit's generic "any" carrier, which is out of scope for this engine.
type Type uint64

// TypeOf tags the dynamic type of v. A nil value tags as the zero Type.
func TypeOf(v any) Type {
	if v == nil {
		return 0
	}
	return hashTypeName(reflect.TypeOf(v).String())
}

// TypeOfT tags T itself, without needing a value in hand. This is the
// compile-time-identity case, analogous to Qt's QMetaType::fromType<T>().
func TypeOfT[T any]() Type {
	var zero T
	return hashTypeName(reflect.TypeOf(&zero).Elem().String())
}

func hashTypeName(name string) Type {
	return Type(xxhash.Sum64String(name))
}
