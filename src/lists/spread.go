package lists

import (
	"iter"
	"maps"
	"reflect"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("lists")

// Iterable is implemented by every container in this package.
type Iterable[T comparable] interface {
	All() iter.Seq[T]
}

// Values classifies v for a spread insert and returns the sequence of
// its elements. Accepted shapes are iter.Seq[T], []T, any Iterable[T],
// mapset.Set[T], map[T]struct{} and map[T]bool (keys), and a string when
// a string is a T (one element per character). Set and map order is
// unspecified. Nil containers and nil sequences are not valid. Anything
// else yields a *NotIterableError.
func Values[T comparable](v any) (iter.Seq[T], error) {
	switch v := v.(type) {
	case iter.Seq[T]:
		if v == nil {
			return nil, errors.NotValidf("nil %T", v)
		}
		return v, nil
	case func(func(T) bool):
		if v == nil {
			return nil, errors.NotValidf("nil %T", v)
		}
		return v, nil
	case []T:
		return slices.Values(v), nil
	case Iterable[T]:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, errors.NotValidf("nil %T", v)
		}
		return v.All(), nil
	case mapset.Set[T]:
		return slices.Values(v.ToSlice()), nil
	case map[T]struct{}:
		return maps.Keys(v), nil
	case map[T]bool:
		return maps.Keys(v), nil
	case string:
		if _, ok := any(v).(T); ok {
			return characters[T](v), nil
		}
	}
	return nil, &NotIterableError{Value: v}
}

func characters[T comparable](s string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range s {
			if !yield(any(string(r)).(T)) {
				return
			}
		}
	}
}

// extend runs insert for each element of v in iteration order. Slices
// and arrays of other element types are walked element by element; an
// element that is not a T stops the insert, and elements inserted before
// it stay inserted.
func extend[T comparable](v any, insert func(T)) error {
	seq, err := Values[T](v)
	if err == nil {
		for x := range seq {
			insert(x)
		}
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		logger.Debugf("spread insert rejected %T", v)
		return errors.Trace(err)
	}
	for i := range rv.Len() {
		e := rv.Index(i).Interface()
		x, ok := e.(T)
		if !ok {
			logger.Debugf("spread insert stopped after %d of %d elements", i, rv.Len())
			return errors.NotValidf("element %d (%#v) of %T", i, e, v)
		}
		insert(x)
	}
	return nil
}
