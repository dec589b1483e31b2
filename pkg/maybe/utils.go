package maybe

import (
	"reflect"
)

func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an aggregate error into its parts. A plain error is
// returned as a single element and nil as none.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	if inner, ok := aggregated(err); ok {
		return inner
	}
	return []error{err}
}

// aggregated recognizes errors.Join style and go-multierror style aggregates.
func aggregated(err error) ([]error, bool) {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return e.Unwrap(), true
	case interface{ WrappedErrors() []error }:
		return e.WrappedErrors(), true
	}
	return nil, false
}

