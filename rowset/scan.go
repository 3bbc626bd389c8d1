package rowset

import (
	"fmt"
	"reflect"

	"github.com/Neumenon/pqtext/pqtext"
)

// As converts the field's text to a scalar value. A NULL cell yields the
// null-conversion error for T before any parsing is attempted.
func As[T pqtext.Scalar](f Field) (T, error) {
	var zero T
	if f.IsNull() {
		return zero, pqtext.NullError(pqtext.TypeName[T]())
	}
	return pqtext.Parse[T](f.Text())
}

// Scan converts the field into dest, which must be a non-nil pointer.
//
// Supported destinations:
//   - *T for a supported scalar or string: NULL is a null-conversion error.
//   - **T (pointer-to-pointer): NULL sets the inner pointer to nil.
//
// Defined types over a supported base kind work through the codec
// registry; conversion errors pass through unchanged.
func (f Field) Scan(dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("rowset: Scan destination must be a non-nil pointer, got %T", dest)
	}
	elem := rv.Elem()

	if elem.Kind() == reflect.Pointer {
		if f.IsNull() {
			elem.SetZero()
			return nil
		}
		inner := reflect.New(elem.Type().Elem())
		if err := f.scanValue(inner.Elem()); err != nil {
			return err
		}
		elem.Set(inner)
		return nil
	}

	if f.IsNull() {
		return pqtext.NullError(typeNameOf(elem.Type()))
	}
	return f.scanValue(elem)
}

func (f Field) scanValue(elem reflect.Value) error {
	if elem.Kind() == reflect.String {
		elem.SetString(f.Text())
		return nil
	}
	sc, ok := pqtext.CodecFor(elem.Type())
	if !ok {
		return fmt.Errorf("rowset: unsupported Scan destination type %s", elem.Type())
	}
	v, err := sc.Parse(f.Text())
	if err != nil {
		return err
	}
	elem.Set(reflect.ValueOf(v).Convert(elem.Type()))
	return nil
}

// typeNameOf resolves the diagnostic name for null-conversion errors.
func typeNameOf(t reflect.Type) string {
	if sc, ok := pqtext.CodecFor(t); ok {
		return sc.Name
	}
	return t.String()
}
