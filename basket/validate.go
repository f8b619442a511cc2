package basket

import (
	"reflect"

	"github.com/etnz/cashback"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimals are validated as numbers.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(cashback.Rate)
		if err := r.Validate(); err != nil {
			sl.ReportError(r.Base, "Base", "Base", "rate", err.Error())
		}
	}, cashback.Rate{})
	return v
}
