package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Report JSON field names ("pricingType", not "PricingType").
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Register decimal.Decimal as a numeric type so tags like gt=0 work
	// without "Bad field type decimal.Decimal" panics.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// checkStruct runs validator tags on v and returns a single validation
// error describing every failed field, or nil.
func checkStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return validationError(strings.Join(msgs, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fe.Field() + " is invalid"
	}
}

// missingHints decorates required-field names in "Missing required fields".
var missingHints = map[string]string{
	"category": "category (please create a category first)",
	"prices":   "prices (at least one price slab is required)",
}

func requiredName(field string) string {
	if hint, ok := missingHints[field]; ok {
		return hint
	}
	return field
}

// aggregate folds validator output into the product form message: missing
// fields are listed together, every other problem follows.
func aggregate(err error, missing []string, extra ...string) error {
	var problems []string
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" || (fe.Field() == "prices" && fe.Tag() == "min") {
				missing = append(missing, requiredName(fe.Field()))
				continue
			}
			problems = append(problems, describeField(fe))
		}
	}
	problems = append(problems, extra...)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, problems...)
	if len(parts) == 0 {
		return nil
	}
	return validationError(strings.Join(parts, "; "))
}
