package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	// language tag such as "en", "pt-BR" or "zh_Hant_TW"
	localeRegex = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)
)

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return localeRegex.MatchString(fl.Field().String())
	})
	return validate
}

// ValidateStruct checks the `validate` tags of f. Field names in the
// returned error are the json names.
func ValidateStruct(f interface{}) error {
	err := getValidator().Struct(f)
	return checkError(err)
}

func ValidateOneOf(value string, enums ...string) error {
	tags := "omitempty,oneof=" + strings.Join(enums, " ")
	err := getValidator().Var(value, tags)
	return checkError(err)
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = newValidator()
	})
	return validate
}

func checkError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	errStrs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "oneof":
			msg := fmt.Sprintf("error value %q", e.Value())
			if e.Field() != "" {
				msg += fmt.Sprintf(" for key %q", e.Field())
			}
			errStrs = append(errStrs, msg+fmt.Sprintf(" not recognized, only support %q", e.Param()))
		case "gte":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param()))
		case "max":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param()))
		case "locale":
			errStrs = append(errStrs, fmt.Sprintf("%s %q is not a language tag", e.Field(), e.Value()))
		default:
			errStrs = append(errStrs, e.Error())
		}
	}
	return errors.New(strings.Join(errStrs, " and "))
}
