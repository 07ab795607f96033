package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
)

const defaultLocale = "en"

var (
	validate     *validator.Validate
	translator   ut.Translator
	validateOnce sync.Once
)

func newValidator() (*validator.Validate, ut.Translator) {
	universalTranslator := ut.New(en.New(), en.New())
	trans, _ := universalTranslator.GetTranslator(defaultLocale)

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translation.RegisterDefaultTranslations(validate, trans); err != nil {
		// untranslated errors fall back to the raw field error
		return validate, nil
	}
	return validate, trans
}

// ValidateStruct validates f against its `validate` tags and reports
// failures by json field name.
func ValidateStruct(f interface{}) error {
	err := getValidator().Struct(f)
	return checkError(err)
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate, translator = newValidator()
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

	errStrs := []string{}
	for _, e := range errs {
		switch e.Tag() {
		case "oneof":
			errStrValue := fmt.Sprintf("error value \"%v\"", e.Value())
			if e.Field() != "" {
				errStrValue = errStrValue + fmt.Sprintf(" for key \"%s\"", e.Field())
			}
			errStrValue = errStrValue + fmt.Sprintf(" not recognized, only support \"%s\"", e.Param())
			errStrs = append(errStrs, errStrValue)
		case "gte", "min":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param()))
		case "lte", "max":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be more than %s", e.Field(), e.Param()))
		default:
			if translator == nil {
				errStrs = append(errStrs, e.Error())
				continue
			}
			errStrs = append(errStrs, e.Translate(translator))
		}
	}
	return errors.New(strings.Join(errStrs, " and "))
}
