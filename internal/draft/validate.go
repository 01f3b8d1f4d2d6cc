package draft

import (
	"errors"
	"reflect"
	"strings"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	choices := map[string]func(string) bool{
		"mood":      func(s string) bool { return model.Mood(s).Valid() },
		"gender":    func(s string) bool { return model.Gender(s).Valid() },
		"lifestyle": func(s string) bool { return model.Lifestyle(s).Valid() },
		"language":  model.IsSupportedLanguage,
	}
	for tag, ok := range choices {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// check runs struct-tag validation on typed fields and folds the result into fe
func check(typed any, fe *fieldErrors) {
	err := validate.Struct(typed)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.add("_", CodeRequired, err.Error())
		return
	}
	for _, ve := range verrs {
		code, msg := describe(ve)
		fe.add(ve.Field(), code, msg)
	}
}

func describe(ve validator.FieldError) (string, string) {
	switch ve.Tag() {
	case "required":
		return CodeRequired, "is required"
	case "gt":
		return CodeOutOfRange, "must be greater than " + ve.Param()
	case "gte":
		return CodeOutOfRange, "must be at least " + ve.Param()
	case "lte":
		return CodeOutOfRange, "must be at most " + ve.Param()
	case "datetime":
		return CodeInvalidDate, "must be a calendar date (YYYY-MM-DD)"
	case "mood", "gender", "lifestyle", "language":
		return CodeInvalidChoice, "is not one of the supported values"
	default:
		return CodeOutOfRange, "failed " + ve.Tag() + " check"
	}
}

func parseFloat(fe *fieldErrors, field string, t Text, dst *float64) {
	if t.String() == "" {
		fe.add(field, CodeRequired, "is required")
		return
	}
	f, ok := t.float()
	if !ok {
		fe.add(field, CodeNotANumber, "must be a number")
		return
	}
	*dst = f
}

func parseInt(fe *fieldErrors, field string, t Text, dst *int) {
	if t.String() == "" {
		fe.add(field, CodeRequired, "is required")
		return
	}
	i, ok := t.int()
	if !ok {
		fe.add(field, CodeNotANumber, "must be a whole number")
		return
	}
	*dst = i
}
