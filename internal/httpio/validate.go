package httpio

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report field names from json tags so validation messages match the
	// wire shape.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	universal := ut.New(enLocale, enLocale)
	translator, _ = universal.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)
}

// Validate checks v against its validate tags. Every failing field is
// collected; the result carries the full list, with values redacted for
// password-like fields. A panic inside the validation engine is reported as
// a 500-class error instead of crashing the request.
func Validate(v any) (appErr *apperror.Error) {
	defer func() {
		if rec := recover(); rec != nil {
			appErr = apperror.Newf(http.StatusInternalServerError,
				apperror.CodeValidationMiddlewareError,
				"validation failed unexpectedly: %v", rec)
		}
	}()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Newf(http.StatusInternalServerError,
			apperror.CodeValidationMiddlewareError,
			"validation failed unexpectedly: %v", err)
	}

	details := make([]apperror.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		detail := apperror.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Translate(translator),
		}
		if !isRedactedField(fieldErr.Field()) {
			detail.Value = fieldErr.Value()
		}
		details = append(details, detail)
	}

	return apperror.BadRequest(apperror.CodeValidationError, "invalid request body").
		WithDetails(details)
}

func isRedactedField(name string) bool {
	return strings.Contains(strings.ToLower(name), "password")
}
