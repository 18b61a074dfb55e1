package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/schooladmin/internal/app/models/dto"
)

// Validation rule patterns
var (
	// CURPPattern is the 18 character Mexican population registry key
	CURPPattern = `^[A-Z]{4}\d{6}[HMX][A-Z]{5}[A-Z0-9]\d$`

	// RFCPattern is the 12 (companies) or 13 (people) character tax id
	RFCPattern = `^[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}$`

	// PasswordMinLength applies to seeded and created accounts
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CURP *regexp.Regexp
	RFC  *regexp.Regexp
}{
	CURP: regexp.MustCompile(CURPPattern),
	RFC:  regexp.MustCompile(RFCPattern),
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom rules registered
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// Report JSON names so clients can map errors to their fields
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		validate.RegisterCustomTypeFunc(nullableIDValue, dto.NullableID{})

		_ = validate.RegisterValidation("curp", patternRule(CompiledPatterns.CURP))
		_ = validate.RegisterValidation("rfc", patternRule(CompiledPatterns.RFC))
	})
	return validate
}

// Struct validates a request DTO
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

func nullableIDValue(v reflect.Value) interface{} {
	id, ok := v.Interface().(dto.NullableID)
	if !ok || !id.Valid() {
		return nil
	}
	return *id.Ptr()
}

func patternRule(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(strings.ToUpper(fl.Field().String()))
	}
}
