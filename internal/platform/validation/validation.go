package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once    sync.Once
	initErr error
)

// Register adds the project's rules to gin's validator engine. Safe to call
// from every test and from main.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			initErr = errors.New("validation: gin validator engine is not go-playground/validator")
			return
		}
		// report JSON field names instead of Go field names
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		initErr = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return initErr
}

// Describe flattens validator errors into "field:tag" pairs for log lines.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ",")
}
