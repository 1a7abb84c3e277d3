package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	codePattern     = regexp.MustCompile(`^\d+$`)
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs json tag naming and the custom "username" and "numeric_code" tags.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("username", usernameValidator); err != nil {
		log.Fatal("register username validator failed")
	}
	if err := v.RegisterValidation("numeric_code", numericCodeValidator); err != nil {
		log.Fatal("register numeric_code validator failed")
	}
}

var usernameValidator validator.Func = func(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

var numericCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return codePattern.MatchString(fl.Field().String())
}
