package validator

import (
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const NotBlankTag = "notblank"

var registerOnce sync.Once

// RegisterGinValidator makes gin's binding validator report json field names
// and know the custom tags below. Safe to call more than once.
func RegisterGinValidator() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := Register(v); err != nil {
			log.Fatalf("register gin validator failed: %s", err)
		}
	})
}

func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)
	return v.RegisterValidation(NotBlankTag, notBlankValidator)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

var notBlankValidator validator.Func = func(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
