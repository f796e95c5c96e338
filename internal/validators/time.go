package validators

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var timePattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// HHMMSS is the binding rule behind the `hhmmss` tag: wall-clock
// HH:MM:SS, 24-hour, zero-padded.
func HHMMSS(fl validator.FieldLevel) bool {
	return timePattern.MatchString(fl.Field().String())
}

func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmmss", HHMMSS)
	}
}
