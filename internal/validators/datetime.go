package validators

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsDate aceita exatamente o formato de calendário "DD/MM/YYYY".
func IsDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("02/01/2006", s)
	return err == nil
}

// IsTimeOfDay aceita exatamente "HH:mm" em 24h.
func IsTimeOfDay(s string) bool {
	return hhmmRe.MatchString(s)
}

// Register instala as validações customizadas de data/hora no engine
// de binding do gin, para uso como tags `binding:"ddmmyyyy"` e
// `binding:"hhmm"` nos requests.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsTimeOfDay(fl.Field().String())
	})
}
