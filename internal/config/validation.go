package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatePromptFormat accepts format strings with exactly one %s verb.
// Literal percent signs must be written as %%.
func validatePromptFormat(fl validator.FieldLevel) bool {
	return isPromptFormat(fl.Field().String())
}

func isPromptFormat(s string) bool {
	verbs := 0
	for {
		i := strings.IndexByte(s, '%')
		if i < 0 || i == len(s)-1 {
			return i < 0 && verbs == 1
		}
		switch s[i+1] {
		case '%':
		case 's':
			verbs++
		default:
			return false
		}
		s = s[i+2:]
	}
}
