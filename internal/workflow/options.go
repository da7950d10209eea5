package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._~-]*$`)
	identPattern       = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateOptions turns validator errors into one readable message.
func validateOptions(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var parts []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		case "projectname":
			parts = append(parts, fmt.Sprintf("invalid project name %q: use lowercase letters, digits, '-', '.', '_' or '~'", fe.Value()))
		case "ident":
			parts = append(parts, fmt.Sprintf("invalid name %q: start with a letter and use letters, digits, '-' or '_'", fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid options: %s", strings.Join(parts, "; "))
}
