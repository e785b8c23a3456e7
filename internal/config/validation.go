package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// ValidateConfig checks cfg against its struct tags.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return lumenerrors.NewValidationError("config", "config is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into lumen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lumenerrors.NewValidationError(field, msg, err)
	}

	return lumenerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Engine.FrameRate into engine.frame_rate.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
