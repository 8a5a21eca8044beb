package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every rule violation reported by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = newValidator()

// newValidator reports violations under the environment variable name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks ranges, enumerations and formats of a loaded configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("invalid %s value %q: %s", fe.Field(), fmt.Sprint(fe.Value()), describe(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "numeric":
		return "must be a number"
	case "url":
		return "must be an absolute URL"
	case "ip|cidr":
		return "must be an IP address or CIDR range"
	default:
		return "failed " + fe.Tag()
	}
}

// Warnings lists settings that work but are unsafe or disable a feature.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the default value - please use a secure password")
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - price submissions are accepted without authentication")
	}
	if c.DiscordWebhookURL == "" {
		warnings = append(warnings, "DISCORD_WEBHOOK_URL is not set - catalog reload notifications are disabled")
	}
	if c.CatalogReloadInterval == 0 {
		warnings = append(warnings, "CATALOG_RELOAD_INTERVAL is 0 - the recipe catalog is loaded once at startup")
	}

	return warnings
}
