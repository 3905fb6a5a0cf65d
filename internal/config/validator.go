package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	zzerrors "github.com/alexisbeaulieu97/zzbutton/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	buttonIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("button_id", func(fl validator.FieldLevel) bool {
			return buttonIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return zzerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	actionIndex := make(map[string]int, len(cfg.Actions))
	for i, action := range cfg.Actions {
		if _, exists := actionIndex[action.Name]; exists {
			return zzerrors.NewValidationError(fieldFor("actions", i, "name"), fmt.Sprintf("duplicate action name %q", action.Name), nil)
		}
		if err := validateAction(action, i); err != nil {
			return err
		}
		actionIndex[action.Name] = i
	}

	buttonIndex := make(map[string]int, len(cfg.Buttons))
	for i, b := range cfg.Buttons {
		if b.ID != "" {
			if _, exists := buttonIndex[b.ID]; exists {
				return zzerrors.NewValidationError(fieldFor("buttons", i, "id"), fmt.Sprintf("duplicate button id %q", b.ID), nil)
			}
			buttonIndex[b.ID] = i
		}

		if b.Action != "" {
			if _, ok := actionIndex[b.Action]; !ok {
				return zzerrors.NewValidationError(fieldFor("buttons", i, "action"), fmt.Sprintf("references unknown action %q", b.Action), nil)
			}
		}

		if b.Kind != nil && b.Theme != nil && *b.Kind != *b.Theme {
			return zzerrors.NewValidationError(fieldFor("buttons", i, "theme"), "theme is an alias of kind and must not disagree with it", nil)
		}

		if b.Delay != nil && *b.Delay < 0 {
			return zzerrors.NewValidationError(fieldFor("buttons", i, "delay"), "delay must not be negative", nil)
		}
	}

	return nil
}

func validateAction(action Action, index int) error {
	switch action.Type {
	case "command":
		if strings.TrimSpace(action.Command) == "" {
			return zzerrors.NewValidationError(fieldFor("actions", index, "command"), "command is required", nil)
		}
	case "git":
		if strings.TrimSpace(action.Path) == "" {
			return zzerrors.NewValidationError(fieldFor("actions", index, "path"), "path is required", nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return zzerrors.NewValidationError(field, msg, err)
	}

	return zzerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldFor(section string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", section, index, field)
}
