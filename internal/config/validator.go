package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return lkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Breakpoints))
	for i, bp := range cfg.Breakpoints {
		if first, ok := seen[bp.Name]; ok {
			return lkerrors.NewValidationError(
				fmt.Sprintf("breakpoints[%d].name", i),
				fmt.Sprintf("duplicate breakpoint %q (first at breakpoints[%d])", bp.Name, first),
				nil,
			)
		}
		seen[bp.Name] = i
	}

	table := cfg.Table()
	if err := checkKnown("sidebar.compacted_breakpoints", cfg.Sidebar.CompactedBreakpoints, table.ByName); err != nil {
		return err
	}
	if err := checkKnown("sidebar.collapsed_breakpoints", cfg.Sidebar.CollapsedBreakpoints, table.ByName); err != nil {
		return err
	}

	return nil
}

func checkKnown[T any](field string, names []string, lookup func(string) (T, bool)) error {
	for i, name := range names {
		if _, ok := lookup(name); !ok {
			return lkerrors.NewValidationError(
				fmt.Sprintf("%s[%d]", field, i),
				fmt.Sprintf("unknown breakpoint %q", name),
				nil,
			)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return lkerrors.NewValidationError(field, msg, err)
	}

	return lkerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving the
// yaml path, e.g. "sidebar.collapsed_breakpoints[1]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
