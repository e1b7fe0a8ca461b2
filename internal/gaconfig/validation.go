package gaconfig

import (
	"fmt"
	"strings"
)

// Validation is never applied by Aggregate or the Submitter. It mirrors the
// checks the job makes before it starts optimizing, so a configuration can be
// checked locally before it is sent.

// ValidateSingle validates the method of a single-choice section.
func ValidateSingle(section SectionKind, m Method) []error {
	var errors []error

	if m.Method == "" {
		return append(errors, NewValidationError(fmt.Sprintf("no %s method", strings.ToLower(section.String()))))
	}

	errors = append(errors, checkMethod(section, m)...)
	return errors
}

// ValidateMultiple validates the methods of a multi-choice section.
// At least one method is required.
func ValidateMultiple(section SectionKind, methods []Method) []error {
	var errors []error

	if len(methods) == 0 {
		return append(errors, NewValidationError(fmt.Sprintf("no %s methods", strings.ToLower(section.String()))))
	}

	for _, m := range methods {
		errors = append(errors, checkMethod(section, m)...)
	}
	return errors
}

// ValidateBase warns about unknown base settings and non-numeric values
// where a number is expected.
func ValidateBase(base map[string]string) []error {
	var errors []error

	for _, spec := range BaseParams {
		value, ok := base[spec.Name]
		if !ok {
			errors = append(errors, NewValidationError(fmt.Sprintf("warning: base setting %q not set, the job default applies", spec.Name)))
			continue
		}
		if spec.Kind == ParamNumber {
			if _, isNum := ParseNumeric(value); !isNum {
				errors = append(errors, NewValidationError(fmt.Sprintf("base setting %q must be a number, got %q", spec.Name, value)))
			}
		}
	}

	return errors
}

// ValidateConfiguration validates a complete configuration.
// This is the main validation entry point.
// Returns a slice of validation errors (empty if valid).
func ValidateConfiguration(cfg *Configuration) []error {
	var allErrors []error

	allErrors = append(allErrors, ValidateBase(cfg.Base)...)
	allErrors = append(allErrors, ValidateSingle(SectionSelection, cfg.Selection)...)
	allErrors = append(allErrors, ValidateSingle(SectionReplacement, cfg.Replacement)...)
	allErrors = append(allErrors, ValidateMultiple(SectionMutation, cfg.Mutation)...)
	allErrors = append(allErrors, ValidateMultiple(SectionCrossover, cfg.Crossover)...)
	allErrors = append(allErrors, ValidateMultiple(SectionStopCriteria, cfg.StopCriteria)...)

	return allErrors
}

// checkMethod compares a method against the catalog
func checkMethod(section SectionKind, m Method) []error {
	var errors []error

	spec := LookupMethod(section, m.Method)
	if spec == nil {
		return append(errors, NewValidationError(fmt.Sprintf("warning: unknown %s method %q will be ignored by the job", strings.ToLower(section.String()), m.Method)))
	}

	for name, value := range m.Parameters {
		param := spec.Param(name)
		if param == nil {
			errors = append(errors, NewValidationError(fmt.Sprintf("warning: %s does not take parameter %q", m.Method, name)))
			continue
		}
		if param.Kind != ParamNumber {
			continue
		}
		switch v := value.(type) {
		case float64:
		case string:
			// Selection parameters travel as strings; they only need to read as numbers.
			if _, ok := ParseNumeric(v); !ok {
				errors = append(errors, NewValidationError(fmt.Sprintf("%s parameter %q must be a number, got %q", m.Method, name, v)))
			}
		default:
			errors = append(errors, NewValidationError(fmt.Sprintf("%s parameter %q has unsupported type %T", m.Method, name, value)))
		}
	}

	return errors
}

// FormatValidationErrors formats a slice of validation errors into a user-friendly message.
func FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Configuration validation failed with %d error(s):\n", len(errors)))

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, GetShortErrorMessage(err)))
	}

	return sb.String()
}

// IsWarning checks if a validation error is a warning (non-fatal).
// Warnings have messages starting with "warning:".
func IsWarning(err error) bool {
	if subErr, ok := err.(*SubmitError); ok {
		return strings.HasPrefix(subErr.Message, "warning:")
	}
	return strings.Contains(err.Error(), "warning:")
}

// SeparateWarningsAndErrors separates validation errors into warnings and errors.
// Errors are the issues the job rejects outright.
func SeparateWarningsAndErrors(errors []error) (warnings []error, criticalErrors []error) {
	for _, err := range errors {
		if IsWarning(err) {
			warnings = append(warnings, err)
		} else {
			criticalErrors = append(criticalErrors, err)
		}
	}
	return warnings, criticalErrors
}
