package zipcodes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apiverve/zipcodes-api/internal/params"
)

// ValidationRule describes the constraints for a single query parameter.
// Zero values mean "unconstrained" except Required.
type ValidationRule struct {
	// Type is one of "string", "number", "integer", "boolean".
	Type      string
	Required  bool
	MinLength int
	MaxLength int
	Min       *float64
	Max       *float64
	Enum      []string
	// Format names a pattern from the built-in set: email, url, ip,
	// date, hexColor.
	Format string
}

// ValidationRules maps parameter names to their constraints.
type ValidationRules map[string]ValidationRule

// DefaultValidationRules returns the published schema for the Zip Codes
// Lookup endpoint: a single required 5-character zip parameter.
func DefaultValidationRules() ValidationRules {
	return ValidationRules{
		"zip": {Type: "string", Required: true, MinLength: 5, MaxLength: 5},
	}
}

var formatPatterns = map[string]*regexp.Regexp{
	"email":    regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	"url":      regexp.MustCompile(`^https?://.+`),
	"ip":       regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$|^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`),
	"date":     regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"hexColor": regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`),
}

// validate checks the query against the rule set and returns a validation
// *ClientError collecting every violated constraint, or nil.
func (r ValidationRules) validate(query Query) error {
	var errors []string

	for name, rule := range r {
		value, present := query[name]

		if rule.Required && (!present || value == nil || value == "") {
			errors = append(errors, fmt.Sprintf("Required parameter [%s] is missing.", name))
			continue
		}
		if !present || value == nil {
			continue
		}

		errors = append(errors, rule.check(name, value)...)
	}

	if len(errors) > 0 {
		return &ClientError{
			Type:      ErrorTypeValidation,
			Message:   "Validation failed: " + strings.Join(errors, " "),
			Timestamp: time.Now(),
		}
	}

	return nil
}

func (r ValidationRule) check(name string, value any) []string {
	var errors []string

	paramType := r.Type
	if paramType == "" {
		paramType = "string"
	}

	switch paramType {
	case "integer", "number":
		num, err := numericValue(value, paramType)
		if err != nil {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be a valid %s.", name, paramType))
			return errors
		}
		if r.Min != nil && num < *r.Min {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be at least %v.", name, *r.Min))
		}
		if r.Max != nil && num > *r.Max {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be at most %v.", name, *r.Max))
		}

	case "string":
		s, ok := value.(string)
		if !ok {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be a string.", name))
			return errors
		}
		if r.MinLength > 0 && len(s) < r.MinLength {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be at least %d characters.", name, r.MinLength))
		}
		if r.MaxLength > 0 && len(s) > r.MaxLength {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be at most %d characters.", name, r.MaxLength))
		}
		if r.Format != "" {
			if pattern, ok := formatPatterns[r.Format]; ok && !pattern.MatchString(s) {
				errors = append(errors, fmt.Sprintf("Parameter [%s] must be a valid %s.", name, r.Format))
			}
		}

	case "boolean":
		switch value {
		case true, false, "true", "false":
		default:
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be a boolean.", name))
		}
	}

	if len(r.Enum) > 0 {
		if s, err := params.FormatValue(value); err != nil || !contains(r.Enum, s) {
			errors = append(errors, fmt.Sprintf("Parameter [%s] must be one of: %s.", name, strings.Join(r.Enum, ", ")))
		}
	}

	return errors
}

func numericValue(value any, paramType string) (float64, error) {
	s, err := params.FormatValue(value)
	if err != nil {
		return 0, err
	}
	if paramType == "integer" {
		n, err := strconv.ParseInt(s, 10, 64)
		return float64(n), err
	}
	return strconv.ParseFloat(s, 64)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
