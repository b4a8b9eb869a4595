package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "panel.start_expanded")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidStartExpanded returns the accepted panel.start_expanded values
func ValidStartExpanded() []string {
	return []string{StartExpandedAuto, StartExpandedAlways, StartExpandedNever}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validatePanel()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validatePanel() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidStartExpanded(), c.Panel.StartExpanded) {
		errors = append(errors, ValidationError{
			Field:   "panel.start_expanded",
			Value:   c.Panel.StartExpanded,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidStartExpanded(), ", ")),
		})
	}

	if c.Panel.ExpandHeightThreshold < 0 {
		errors = append(errors, ValidationError{
			Field:   "panel.expand_height_threshold",
			Value:   c.Panel.ExpandHeightThreshold,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	const minLabelWidth, maxLabelWidth = 8, 80

	if c.TUI.LabelWidth < minLabelWidth || c.TUI.LabelWidth > maxLabelWidth {
		return []ValidationError{{
			Field:   "tui.label_width",
			Value:   c.TUI.LabelWidth,
			Message: fmt.Sprintf("must be between %d and %d", minLabelWidth, maxLabelWidth),
		}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		}}
	}
	return nil
}
