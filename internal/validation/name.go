package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxUserNameLen = 100
	maxGoalNameLen = 100
	maxDescription = 255
)

// ValidateName checks a person's display name.
func ValidateName(name string) error {
	return validateText("name", name, maxUserNameLen)
}

// ValidateGoalName checks the name of a savings goal.
func ValidateGoalName(name string) error {
	return validateText("goal name", name, maxGoalNameLen)
}

// ValidateDescription allows empty input up to maxDescription characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > maxDescription {
		return fmt.Errorf("description is too long (max %d characters)", maxDescription)
	}
	return nil
}

func validateText(field, value string, max int) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}

	if utf8.RuneCountInString(trimmed) > max {
		return fmt.Errorf("%s is too long (max %d characters)", field, max)
	}

	return nil
}
