package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var moodNameRegex = regexp.MustCompile(`^[a-z][a-z ]{1,23}$`)

// reservedMoodNames are names the suggestion and analytics pipelines treat
// specially and cannot be used for catalog entries.
var reservedMoodNames = map[string]struct{}{
	"unknown": {},
	"all":     {},
	"none":    {},
}

// ValidateMoodName validates an admin-supplied mood catalog name. Names are
// stored lowercased, so uppercase input is rejected rather than folded here.
func ValidateMoodName(name string) error {
	if !moodNameRegex.MatchString(name) {
		return fmt.Errorf("mood name must be 2-24 characters and contain only lowercase letters and spaces")
	}

	if strings.HasSuffix(name, " ") {
		return fmt.Errorf("mood name cannot end with a space")
	}

	if _, exists := reservedMoodNames[name]; exists {
		return fmt.Errorf("mood name is reserved")
	}

	return nil
}

var colorCodeRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColorCode validates a hex color code such as #ffcc00.
func ValidateColorCode(code string) error {
	if !colorCodeRegex.MatchString(code) {
		return fmt.Errorf("color code must be a hex value like #ffcc00")
	}
	return nil
}
