// validate.go: settings validation
package conf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atcc-vision/atcc-go/internal/errors"
)

// ValidateSettings checks the loaded settings for values the tools cannot
// work with. It returns the first problem found.
func ValidateSettings(settings *Settings) error {
	if settings.Combine.SourceDir == "" {
		return validationError("combine.sourcedir must not be empty")
	}
	if settings.Combine.OutputDir == "" {
		return validationError("combine.outputdir must not be empty")
	}
	if settings.Combine.Pattern == "" {
		return validationError("combine.pattern must not be empty")
	}
	if len(settings.Combine.Extensions) == 0 {
		return validationError("combine.extensions must list at least one image extension")
	}
	for _, ext := range settings.Combine.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return validationError(fmt.Sprintf("image extension %q must start with a dot", ext))
		}
	}

	for category, factor := range settings.Analysis.PCU {
		if factor < 0 {
			return validationError(fmt.Sprintf("analysis.pcu.%s must not be negative", category))
		}
	}
	if _, _, err := ParseHourRange(settings.Analysis.Morning); err != nil {
		return fmt.Errorf("analysis.morning: %w", err)
	}
	if _, _, err := ParseHourRange(settings.Analysis.Evening); err != nil {
		return fmt.Errorf("analysis.evening: %w", err)
	}

	if settings.Dashboard.Port < 1 || settings.Dashboard.Port > 65535 {
		return validationError(fmt.Sprintf("dashboard.port %d out of range", settings.Dashboard.Port))
	}
	switch settings.Dashboard.Theme {
	case "light", "dark":
	default:
		return validationError(fmt.Sprintf("dashboard.theme %q must be light or dark", settings.Dashboard.Theme))
	}

	return nil
}

// ParseHourRange parses an "start-end" hour window such as "6-12".
// Start is inclusive, end exclusive.
func ParseHourRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, validationError(fmt.Sprintf("hour range %q must be start-end, e.g. 6-12", s))
	}
	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, validationError(fmt.Sprintf("hour range %q: invalid start", s))
	}
	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, validationError(fmt.Sprintf("hour range %q: invalid end", s))
	}
	if start < 0 || start > 23 || end < 1 || end > 24 || start >= end {
		return 0, 0, validationError(fmt.Sprintf("hour range %q out of bounds", s))
	}
	return start, end, nil
}

func validationError(msg string) error {
	return errors.Newf("%s", msg).
		Component("conf").
		Category(errors.CategoryValidation).
		Build()
}
