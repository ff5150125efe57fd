package params

import (
	"fmt"
	"sort"
)

// ResolveParameters starts from the defaults and overrides them with values
// given on the command line. Values for unknown names are dropped.
func ResolveParameters(paramDefs, cliValues map[string]string) map[string]string {
	result := make(map[string]string)

	for name, defaultValue := range paramDefs {
		result[name] = defaultValue
	}

	for name, cliValue := range cliValues {
		if _, exists := result[name]; exists {
			result[name] = cliValue
		}
	}

	return result
}

// GetMissingRequired returns, sorted, the parameters with neither a default
// nor a value.
func GetMissingRequired(paramDefs, currentValues map[string]string) []string {
	var missing []string

	for name, defaultValue := range paramDefs {
		if defaultValue == "" {
			if value, exists := currentValues[name]; !exists || value == "" {
				missing = append(missing, name)
			}
		}
	}

	sort.Strings(missing)
	return missing
}

func ValidateCLIValues(cliValues, paramDefs map[string]string) error {
	for name := range cliValues {
		if _, exists := paramDefs[name]; !exists {
			return fmt.Errorf("unknown parameter: %s", name)
		}
	}
	return nil
}

// Reserved flags that cannot be used as parameter names
var reservedFlags = map[string]bool{
	"edit":   true,
	"e":      true,
	"last":   true,
	"l":      true,
	"format": true,
	"f":      true,
	"copy":   true,
	"c":      true,
	"help":   true,
	"h":      true,
}

func ValidateParamNames(paramDefs map[string]string) error {
	for name := range paramDefs {
		if reservedFlags[name] {
			return fmt.Errorf("parameter name '%s' conflicts with reserved flag", name)
		}
	}
	return nil
}
