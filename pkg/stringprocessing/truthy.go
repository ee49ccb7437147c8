// Package stringprocessing provides the string-to-value and value-to-string
// conversions used across the console engine. Command argument parsing and
// console variable assignment both go through this package, so a type that
// works as a command parameter also works as a bound variable.
package stringprocessing

import "strings"

// ParseBool interprets a console token as a boolean. Beyond the standard
// strconv forms it accepts the switch-style spellings commonly typed into
// game consoles.
//
// Truthy: "true", "1", "yes", "on", "enabled". Falsy: "false", "0", "no",
// "off", "disabled". Matching is case-insensitive; anything else is an
// error so that a typo does not silently flip a variable.
func ParseBool(token string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true", "1", "yes", "on", "enabled":
		return true, nil
	case "false", "0", "no", "off", "disabled":
		return false, nil
	}
	return false, &UnsupportedValueError{Token: token, Type: "bool"}
}

// UnsupportedValueError reports a token that does not parse as the
// requested type.
type UnsupportedValueError struct {
	Token string
	Type  string
}

func (e *UnsupportedValueError) Error() string {
	return "invalid " + e.Type + " value: " + e.Token
}
