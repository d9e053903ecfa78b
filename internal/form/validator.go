package form

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	v "github.com/asaskevich/govalidator"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

// ValidateStruct runs the `valid` tags of s and folds every field violation
// into one bad request error.
func ValidateStruct(s any) error {
	if _, err := v.ValidateStruct(s); err != nil {
		return badRequest(violations(err)...)
	}
	return nil
}

func violations(err error) []string {
	byField := v.ErrorsByField(err)
	if len(byField) == 0 {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(byField))
	for field, msg := range byField {
		out = append(out, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(out)
	return out
}

func badRequest(msgs ...string) error {
	formatted := make([]string, 0, len(msgs))
	for _, m := range msgs {
		formatted = append(formatted, formatErrMsg(m))
	}
	return fmt.Errorf("%w: %s", gerr.BadRequest, strings.Join(formatted, " "))
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, r := range str {
		return string(unicode.ToUpper(r)) + str[i+1:]
	}
	return ""
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
