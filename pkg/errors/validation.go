package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds component and namespace names.
const maxNameLength = 256

// ValidateName checks that name can appear as a set, param or namespace
// name in a data command file. kind is used in the error message only.
//
// Names must be non-empty, start with a letter or underscore and contain only
// letters, digits and underscores. Anything else would produce a statement
// the data command grammar cannot read back.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "%s name too long (max %d characters)", kind, maxNameLength)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return New(ErrCodeInvalidName, "%s name %q contains invalid character %q", kind, name, r)
	}
	return nil
}

// ValidateFormat checks a format identifier such as "dat".
// Identifiers are lower-case file extensions without the leading dot.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if strings.HasPrefix(format, ".") {
		return New(ErrCodeInvalidFormat, "format %q must not start with a dot", format)
	}
	if strings.ContainsAny(format, "/\\ \t\n") {
		return New(ErrCodeInvalidFormat, "format %q contains invalid characters", format)
	}
	if strings.ToLower(format) != format {
		return New(ErrCodeInvalidFormat, "format %q must be lower-case", format)
	}
	return nil
}
