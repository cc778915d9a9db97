// Package naming converts component file names into exported identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/barrel/pkg/errors"
)

// ExportName derives a PascalCase identifier from a file basename (without
// extension): the name is split on '-' and '_', the first letter of every
// segment is upper-cased and the segments are joined.
//
//	user-card     -> UserCard
//	date_picker   -> DatePicker
//	modal         -> Modal
//	iconButton    -> IconButton
//
// Empty names, names starting with a digit, and names whose result is not a
// valid identifier fail with a NAMING error.
func ExportName(basename string) (string, error) {
	if basename == "" {
		return "", errors.New(errors.ErrNaming, "cannot derive an export name from an empty file name")
	}
	if first, _ := utf8.DecodeRuneInString(basename); unicode.IsDigit(first) {
		return "", errors.Newf(errors.ErrNaming, "file name %q starts with a digit", basename).
			WithDetail("name", basename)
	}

	segments := strings.FieldsFunc(basename, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var sb strings.Builder
	for _, segment := range segments {
		first, size := utf8.DecodeRuneInString(segment)
		sb.WriteRune(unicode.ToUpper(first))
		sb.WriteString(segment[size:])
	}

	name := sb.String()
	if !IsIdentifier(name) {
		return "", errors.Newf(errors.ErrNaming, "file name %q does not produce a valid identifier (got %q)", basename, name).
			WithDetail("name", basename)
	}
	return name, nil
}

// IsIdentifier reports whether s is a valid ECMAScript identifier made of
// letters, digits, '_' and '$', not starting with a digit.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}
