package settings

import (
	"errors"

	"github.com/KOMKZ/go-yogan-settings/errcode"
)

// Settings error codes (module code 10).
// Context data keys: "path" (source file or directory), "key_path" (dotted
// location inside the mapping), "variable" (environment variable name),
// "keys" (colliding input keys), "canonical" (schema field name).
var (
	// ErrNotFound indicates a missing configuration file or directory
	ErrNotFound = errcode.Register(errcode.New(10, 1, "settings", "configuration source not found"))

	// ErrParse indicates a syntactically invalid YAML/TOML document
	ErrParse = errcode.Register(errcode.New(10, 2, "settings", "configuration file parse failed"))

	// ErrUnsupportedFormat indicates an unrecognized format token
	ErrUnsupportedFormat = errcode.Register(errcode.New(10, 3, "settings", "unsupported configuration format"))

	// ErrMissingVariable indicates an undefined environment variable with no default
	ErrMissingVariable = errcode.Register(errcode.New(10, 4, "settings", "environment variable is not defined"))

	// ErrAmbiguousKey indicates a case-insensitive key collision across sources
	ErrAmbiguousKey = errcode.Register(errcode.New(10, 5, "settings", "ambiguous configuration key"))
)

// IsNotFound reports whether err is a missing file/directory error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsParse reports whether err is a parse error
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsUnsupportedFormat reports whether err is an unsupported-format error
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsMissingVariable reports whether err is a missing-environment-variable error
func IsMissingVariable(err error) bool {
	return errors.Is(err, ErrMissingVariable)
}

// IsAmbiguousKey reports whether err is a case-collision error
func IsAmbiguousKey(err error) bool {
	return errors.Is(err, ErrAmbiguousKey)
}
