// Package validator decodes a resolved settings mapping into a typed
// configuration struct and runs its validation rules.
package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"

	"github.com/KOMKZ/go-yogan-settings/errcode"
	"github.com/KOMKZ/go-yogan-settings/settings"
)

// Validator error codes (module code 11).
var (
	// ErrDecode indicates the mapping could not be decoded into the target struct
	ErrDecode = errcode.Register(errcode.New(11, 1, "validator", "cannot decode settings"))

	// ErrValidation indicates the decoded settings violate their validation rules
	ErrValidation = errcode.Register(errcode.New(11, 2, "validator", "settings validation failed"))

	// ErrExtraFields indicates unrecognized keys under a schema that forbids them
	ErrExtraFields = errcode.Register(errcode.New(11, 3, "validator", "unrecognized configuration keys"))
)

// Validatable is implemented by settings structs carrying their own
// ozzo-validation rules.
type Validatable interface {
	Validate() error
}

// Decode decodes a resolved mapping into the target struct. String leaves
// produced by substitution are weakly coerced into the target field types
// (the same mechanism viper's Unmarshal uses).
func Decode(data settings.Mapping, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return ErrDecode.Wrap(err)
	}
	if err := decoder.Decode(map[string]any(data)); err != nil {
		return ErrDecode.Wrap(err)
	}
	return nil
}

// ValidateSettings runs the target's own validation rules, converting
// ozzo-validation errors into errcode errors. Targets that are not
// Validatable pass.
func ValidateSettings(target any) error {
	v, ok := target.(Validatable)
	if !ok {
		return nil
	}
	err := v.Validate()
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validation.Errors); ok {
		return ConvertValidationError(validationErrs)
	}
	// Non-ozzo errors propagate unmodified
	return err
}

// ConvertValidationError converts ozzo-validation errors into an errcode
// error carrying per-field messages.
func ConvertValidationError(validationErrs validation.Errors) error {
	fields := make(map[string]string)
	for field, fieldErr := range validationErrs {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}
	return ErrValidation.WithData("fields", fields)
}

// DecodeAndValidate runs the extra-field policy check, Decode, then
// ValidateSettings against the schema-reconciled result.
func DecodeAndValidate(result *settings.MergedResult, schema *settings.Schema, target any) error {
	if schema != nil && !schema.ExtraPermitted() {
		if err := checkExtraFields(result.Data, schema); err != nil {
			return err
		}
	}
	if err := Decode(result.Data, target); err != nil {
		return err
	}
	return ValidateSettings(target)
}

// checkExtraFields rejects top-level keys the schema does not recognize.
// Reconciliation has already rewritten recognized keys to their canonical
// spelling, so a plain membership test suffices.
func checkExtraFields(data settings.Mapping, schema *settings.Schema) error {
	known := make(map[string]bool)
	for _, name := range schema.Fields() {
		known[name] = true
	}

	var extras []string
	for key := range data {
		if !known[key] {
			extras = append(extras, key)
		}
	}
	if len(extras) == 0 {
		return nil
	}
	return ErrExtraFields.
		WithMsgf("unrecognized configuration keys: %v", extras).
		WithData("keys", extras)
}
