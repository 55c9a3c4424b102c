// Package dto declares request/response bodies and their validation
// rules. Validation failures surface as per-field message keys that the
// handlers localize before responding.
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldErrors flattens an ozzo validation result into a field → message-key
// map. A nil return means the input was valid.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return map[string]string{"body": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for field, ferr := range errs {
		if nested, ok := ferr.(validation.Errors); ok {
			for sub, serr := range nested {
				out[field+"."+sub] = serr.Error()
			}
			continue
		}
		out[field] = ferr.Error()
	}
	return out
}
