package binder

import (
	"errors"
	"fmt"
	"slices"
)

// FieldErrors records save failures by the ID of the control that fed the
// failing property.
type FieldErrors map[string]error

func (fe FieldErrors) add(controlID string, err error) {
	if prev, ok := fe[controlID]; ok {
		fe[controlID] = errors.Join(prev, err)
		return
	}

	fe[controlID] = err
}

// Err joins all recorded errors in control ID order, or returns nil.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}

	ids := make([]string, 0, len(fe))
	for id := range fe {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, fmt.Errorf("%s: %w", id, fe[id]))
	}

	return errors.Join(errs...)
}
