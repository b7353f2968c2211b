// Package queries contains read-only operations. Queries never open a unit
// of work: each handler reads through repository ports directly.
package queries

import (
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// parseID reports a malformed identifier as a missing object.
func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(param, raw, err)
	}
	return id, nil
}

// pageOf maps optional skip/limit parameters onto a validated page.
func pageOf(skip, limit *int) (ports.Page, error) {
	s, l := 0, ports.DefaultLimit
	if skip != nil {
		s = *skip
	}
	if limit != nil {
		l = *limit
	}
	return ports.NewPage(s, l)
}
