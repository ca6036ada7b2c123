// Package ports defines the collaborators the carrier service depends on.
package ports

import (
	"context"

	"carriertext/internal/carrier/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mocks.go -package=mocks

// DisplaySink receives every computed result. There is no diffing: a pass always
// pushes, even when the text did not change.
type DisplaySink interface {
	Display(ctx context.Context, result models.DisplayResult) error
}

// ResourceCatalog resolves localized strings and the carrier name table.
type ResourceCatalog interface {
	// Resources returns the best match for locale, falling back to the base locale.
	Resources(locale string) (models.Resources, error)

	// Supports reports whether locale has a catalog of its own (not only the fallback).
	Supports(locale string) bool
}
