package application

import (
	"context"
	"errors"
)

// ErrPartnerNotFound is returned by a PartnerDirectory when the reference
// number is not registered.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerDirectory is the port for partner credential lookups. The directory
// is read-only for the lifetime of the service and must be safe for
// concurrent reads.
type PartnerDirectory interface {
	// Lookup resolves a partner reference number to its expected plaintext
	// password. Returns ErrPartnerNotFound for unknown reference numbers.
	Lookup(ctx context.Context, partnerRefNo string) (string, error)
}
