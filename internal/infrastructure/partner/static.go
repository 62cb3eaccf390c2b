// Package partner provides the in-memory partner directory seeded from
// configuration.
package partner

import (
	"context"

	"github.com/fgpay/transaction-gateway/internal/application"
)

// StaticDirectory is a fixed partnerRefNo -> password map. It is never
// mutated after construction, so concurrent lookups need no locking.
type StaticDirectory struct {
	partners map[string]string
}

func NewStaticDirectory(partners map[string]string) *StaticDirectory {
	m := make(map[string]string, len(partners))
	for refNo, password := range partners {
		m[refNo] = password
	}
	return &StaticDirectory{partners: m}
}

func (d *StaticDirectory) Lookup(_ context.Context, partnerRefNo string) (string, error) {
	password, ok := d.partners[partnerRefNo]
	if !ok {
		return "", application.ErrPartnerNotFound
	}
	return password, nil
}
