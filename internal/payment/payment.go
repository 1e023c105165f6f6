// Package payment covers the payment collaborator surface: the accepted
// provider list and transaction identifier generation. Charging itself happens
// on the provider's side; this service only records the resulting transaction.
package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Registry holds the set of payment providers accepted for new bookings.
type Registry struct {
	providers map[string]struct{}
}

// NewRegistry builds a registry from the configured provider names.
// Matching is case-insensitive.
func NewRegistry(names []string) *Registry {
	r := &Registry{providers: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.providers[strings.ToLower(n)] = struct{}{}
	}
	return r
}

// Valid reports whether the named provider is accepted.
func (r *Registry) Valid(name string) bool {
	_, ok := r.providers[strings.ToLower(name)]
	return ok
}

// NewTransactionID generates a provider-prefixed transaction identifier,
// e.g. "GCASH-1717430400-9f86d081". Used when the client did not already
// obtain one from the provider checkout page.
func NewTransactionID(provider string) string {
	return fmt.Sprintf("%s-%d-%s",
		strings.ToUpper(provider),
		time.Now().Unix(),
		uuid.NewString()[:8],
	)
}
