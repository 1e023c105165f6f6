package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryValid(t *testing.T) {
	r := NewRegistry([]string{"gcash", "PayMaya"})

	assert.True(t, r.Valid("gcash"))
	assert.True(t, r.Valid("GCash"))
	assert.True(t, r.Valid("paymaya"))
	assert.False(t, r.Valid("stripe"))
	assert.False(t, r.Valid(""))
}

func TestNewTransactionID(t *testing.T) {
	id := NewTransactionID("gcash")
	assert.True(t, strings.HasPrefix(id, "GCASH-"), "id %q should carry the provider prefix", id)

	other := NewTransactionID("gcash")
	assert.NotEqual(t, id, other, "transaction ids must be unique")
}
