package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllFamiliesAreValid(t *testing.T) {
	for _, f := range All() {
		assert.True(t, f.IsValid(), "family %q should be valid", f)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, f := range All() {
		parsed, err := FromString(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestFromStringUnknown(t *testing.T) {
	_, err := FromString("not-a-family")
	assert.Error(t, err)
}

func TestCollectionMapping(t *testing.T) {
	cases := map[Family]string{
		Blocks:                  "blocks",
		Transactions:            "transactions",
		TransactionsUnconfirmed: "unconfirmed_transactions",
		TransactionsPartial:     "partial_transactions",
		Mosaics:                 "mosaics",
		Namespaces:              "namespaces",
		AccountsImportance:      "accounts",
		AccountsHarvestedBlocks: "accounts",
		AccountsHarvestedFees:   "accounts",
		AccountsBalanceCurrency: "accounts",
		AccountsBalanceHarvest:  "accounts",
		AccountsBalanceXem:      "accounts",
	}
	for f, want := range cases {
		assert.Equal(t, want, f.Collection(), "collection for %q", f)
	}
}

func TestAllReturnsACopy(t *testing.T) {
	first := All()
	first[0] = "mutated"
	second := All()
	assert.NotEqual(t, Family("mutated"), second[0])
}
