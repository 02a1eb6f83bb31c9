// Package family provides type-safe constants and helpers for the entity
// families the timeline query layer knows how to page through.
//
// This package is the single source of truth for family names used
// throughout the route handler, the family query builders, and the
// response envelope's "type" tag.
package family

import (
	"fmt"
	"sort"
	"strings"
)

// Family identifies one of the entity families the timeline engine can
// page over. Family values should be treated as immutable constants; use
// the package-level constants rather than constructing Family values
// directly.
type Family string

const (
	Blocks                    Family = "blocks"
	Transactions              Family = "transactions"
	TransactionsUnconfirmed   Family = "unconfirmedTransactions"
	TransactionsPartial       Family = "partialTransactions"
	Mosaics                   Family = "mosaics"
	Namespaces                Family = "namespaces"
	AccountsImportance        Family = "accounts.importance"
	AccountsHarvestedBlocks   Family = "accounts.harvestedBlocks"
	AccountsHarvestedFees     Family = "accounts.harvestedFees"
	AccountsBalanceCurrency   Family = "accounts.balance.currency"
	AccountsBalanceHarvest    Family = "accounts.balance.harvest"
	AccountsBalanceXem        Family = "accounts.balance.xem"
)

// allFamilies contains the complete list of families known to the system.
// init panics if an entry here is empty or contains whitespace; a constant
// left out of this list is not detected.
var allFamilies = []Family{
	Blocks,
	Transactions,
	TransactionsUnconfirmed,
	TransactionsPartial,
	Mosaics,
	Namespaces,
	AccountsImportance,
	AccountsHarvestedBlocks,
	AccountsHarvestedFees,
	AccountsBalanceCurrency,
	AccountsBalanceHarvest,
	AccountsBalanceXem,
}

var familySet map[Family]bool

func init() {
	familySet = make(map[Family]bool, len(allFamilies))
	for _, f := range allFamilies {
		familySet[f] = true
	}

	for _, f := range allFamilies {
		if f == "" {
			panic("family: empty family name detected in allFamilies")
		}
		if strings.Contains(string(f), " ") {
			panic(fmt.Sprintf("family: family name %q contains whitespace", f))
		}
	}
}

// String implements fmt.Stringer; this is also the response envelope's
// "type" tag value.
func (f Family) String() string {
	return string(f)
}

// Collection returns the store collection/table this family reads from.
func (f Family) Collection() string {
	switch f {
	case Transactions:
		return "transactions"
	case TransactionsUnconfirmed:
		return "unconfirmed_transactions"
	case TransactionsPartial:
		return "partial_transactions"
	case AccountsImportance, AccountsHarvestedBlocks, AccountsHarvestedFees,
		AccountsBalanceCurrency, AccountsBalanceHarvest, AccountsBalanceXem:
		return "accounts"
	default:
		return string(f)
	}
}

// IsValid returns true if this family is known to the system.
func (f Family) IsValid() bool {
	return familySet[f]
}

// FromString converts a string to a Family and validates it.
func FromString(s string) (Family, error) {
	f := Family(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown family %q, valid families: %s", s, validFamiliesString())
	}
	return f, nil
}

// All returns a copy of every known family.
func All() []Family {
	result := make([]Family, len(allFamilies))
	copy(result, allFamilies)
	return result
}

func validFamiliesString() string {
	names := make([]string, len(allFamilies))
	for i, f := range allFamilies {
		names[i] = string(f)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
