// Package timeline implements the generic cursor-dispatch engine every
// entity family reuses. A Timeline is a named set of entries, each
// dispatching to one of four operation kinds (empty, absolute, record,
// identifier). The engine binds entries as named callables and shares a
// single execution path across all four kinds — no inheritance, just a
// tagged-variant Entry plus a map keyed by operation name.
package timeline

import (
	"context"

	"github.com/chainscope/timeline/pkg/queryerr"
)

// Kind is the tag of the Entry variant.
type Kind int

const (
	// KindEmpty resolves to the empty sequence immediately.
	KindEmpty Kind = iota
	// KindAbsolute calls a store method with a synthesized min/max seed
	// tuple plus user args (ending with count).
	KindAbsolute
	// KindRecord calls a store method with keys extracted from an
	// already-resolved record plus user args. Only reachable through
	// KindIdentifier in practice, since nothing hands the engine a bare
	// record otherwise.
	KindRecord
	// KindIdentifier performs an id-lookup first; a miss returns the
	// not-found outcome, a hit delegates to KindRecord.
	KindIdentifier
)

// SeedFn produces the sentinel seed tuple for an absolute entry (e.g. the
// all-zero/all-F object id pair, or (0, -1)/(maxU64, 0) for transactions).
type SeedFn func() []interface{}

// ExtractFn produces the anchor tuple from a resolved record of type R.
type ExtractFn[R any] func(record R) []interface{}

// LookupFn resolves an anchor string to a record. found=false means the
// anchor is syntactically valid but no such record exists (§7 Not-found).
type LookupFn[R any] func(ctx context.Context, anchor string) (record R, found bool, err error)

// StoreMethod executes the range query itself: args is the anchor tuple
// followed by any extra user args, count is the page size.
type StoreMethod[R any] func(ctx context.Context, args []interface{}, count int) ([]R, error)

// Entry is one named operation on a Timeline.
type Entry[R any] struct {
	Kind    Kind
	Seed    SeedFn
	Extract ExtractFn[R]
	Lookup  LookupFn[R]
	Method  StoreMethod[R]
}

// Timeline holds no mutable state beyond its declarative entries and is
// safe to build once per family and reuse across requests.
type Timeline[R any] struct {
	entries map[string]Entry[R]
}

// New constructs an empty Timeline.
func New[R any]() *Timeline[R] {
	return &Timeline[R]{entries: make(map[string]Entry[R])}
}

// Add binds a single named entry.
func (t *Timeline[R]) Add(name string, e Entry[R]) {
	t.entries[name] = e
}

// AddAll binds every entry in the given set, as produced by
// GenerateAbsoluteParameters or GenerateIDParameters.
func (t *Timeline[R]) AddAll(entries map[string]Entry[R]) {
	for name, e := range entries {
		t.entries[name] = e
	}
}

// Has reports whether name is a bound entry.
func (t *Timeline[R]) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Call dispatches to the named entry. found=false with a nil error means
// the identifier lookup missed (§7 Not-found, → 404 at the route handler).
// count == 0 always resolves to the empty sequence without touching the
// store, regardless of kind.
func (t *Timeline[R]) Call(ctx context.Context, name string, anchorArgs []interface{}, count int) (records []R, found bool, err error) {
	e, ok := t.entries[name]
	if !ok {
		return nil, false, queryerr.Internal("unknown timeline entry: "+name, nil)
	}

	if count == 0 {
		return []R{}, true, nil
	}

	switch e.Kind {
	case KindEmpty:
		return []R{}, true, nil

	case KindAbsolute:
		seed := e.Seed()
		args := make([]interface{}, 0, len(seed)+len(anchorArgs))
		args = append(args, seed...)
		args = append(args, anchorArgs...)
		recs, err := e.Method(ctx, args, count)
		if err != nil {
			return nil, false, err
		}
		return recs, true, nil

	case KindIdentifier:
		if len(anchorArgs) == 0 {
			return nil, false, queryerr.Internal("identifier entry called without an anchor", nil)
		}
		anchorStr, _ := anchorArgs[0].(string)
		record, found, err := e.Lookup(ctx, anchorStr)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, nil
		}
		extracted := e.Extract(record)
		args := make([]interface{}, 0, len(extracted)+len(anchorArgs)-1)
		args = append(args, extracted...)
		args = append(args, anchorArgs[1:]...)
		recs, err := e.Method(ctx, args, count)
		if err != nil {
			return nil, false, err
		}
		return recs, true, nil

	case KindRecord:
		// KindRecord entries are not directly callable by name; they exist
		// only conceptually as the delegation target of KindIdentifier.
		return nil, false, queryerr.Internal("record entry is not directly callable: "+name, nil)

	default:
		return nil, false, queryerr.Internal("unrecognized timeline entry kind", nil)
	}
}

// GenerateAbsoluteParameters builds the four sentinel-driven entries every
// family gets for free: "from min"/"since max" are trivially empty because
// nothing sorts strictly before the family's minimum or strictly after its
// maximum; "from max" and "since min" run the real range query seeded with
// the opposite sentinel.
func GenerateAbsoluteParameters[R any](seedMin, seedMax SeedFn, storeFrom, storeSince StoreMethod[R]) map[string]Entry[R] {
	return map[string]Entry[R]{
		"fromMin":  {Kind: KindEmpty},
		"fromMax":  {Kind: KindAbsolute, Seed: seedMax, Method: storeFrom},
		"sinceMin": {Kind: KindAbsolute, Seed: seedMin, Method: storeSince},
		"sinceMax": {Kind: KindEmpty},
	}
}

// GenerateIDParameters builds the "from<Key>"/"since<Key>" identifier
// entries for one identifier shape a family accepts (e.g. keyName="Hash",
// keyName="ID"). A single family can call this once per accepted
// identifier shape; the route handler's anchor-class detection decides
// which resulting entry name to invoke.
func GenerateIDParameters[R any](keyName string, lookup LookupFn[R], extract ExtractFn[R], storeFrom, storeSince StoreMethod[R]) map[string]Entry[R] {
	return map[string]Entry[R]{
		"from" + keyName:  {Kind: KindIdentifier, Lookup: lookup, Extract: extract, Method: storeFrom},
		"since" + keyName: {Kind: KindIdentifier, Lookup: lookup, Extract: extract, Method: storeSince},
	}
}
