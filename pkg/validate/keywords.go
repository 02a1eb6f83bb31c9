package validate

import "github.com/chainscope/timeline/pkg/queryerr"

// Duration is the case-sensitive lowercase :duration path segment.
type Duration string

const (
	DurationFrom  Duration = "from"
	DurationSince Duration = "since"
)

// ParseDuration validates and normalizes the :duration segment.
func ParseDuration(s string) (Duration, error) {
	switch s {
	case string(DurationFrom):
		return DurationFrom, nil
	case string(DurationSince):
		return DurationSince, nil
	default:
		return "", queryerr.InvalidArgument("unknown duration: " + s)
	}
}

// SentinelBound describes which extreme of a family's sort order a keyword
// anchor denotes, independent of which alias spelled it.
type SentinelBound int

const (
	BoundMin SentinelBound = iota
	BoundMax
)

// timeSentinels covers "earliest"/"latest" style aliases used by
// time-ordered families (blocks, transactions, mosaics, namespaces).
var timeSentinels = map[string]SentinelBound{
	"min":     BoundMin,
	"earliest": BoundMin,
	"max":     BoundMax,
	"latest":  BoundMax,
}

// quantitySentinels covers "least"/"most" style aliases used by
// quantity-ordered families (the accounts variants).
var quantitySentinels = map[string]SentinelBound{
	"min":   BoundMin,
	"least": BoundMin,
	"max":   BoundMax,
	"most":  BoundMax,
}

// IsTimeSentinel reports whether s is a recognized absolute-time sentinel.
func IsTimeSentinel(s string) bool {
	_, ok := timeSentinels[s]
	return ok
}

// IsQuantitySentinel reports whether s is a recognized absolute-quantity
// sentinel.
func IsQuantitySentinel(s string) bool {
	_, ok := quantitySentinels[s]
	return ok
}

// TimeSentinelBound resolves a time sentinel keyword to its bound.
func TimeSentinelBound(s string) (SentinelBound, bool) {
	b, ok := timeSentinels[s]
	return b, ok
}

// QuantitySentinelBound resolves a quantity sentinel keyword to its bound.
func QuantitySentinelBound(s string) (SentinelBound, bool) {
	b, ok := quantitySentinels[s]
	return b, ok
}

// TransferFilter is the :filter path segment for
// transactions-by-type-with-filter routes.
type TransferFilter string

const (
	FilterMosaic   TransferFilter = "mosaic"
	FilterMultisig TransferFilter = "multisig"
)

// ParseTransferFilter validates the :filter segment.
func ParseTransferFilter(s string) (TransferFilter, error) {
	switch s {
	case string(FilterMosaic):
		return FilterMosaic, nil
	case string(FilterMultisig):
		return FilterMultisig, nil
	default:
		return "", queryerr.InvalidArgument("unknown transfer filter: " + s)
	}
}
