package controller

import (
	"context"

	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/timeline"
	"github.com/chainscope/timeline/pkg/validate"
)

// identifierShape names one recognizer this route accepts for its
// identifier anchor, tried in priority order (spec.md §4.3
// "Anchor-to-method mapping").
type identifierShape struct {
	// key names the Timeline entry suffix this shape resolves to
	// (GenerateIDParameters' keyName).
	key string
	// recognize reports whether anchor is syntactically this shape.
	recognize func(anchor string) bool
}

// resolveEntry implements the anchor-class detection every family
// handler shares: sentinel keyword first, then each identifierShape in
// priority order, otherwise invalid-argument.
//
// isSentinel/sentinelBound abstract over the two sentinel vocabularies
// (time-ordered families use min/max/earliest/latest; quantity-ordered
// account families use min/max/least/most).
func resolveEntry(duration validate.Duration, anchor string, isSentinel func(string) bool, sentinelBound func(string) (validate.SentinelBound, bool), shapes []identifierShape) (entryName string, isIdentifier bool, err error) {
	if isSentinel(anchor) {
		bound, _ := sentinelBound(anchor)
		suffix := "Min"
		if bound == validate.BoundMax {
			suffix = "Max"
		}
		return string(duration) + suffix, false, nil
	}

	for _, shape := range shapes {
		if shape.recognize(anchor) {
			return string(duration) + shape.key, true, nil
		}
	}

	return "", false, queryerr.InvalidArgument("anchor does not match any recognized sentinel or identifier shape for this family: " + anchor)
}

// callTimeline invokes the resolved entry, supplying the anchor string
// only when the entry is an identifier lookup (KindAbsolute entries take
// no extra args beyond their synthesized seed).
func callTimeline[R any](ctx context.Context, t *timeline.Timeline[R], entryName string, isIdentifier bool, anchor string, count int) ([]R, bool, error) {
	var args []interface{}
	if isIdentifier {
		args = []interface{}{anchor}
	}
	return t.Call(ctx, entryName, args, count)
}

func timeSentinelShapes() (func(string) bool, func(string) (validate.SentinelBound, bool)) {
	return validate.IsTimeSentinel, validate.TimeSentinelBound
}

func quantitySentinelShapes() (func(string) bool, func(string) (validate.SentinelBound, bool)) {
	return validate.IsQuantitySentinel, validate.QuantitySentinelBound
}
