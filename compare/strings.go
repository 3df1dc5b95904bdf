package compare

import (
	"cmp"

	"facette.io/natsort"
	"github.com/amp-labs/amp-extensions/assert"
	"golang.org/x/text/collate"
)

// ByCollator compares the string keys produced by the selectors using a
// language-aware collator, e.g. collate.New(language.German, collate.IgnoreCase).
//
// A collate.Collator keeps internal buffers and is not safe for concurrent use;
// callers comparing from several goroutines need one collator per goroutine.
func ByCollator[A, B any](
	collator *collate.Collator, a A, b B, selectorA func(A) string, selectorB func(B) string,
) (int, error) {
	if err := assert.Arguments("collator", collator, "selectorA", selectorA, "selectorB", selectorB); err != nil {
		return 0, err
	}

	return Sign(collator.CompareString(selectorA(a), selectorB(b))), nil
}

// ByNatural compares the string keys produced by the selectors in natural order,
// where runs of digits compare numerically: "file2" sorts before "file10".
func ByNatural[A, B any](a A, b B, selectorA func(A) string, selectorB func(B) string) (int, error) {
	if err := assert.Arguments("selectorA", selectorA, "selectorB", selectorB); err != nil {
		return 0, err
	}

	return Natural(selectorA(a), selectorB(b)), nil
}

// Natural is a three-way natural-order comparison of two strings.
// Strings that are naturally equal but spelled differently ("a01" and "a1")
// fall back to byte order so the result stays a total order.
func Natural(x, y string) int {
	if x == y {
		return 0
	}

	less := natsort.Compare(x, y)
	greater := natsort.Compare(y, x)

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		return cmp.Compare(x, y)
	}
}
