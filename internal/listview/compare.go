package listview

import (
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare is a standard three-way comparator over two records.
type Compare[T any] func(a, b T) int

var (
	collMu sync.Mutex
	coll   = collate.New(language.Spanish, collate.IgnoreCase)
)

func collateCompare(a, b string) int {
	// collate.Collator keeps an internal buffer and is not safe for
	// concurrent use.
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// ByString orders records by a string field using Spanish collation rather
// than byte order, so accented names interleave where users expect them.
func ByString[T any](key func(T) string) Compare[T] {
	return func(a, b T) int {
		return collateCompare(key(a), key(b))
	}
}

// ByNumber orders records by a numeric field. Callers map missing or
// unparseable values to 0 inside key.
func ByNumber[T any](key func(T) float64) Compare[T] {
	return func(a, b T) int {
		av, bv := key(a), key(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
}

// ByTime orders records chronologically on a parsed time value. Zero times
// sort first on ascending order.
func ByTime[T any](key func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		at, bt := key(a), key(b)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	}
}

// Desc reverses a comparator.
func Desc[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int { return -cmp(a, b) }
}
