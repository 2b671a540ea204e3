package listview

import (
	"sort"
	"strings"
	"time"
)

// EmptyState discriminates the three terminal display states of a list view.
type EmptyState string

const (
	EmptyNone      EmptyState = "none"       // derived list has entries
	EmptyNoRecords EmptyState = "no_records" // source itself is empty
	EmptyNoMatches EmptyState = "no_matches" // source non-empty, filters exclude everything
)

// Config declares, per entity type, which fields the filter dimensions read
// and which named sort orders exist. A nil field accessor disables that
// dimension for the instance.
type Config[T any] struct {
	// SearchFields returns the string fields the text predicate scans.
	SearchFields func(T) []string
	CategoryOf   func(T) string
	StatusOf     func(T) string
	// DateOf returns the record timestamp; the zero time means missing or
	// unparseable and never matches a non-All bucket.
	DateOf func(T) time.Time

	Comparators map[string]Compare[T]
	DefaultSort string
}

// Instance is one configured filter/sort pipeline, shared by every list
// endpoint of an entity. Apply is pure: it never mutates its inputs and
// never fails on malformed records.
type Instance[T any] struct {
	cfg Config[T]
}

func New[T any](cfg Config[T]) *Instance[T] {
	return &Instance[T]{cfg: cfg}
}

// DefaultViewState returns the state every filter reset restores.
func (p *Instance[T]) DefaultViewState() ViewState {
	return ViewState{
		Category:   All,
		Status:     All,
		DateBucket: All,
		SortKey:    p.cfg.DefaultSort,
	}
}

// Normalize maps zero values onto the defaults so a ViewState built from
// absent query params equals DefaultViewState.
func (p *Instance[T]) Normalize(vs ViewState) ViewState {
	vs.Search = strings.ToLower(strings.TrimSpace(vs.Search))
	if vs.Category == "" {
		vs.Category = All
	}
	if vs.Status == "" {
		vs.Status = All
	}
	if vs.DateBucket == "" || !validBucket(strings.ToLower(vs.DateBucket)) {
		vs.DateBucket = All
	} else {
		vs.DateBucket = strings.ToLower(vs.DateBucket)
	}
	if vs.SortKey == "" {
		vs.SortKey = p.cfg.DefaultSort
	}
	if _, ok := p.cfg.Comparators[vs.SortKey]; !ok {
		vs.SortKey = p.cfg.DefaultSort
	}
	return vs
}

// Result carries the derived list plus the counts the presentation layer
// needs for its "N of M" summary and empty-state messaging.
type Result[T any] struct {
	Items      []T        `json:"items"`
	Total      int        `json:"total"`
	Matched    int        `json:"matched"`
	EmptyState EmptyState `json:"empty_state"`
}

// Apply filters then stable-sorts a defensive copy of records. now anchors
// the date buckets to the caller's clock.
func (p *Instance[T]) Apply(records []T, vs ViewState, now time.Time) Result[T] {
	vs = p.Normalize(vs)

	derived := make([]T, 0, len(records))
	for _, rec := range records {
		if p.matches(rec, vs, now) {
			derived = append(derived, rec)
		}
	}

	if cmp, ok := p.cfg.Comparators[vs.SortKey]; ok {
		sort.SliceStable(derived, func(i, j int) bool {
			return cmp(derived[i], derived[j]) < 0
		})
	}

	res := Result[T]{
		Items:   derived,
		Total:   len(records),
		Matched: len(derived),
	}
	switch {
	case res.Total == 0:
		res.EmptyState = EmptyNoRecords
	case res.Matched == 0:
		res.EmptyState = EmptyNoMatches
	default:
		res.EmptyState = EmptyNone
	}
	return res
}

// matches AND-composes the active predicates.
func (p *Instance[T]) matches(rec T, vs ViewState, now time.Time) bool {
	if vs.Search != "" {
		if p.cfg.SearchFields == nil {
			return false
		}
		found := false
		for _, f := range p.cfg.SearchFields(rec) {
			if strings.Contains(strings.ToLower(f), vs.Search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if vs.Category != All {
		if p.cfg.CategoryOf == nil || !strings.EqualFold(p.cfg.CategoryOf(rec), vs.Category) {
			return false
		}
	}
	if vs.Status != All {
		if p.cfg.StatusOf == nil || !strings.EqualFold(p.cfg.StatusOf(rec), vs.Status) {
			return false
		}
	}
	if vs.DateBucket != All {
		if p.cfg.DateOf == nil {
			return false
		}
		if !bucketMatches(p.cfg.DateOf(rec), vs.DateBucket, now) {
			return false
		}
	}
	return true
}

// bucketMatches compares calendar days. today and yesterday are exact,
// last7days/last30days are inclusive upper bounds.
func bucketMatches(ts time.Time, bucket string, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	diff := diffDays(ts, now)
	switch bucket {
	case BucketToday:
		return diff == 0
	case BucketYesterday:
		return diff == 1
	case BucketLast7Days:
		return diff <= 7
	case BucketLast30Days:
		return diff <= 30
	}
	return true
}

func diffDays(ts, now time.Time) int {
	loc := now.Location()
	y1, m1, d1 := ts.In(loc).Date()
	y2, m2, d2 := now.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
