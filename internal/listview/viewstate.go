package listview

// All is the sentinel meaning "this filter dimension is inactive".
const All = "all"

// Date buckets. Buckets are computed on calendar days, not instants:
// today and yesterday match exactly, the ranges are inclusive.
const (
	BucketToday      = "today"
	BucketYesterday  = "yesterday"
	BucketLast7Days  = "last7days"
	BucketLast30Days = "last30days"
)

func validBucket(b string) bool {
	switch b {
	case All, BucketToday, BucketYesterday, BucketLast7Days, BucketLast30Days:
		return true
	}
	return false
}

// ViewState holds the user-selected filter and sort choices of one list view.
// Zero values for Category/Status/DateBucket are treated as All, so a
// ViewState built from absent query params behaves like the defaults.
type ViewState struct {
	Search     string `json:"search"`
	Category   string `json:"categoria"`
	Status     string `json:"estado"`
	DateBucket string `json:"fecha"`
	SortKey    string `json:"orden"`
}
