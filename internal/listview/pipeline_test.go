package listview

import (
	"reflect"
	"testing"
	"time"

	"github.com/S3b4sB0t3r0/evg-server/internal/money"
)

type row struct {
	Nombre    string
	Correo    string
	Categoria string
	Estado    string
	Precio    float64
	CreatedAt time.Time
}

func rowPipeline() *Instance[row] {
	return New(Config[row]{
		SearchFields: func(r row) []string { return []string{r.Nombre, r.Correo} },
		CategoryOf:   func(r row) string { return r.Categoria },
		StatusOf:     func(r row) string { return r.Estado },
		DateOf:       func(r row) time.Time { return r.CreatedAt },
		Comparators: map[string]Compare[row]{
			"nombre_asc":  ByString(func(r row) string { return r.Nombre }),
			"nombre_desc": Desc(ByString(func(r row) string { return r.Nombre })),
			"precio_asc":  ByNumber(func(r row) float64 { return r.Precio }),
			"recientes":   Desc(ByTime(func(r row) time.Time { return r.CreatedAt })),
		},
		DefaultSort: "recientes",
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func names(items []row) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Nombre)
	}
	return out
}

func TestApplyDefaultsKeepEverything(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "Ana", Estado: "pendiente", CreatedAt: day(2024, time.June, 14)},
		{Nombre: "Bruno", Estado: "entregado", CreatedAt: day(2024, time.June, 10)},
	}

	res := p.Apply(records, p.DefaultViewState(), now)
	if res.Matched != 2 || res.Total != 2 {
		t.Fatalf("matched=%d total=%d, want 2/2", res.Matched, res.Total)
	}
	if res.EmptyState != EmptyNone {
		t.Fatalf("empty state = %q, want %q", res.EmptyState, EmptyNone)
	}

	// A zero ViewState normalizes to the defaults and yields the same list.
	again := p.Apply(records, ViewState{}, now)
	if !reflect.DeepEqual(names(res.Items), names(again.Items)) {
		t.Fatalf("zero state %v != default state %v", names(again.Items), names(res.Items))
	}
}

func TestApplyNarrowsMonotonically(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "Ana Gomez", Estado: "pendiente", CreatedAt: day(2024, time.June, 15)},
		{Nombre: "Ana Ruiz", Estado: "entregado", CreatedAt: day(2024, time.June, 15)},
		{Nombre: "Carlos", Estado: "pendiente", CreatedAt: day(2024, time.June, 15)},
	}

	base := p.Apply(records, ViewState{}, now)
	searched := p.Apply(records, ViewState{Search: "ana"}, now)
	both := p.Apply(records, ViewState{Search: "ana", Status: "pendiente"}, now)

	if searched.Matched > base.Matched || both.Matched > searched.Matched {
		t.Fatalf("narrowing grew the list: %d -> %d -> %d", base.Matched, searched.Matched, both.Matched)
	}
	if both.Matched != 1 || both.Items[0].Nombre != "Ana Gomez" {
		t.Fatalf("search+status got %v, want [Ana Gomez]", names(both.Items))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "Ana", Correo: "ana@evg.co", Estado: "Pendiente"},
	}

	res := p.Apply(records, ViewState{Search: "  ANA  ", Status: "PENDIENTE"}, now)
	if res.Matched != 1 {
		t.Fatalf("matched=%d, want 1", res.Matched)
	}
}

func TestApplySortIsStable(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "first", Precio: 100},
		{Nombre: "second", Precio: 100},
		{Nombre: "third", Precio: 50},
	}

	res := p.Apply(records, ViewState{SortKey: "precio_asc"}, now)
	want := []string{"third", "first", "second"}
	if !reflect.DeepEqual(names(res.Items), want) {
		t.Fatalf("got %v, want %v", names(res.Items), want)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "Zoe"},
		{Nombre: "Ana"},
	}

	p.Apply(records, ViewState{SortKey: "nombre_asc"}, now)
	if records[0].Nombre != "Zoe" || records[1].Nombre != "Ana" {
		t.Fatalf("input reordered: %v", names(records))
	}
}

func TestApplyEmptyStates(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)

	res := p.Apply(nil, ViewState{}, now)
	if res.EmptyState != EmptyNoRecords {
		t.Fatalf("empty source: got %q, want %q", res.EmptyState, EmptyNoRecords)
	}

	records := []row{{Nombre: "Ana", Estado: "pendiente"}}
	res = p.Apply(records, ViewState{Status: "cancelado"}, now)
	if res.EmptyState != EmptyNoMatches {
		t.Fatalf("filtered out: got %q, want %q", res.EmptyState, EmptyNoMatches)
	}
	if res.Total != 1 || res.Matched != 0 {
		t.Fatalf("total=%d matched=%d, want 1/0", res.Total, res.Matched)
	}
}

func TestNormalizeInvalidValuesFallBack(t *testing.T) {
	p := rowPipeline()

	vs := p.Normalize(ViewState{DateBucket: "nextweek", SortKey: "no_such_order"})
	if vs.DateBucket != All {
		t.Fatalf("bucket = %q, want %q", vs.DateBucket, All)
	}
	if vs.SortKey != "recientes" {
		t.Fatalf("sort = %q, want default", vs.SortKey)
	}
}

func TestBucketBoundaries(t *testing.T) {
	now := day(2024, time.June, 15)

	cases := []struct {
		name   string
		ts     time.Time
		bucket string
		want   bool
	}{
		{"today matches", day(2024, time.June, 15), BucketToday, true},
		{"yesterday not today", day(2024, time.June, 14), BucketToday, false},
		{"yesterday exact", day(2024, time.June, 14), BucketYesterday, true},
		{"two days ago not yesterday", day(2024, time.June, 13), BucketYesterday, false},
		{"seventh day included", day(2024, time.June, 8), BucketLast7Days, true},
		{"eighth day excluded", day(2024, time.June, 7), BucketLast7Days, false},
		{"thirtieth day included", day(2024, time.May, 16), BucketLast30Days, true},
		{"older excluded", day(2024, time.May, 15), BucketLast30Days, false},
		{"zero time never matches", time.Time{}, BucketLast30Days, false},
	}
	for _, tc := range cases {
		if got := bucketMatches(tc.ts, tc.bucket, now); got != tc.want {
			t.Errorf("%s: bucketMatches(%v, %s) = %v, want %v", tc.name, tc.ts, tc.bucket, got, tc.want)
		}
	}
}

func TestBucketCrossesMidnightNotClock(t *testing.T) {
	// 23:50 yesterday vs 00:10 today is one calendar day apart even though
	// the instants are 20 minutes apart.
	now := time.Date(2024, time.June, 15, 0, 10, 0, 0, time.UTC)
	ts := time.Date(2024, time.June, 14, 23, 50, 0, 0, time.UTC)

	if !bucketMatches(ts, BucketYesterday, now) {
		t.Fatal("23:50 the previous day should land in yesterday")
	}
	if bucketMatches(ts, BucketToday, now) {
		t.Fatal("23:50 the previous day must not land in today")
	}
}

func TestByNumberSortsParsedCurrency(t *testing.T) {
	type priced struct {
		Nombre string
		Precio string // display string, may be empty
	}
	p := New(Config[priced]{
		Comparators: map[string]Compare[priced]{
			"precio_asc": ByNumber(func(r priced) float64 {
				return float64(money.ParseCOP(r.Precio))
			}),
		},
		DefaultSort: "precio_asc",
	})
	now := day(2024, time.June, 15)
	records := []priced{
		{Nombre: "caro", Precio: "$5.000"},
		{Nombre: "sin precio"},
		{Nombre: "barato", Precio: "$1.000"},
	}

	res := p.Apply(records, ViewState{}, now)
	var got []string
	for _, it := range res.Items {
		got = append(got, it.Nombre)
	}
	// A missing price parses to 0 and sorts first.
	want := []string{"sin precio", "barato", "caro"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestByStringUsesSpanishCollation(t *testing.T) {
	p := rowPipeline()
	now := day(2024, time.June, 15)
	records := []row{
		{Nombre: "Zanahoria"},
		{Nombre: "Ñame"},
		{Nombre: "Nuez"},
	}

	res := p.Apply(records, ViewState{SortKey: "nombre_asc"}, now)
	want := []string{"Nuez", "Ñame", "Zanahoria"}
	if !reflect.DeepEqual(names(res.Items), want) {
		t.Fatalf("got %v, want %v", names(res.Items), want)
	}
}
