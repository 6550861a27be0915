package pagerange

import (
	"reflect"
	"testing"
)

func TestParseAll(t *testing.T) {
	for _, expr := range []string{"", "all", "ALL", "  all  "} {
		got := Parse(expr, 4)
		want := []int{1, 2, 3, 4}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse(%q, 4) = %v, want %v", expr, got, want)
		}
	}
}

func TestParseMixed(t *testing.T) {
	got := Parse("1-3,6,8-10", 12)
	want := []int{1, 2, 3, 6, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"1-3,6,8-10\", 12) = %v, want %v", got, want)
	}
}

func TestParseInvertedRangeDropped(t *testing.T) {
	if got := Parse("5-2", 10); len(got) != 0 {
		t.Errorf("Parse(\"5-2\", 10) = %v, want empty", got)
	}
}

func TestParseMalformedTokensDropped(t *testing.T) {
	got := Parse("1,abc,3", 10)
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"1,abc,3\", 10) = %v, want %v", got, want)
	}

	// Ranges with extra dashes fail the integer parse and are skipped.
	got = Parse("1-2-3,4", 10)
	want = []int{4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"1-2-3,4\", 10) = %v, want %v", got, want)
	}
}

func TestParseClamping(t *testing.T) {
	got := Parse("0-3", 10)
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"0-3\", 10) = %v, want %v", got, want)
	}

	got = Parse("8-99", 10)
	want = []int{8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"8-99\", 10) = %v, want %v", got, want)
	}

	// Single out-of-range pages are dropped, not clamped.
	if got := Parse("0,11", 10); len(got) != 0 {
		t.Errorf("Parse(\"0,11\", 10) = %v, want empty", got)
	}
}

func TestParseDeduplicatesAndSorts(t *testing.T) {
	got := Parse("3,1,2-3,1", 5)
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"3,1,2-3,1\", 5) = %v, want %v", got, want)
	}
}

func TestParseInvariants(t *testing.T) {
	exprs := []string{"", "all", "1-3,6,8-10", "5-2", "1,abc,3", "0-99", "7", "-1", "2,2,2"}
	for _, expr := range exprs {
		got := Parse(expr, 8)
		for i, p := range got {
			if p < 1 || p > 8 {
				t.Errorf("Parse(%q, 8): page %d out of bounds", expr, p)
			}
			if i > 0 && got[i-1] >= p {
				t.Errorf("Parse(%q, 8): not strictly ascending: %v", expr, got)
			}
		}
	}
}

func TestOrdinal(t *testing.T) {
	selection := Parse("2,4", 5)
	cases := []struct {
		page, want int
	}{
		{1, 0}, {2, 1}, {3, 0}, {4, 2}, {5, 0},
	}
	for _, c := range cases {
		if got := Ordinal(selection, c.page); got != c.want {
			t.Errorf("Ordinal(%v, %d) = %d, want %d", selection, c.page, got, c.want)
		}
	}
}
