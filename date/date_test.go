package date

import (
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseLayout(t *testing.T) {
	testCases := []struct {
		in, layout string
		want       Date
	}{
		{"2019-4-23", "", New(2019, time.April, 23)},
		{"2015-03-02", "", New(2015, time.March, 2)},
		{"23-Apr-19", "02-Jan-06", New(2019, time.April, 23)},
		{"5/9/2019", "1/2/2006", New(2019, time.May, 9)},
	}
	for _, tc := range testCases {
		got, err := ParseLayout(tc.in, tc.layout)
		if err != nil {
			t.Errorf("ParseLayout(%q, %q) unexpected error: %v", tc.in, tc.layout, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLayout(%q, %q) = %v, want %v", tc.in, tc.layout, got, tc.want)
		}
	}

	if _, err := Parse("not a date"); err == nil {
		t.Errorf("Parse(\"not a date\") want error")
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2019, 12, 31), New(2020, 1, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) is not a total order", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After inconsistent for %v and %v", a, b)
	}
}

func TestIntersect(t *testing.T) {
	d := func(day int) Date { return New(2019, 1, day) }

	got := Intersect(
		[]Date{d(3), d(1), d(2), d(4)},
		[]Date{d(2), d(3), d(4), d(5)},
		[]Date{d(4), d(3), d(9)},
	)
	want := []Date{d(3), d(4)}
	if !slices.Equal(got, want) {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}

	if got := Intersect([]Date{d(1)}, []Date{d(2)}); len(got) != 0 {
		t.Errorf("Intersect(disjoint) = %v, want empty", got)
	}
	if !IsSorted(want) {
		t.Errorf("IsSorted(%v) = false", want)
	}
	if IsSorted([]Date{d(2), d(2)}) {
		t.Errorf("IsSorted with duplicates = true")
	}
}
