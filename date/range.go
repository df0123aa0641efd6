package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// Span returns the range covered by days, assumed sorted.
// ok is false when days is empty.
func Span(days []Date) (r Range, ok bool) {
	if len(days) == 0 {
		return Range{}, false
	}
	return Range{From: days[0], To: days[len(days)-1]}, true
}

// Days returns the number of calendar days in the range, boundaries included.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
