package nd

import "fmt"

// Bounds selects a range along one dimension together with a step.
// For example "from 1 to the end, every 2nd element" is
//
//	nd.All().From(1).Step(2)
//
// The zero Bounds is equivalent to All.
type Bounds struct {
	start, end                int
	step                      int
	hasStart, hasEnd, hasStep bool
}

// All selects the whole dimension with step 1.
func All() Bounds {
	return Bounds{}
}

// Range selects [start, end) with step 1.
func Range(start, end int) Bounds {
	return All().From(start).To(end)
}

// From sets the first selected index.
func (b Bounds) From(start int) Bounds {
	b.start, b.hasStart = start, true
	return b
}

// To sets the exclusive end of the range.
func (b Bounds) To(end int) Bounds {
	b.end, b.hasEnd = end, true
	return b
}

// ToInclusive sets the inclusive end of the range.
func (b Bounds) ToInclusive(end int) Bounds {
	return b.To(end + 1)
}

// Step sets the distance between selected indices. It must be at least 1.
func (b Bounds) Step(step int) Bounds {
	b.step, b.hasStep = step, true
	return b
}

func (b Bounds) stepOrDefault() int {
	if !b.hasStep {
		return 1
	}
	return b.step
}

// resolve applies the defaults for a dimension of length n and validates the
// result, returning start, selected length and step.
//
// The returned step never exceeds the selected range, so multiplying it into
// a stride cannot overflow where the unsliced stride did not.
func (b Bounds) resolve(d, n int) (start, length, step int, err error) {
	start, end, step := 0, n, b.stepOrDefault()
	if b.hasStart {
		start = b.start
	}
	if b.hasEnd {
		end = b.end
	}
	if step < 1 {
		return 0, 0, 0, fmt.Errorf("%w: step %d along dimension %d must be at least 1", ErrInvalidRange, step, d)
	}
	if start < 0 || start > end || end > n {
		return 0, 0, 0, fmt.Errorf("%w: range %d..%d out of bounds for dimension %d of length %d",
			ErrInvalidRange, start, end, d, n)
	}

	span := end - start
	length = span / step
	if span%step != 0 {
		length++
	}
	// Only the first index is selected when step >= span.
	return start, length, min(step, max(span, 1)), nil
}

// String renders the bounds as start:end:step, leaving defaults blank.
func (b Bounds) String() string {
	s := ""
	if b.hasStart {
		s = fmt.Sprint(b.start)
	}
	s += ":"
	if b.hasEnd {
		s += fmt.Sprint(b.end)
	}
	return fmt.Sprintf("%s:%d", s, b.stepOrDefault())
}
