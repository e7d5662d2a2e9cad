package crop

// Marker identifies which of the two crop corners a click wrote.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerFirst
	MarkerSecond
)

func (m Marker) String() string {
	switch m {
	case MarkerFirst:
		return "first"
	case MarkerSecond:
		return "second"
	default:
		return "none"
	}
}

// MarkerOffset is half the on-screen marker size; markers are placed so their
// centre sits on the clicked point.
const MarkerOffset = 2.5

// MarkerOrigin returns the top-left position of a marker centred on p.
func MarkerOrigin(p Point) Point {
	return Point{X: p.X - MarkerOffset, Y: p.Y - MarkerOffset}
}

// Click describes the outcome of one recorded click.
type Click struct {
	Count  int
	Marker Marker
	At     Point
	// Ready is true once both corners exist; First/Second/Border are only
	// meaningful then.
	Ready  bool
	First  Point
	Second Point
	Border Rect
}

// Recorder tracks the click counter and the two alternating crop corners.
// The zero value is ready to use. Not safe for concurrent use.
type Recorder struct {
	count  int
	first  Point
	second Point
}

// Record registers a click at p. Odd clicks overwrite the first corner, even
// clicks the second, indefinitely.
func (r *Recorder) Record(p Point) Click {
	r.count++
	c := Click{Count: r.count, At: p}
	if r.count%2 == 1 {
		r.first = p
		c.Marker = MarkerFirst
	} else {
		r.second = p
		c.Marker = MarkerSecond
	}
	if r.count >= 2 {
		c.Ready = true
		c.First, c.Second = r.first, r.second
		c.Border = BoundingBox(r.first, r.second)
	}
	return c
}

// Reset returns the recorder to the no-points state.
func (r *Recorder) Reset() {
	r.count = 0
	r.first, r.second = Point{}, Point{}
}

// Count returns the number of clicks since the last reset.
func (r *Recorder) Count() int { return r.count }
