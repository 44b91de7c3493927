package component

// Time is a singleton carrying the frame clock. Delta is the length of the
// current frame tick and FixedDelta the length of a physics tick, in seconds.
type Time struct {
	Frame      uint64
	Delta      float64
	FixedDelta float64
}

var TimeComponent = NewComponent[Time]()
