package simulation

// DefaultHistoryLen is the trace length Live mode keeps.
const DefaultHistoryLen = 240

// History is a fixed-capacity ring of the most recent scalar values, used
// for the trailing Live trace. It is always full: NewHistory prefills every
// slot and each Push evicts the oldest entry. Not safe for concurrent use;
// the frame loop is the only writer.
type History struct {
	buf []float64
	w   int // write position
}

// NewHistory creates a ring holding capacity values, all set to fill.
// Panics if capacity < 1.
func NewHistory(capacity int, fill float64) *History {
	if capacity < 1 {
		panic("simulation: history capacity must be at least 1")
	}
	h := &History{buf: make([]float64, capacity)}
	h.Fill(fill)
	return h
}

// Push appends v, evicting the oldest value.
func (h *History) Push(v float64) {
	h.buf[h.w] = v
	h.w = (h.w + 1) % len(h.buf)
}

// Fill resets every slot to v, flattening the trace.
func (h *History) Fill(v float64) {
	for i := range h.buf {
		h.buf[i] = v
	}
	h.w = 0
}

// Cap returns the ring capacity.
func (h *History) Cap() int { return len(h.buf) }

// Values returns the held values, oldest to newest.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.buf))
	for i := range h.buf {
		out[i] = h.buf[(h.w+i)%len(h.buf)]
	}
	return out
}
