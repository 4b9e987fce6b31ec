package snake

// Segment is a straight run of the body: Len unit steps taken in Dir,
// ending at the end closer to the head. Len 0 only exists between a turn
// and the first step in the new heading.
type Segment struct {
	Dir Direction
	Len int
}

// S is a convenience constructor for Segment
func S(dir Direction, length int) Segment {
	return Segment{Dir: dir, Len: length}
}

// Segments is an indexed head-to-tail sequence of segments
type Segments interface {
	Len() int
	At(i int) Segment
}

// SegmentList adapts a plain slice, ordered head to tail
type SegmentList []Segment

func (l SegmentList) Len() int         { return len(l) }
func (l SegmentList) At(i int) Segment { return l[i] }

// Body is a ring-buffer deque of segments.
// Front is the most recent heading (head end), back the oldest (tail end).
type Body struct {
	buf  []Segment
	head int
	n    int
}

const minBodyCap = 8

// NewBody creates a body holding segs, ordered head to tail
func NewBody(segs ...Segment) *Body {
	b := &Body{}
	b.grow(len(segs))
	for i, s := range segs {
		b.buf[i] = s
	}
	b.n = len(segs)
	return b
}

// Len returns the number of segments
func (b *Body) Len() int { return b.n }

// At returns the i-th segment counted from the front
func (b *Body) At(i int) Segment {
	return b.buf[(b.head+i)%len(b.buf)]
}

// Front returns the head-end segment for in-place update, nil when empty
func (b *Body) Front() *Segment {
	if b.n == 0 {
		return nil
	}
	return &b.buf[b.head]
}

// Back returns the tail-end segment for in-place update, nil when empty
func (b *Body) Back() *Segment {
	if b.n == 0 {
		return nil
	}
	return &b.buf[(b.head+b.n-1)%len(b.buf)]
}

// PushFront adds a segment at the head end
func (b *Body) PushFront(s Segment) {
	b.grow(b.n + 1)
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = s
	b.n++
}

// PopBack removes and returns the tail-end segment
func (b *Body) PopBack() (Segment, bool) {
	if b.n == 0 {
		return Segment{}, false
	}
	idx := (b.head + b.n - 1) % len(b.buf)
	s := b.buf[idx]
	b.buf[idx] = Segment{}
	b.n--
	return s, true
}

// Total returns the sum of run lengths, which is the body length in cells
func (b *Body) Total() int {
	total := 0
	for i := 0; i < b.n; i++ {
		total += b.At(i).Len
	}
	return total
}

// Snapshot copies the segments into a slice, head to tail
func (b *Body) Snapshot() SegmentList {
	out := make(SegmentList, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// grow reallocates so at least size segments fit, unwrapping the ring
func (b *Body) grow(size int) {
	if size <= len(b.buf) {
		return
	}
	newCap := len(b.buf) * 2
	if newCap < minBodyCap {
		newCap = minBodyCap
	}
	for newCap < size {
		newCap *= 2
	}
	buf := make([]Segment, newCap)
	for i := 0; i < b.n; i++ {
		buf[i] = b.At(i)
	}
	b.buf = buf
	b.head = 0
}
