package form

import (
	"strconv"
	"strings"
)

// QuantityState is the editing state of a quantity input.
type QuantityState int

const (
	// QuantityCommitted means the buffer mirrors the committed value.
	QuantityCommitted QuantityState = iota
	// QuantityTyping means the buffer holds unconfirmed text.
	QuantityTyping
	// QuantityInvalid means the last blur could not parse the buffer. Submit is blocked.
	QuantityInvalid
)

// Quantity is a numeric input edited in two stages: Type only touches the raw
// buffer, Blur commits it.
type Quantity struct {
	committed int
	raw       string
	state     QuantityState
}

// NewQuantity returns a committed quantity of n.
func NewQuantity(n int) Quantity {
	return Quantity{committed: n, raw: strconv.Itoa(n), state: QuantityCommitted}
}

// RestoreQuantity rebuilds a quantity from a committed value and the raw buffer
// last shown to the user. A differing buffer is treated as uncommitted typing.
func RestoreQuantity(committed int, raw string) Quantity {
	q := NewQuantity(committed)
	if raw != q.raw {
		q.Type(raw)
	}
	return q
}

// Type replaces the raw buffer without touching the committed value.
func (q *Quantity) Type(raw string) {
	q.raw = raw
	q.state = QuantityTyping
}

// Blur commits the buffer. A parsable integer becomes the committed value and the
// buffer is normalized; anything else clears the buffer and marks the quantity invalid.
func (q *Quantity) Blur() {
	if q.state == QuantityCommitted {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(q.raw))
	if err != nil {
		q.raw = ""
		q.state = QuantityInvalid
		return
	}
	q.committed = n
	q.raw = strconv.Itoa(n)
	q.state = QuantityCommitted
}

func (q Quantity) Raw() string { return q.raw }

func (q Quantity) State() QuantityState { return q.state }

// Committed returns the last committed value, even while typing or invalid.
func (q Quantity) Committed() int { return q.committed }

// Value returns the committed value and whether it may be submitted.
func (q Quantity) Value() (int, bool) {
	if q.state != QuantityCommitted {
		return 0, false
	}
	return q.committed, true
}

// Positive reports whether the quantity is committed and greater than zero.
func (q Quantity) Positive() bool {
	n, ok := q.Value()
	return ok && n > 0
}
