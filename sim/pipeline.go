// Implements the DelayPipeline, the fixed-lag FIFO connecting two chain stages.
// Goods (or orders) pushed at the tail become visible at the head exactly
// `delay` turns later.

package sim

import (
	"fmt"
	"strings"
)

// DelayPipeline models a transit lag of a fixed number of turns between a
// producer's action and a consumer's observation of it.
//
// The buffer is pre-filled with `delay` zero entries at construction, so the
// first `delay` pops are guaranteed to return 0 regardless of what is pushed.
// Driven correctly (one PopArrival and one PushDeparture per turn) the
// occupied length stays constant at `delay`.
type DelayPipeline struct {
	buffer []int
	delay  int
}

// NewDelayPipeline creates a pipeline with the given transit delay, pre-filled
// with zeros. Delay must be at least 1; a zero-length pipe would collapse the
// one-turn-lag visibility rule.
func NewDelayPipeline(delay int) (*DelayPipeline, error) {
	if delay < 1 {
		return nil, fmt.Errorf("pipeline delay must be >= 1, got %d", delay)
	}
	return &DelayPipeline{
		buffer: make([]int, delay),
		delay:  delay,
	}, nil
}

// PopArrival removes and returns the oldest entry. Returns 0 if the buffer is
// empty, which cannot happen under the one-pop-one-push-per-turn contract.
func (p *DelayPipeline) PopArrival() int {
	if len(p.buffer) == 0 {
		return 0
	}
	head := p.buffer[0]
	p.buffer = p.buffer[1:]
	return head
}

// PushDeparture appends a new entry at the tail. The entry becomes visible to
// PopArrival after `delay` turns.
func (p *DelayPipeline) PushDeparture(quantity int) {
	p.buffer = append(p.buffer, quantity)
}

// Len returns the number of entries currently in transit.
func (p *DelayPipeline) Len() int {
	return len(p.buffer)
}

// InTransit returns the sum of all entries currently in the pipe.
func (p *DelayPipeline) InTransit() int {
	total := 0
	for _, q := range p.buffer {
		total += q
	}
	return total
}

func (p *DelayPipeline) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, q := range p.buffer {
		sb.WriteString(fmt.Sprint(q))
		if i < len(p.buffer)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
