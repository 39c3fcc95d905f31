package ringchan

import "code.hybscloud.com/atomix"

// spscSlot is a single ring buffer cell with its Lamport/Vyukov sequence
// counter. Slot i starts at sequence i; publishing ticket N stores N+1, which
// the consumer for ticket N checks before reading the value. The consumer
// does not reset the sequence, so an empty slot after the first lap still
// holds its previous ticket+1; head/tail, not the sequence, say it is empty.
type spscSlot[T any] struct {
	seq   atomix.Uint64
	value T
	_     padShort
}

// spscCore is the single-producer/single-consumer bounded ring buffer.
//
// The producer's release-store of a slot's sequence is the publication
// fence for its value; the consumer's acquire-load of that sequence
// establishes happens-before on the payload. head/tail are redundant with
// the sequence protocol for correctness but give cheap emptiness/fullness
// checks without touching the slot array.
type spscCore[T any] struct {
	_        pad
	head     atomix.Uint64 // producer cursor, exclusive writer
	_        pad
	tail     atomix.Uint64 // consumer cursor, exclusive writer
	_        pad
	slots    []spscSlot[T]
	mask     uint64
	capacity uint64
}

func newSPSCCore[T any](capacity uint64) *spscCore[T] {
	c := &spscCore[T]{
		slots:    make([]spscSlot[T], capacity),
		mask:     capacity - 1,
		capacity: capacity,
	}
	for i := range c.slots {
		c.slots[i].seq.StoreRelaxed(uint64(i))
	}
	return c
}

// trySend is the producer-only non-blocking enqueue.
func (c *spscCore[T]) trySend(value T) bool {
	head := c.head.LoadRelaxed()
	tail := c.tail.LoadAcquire()
	if head-tail >= c.capacity {
		return false
	}

	idx := head & c.mask
	c.slots[idx].value = value
	c.slots[idx].seq.StoreRelease(head + 1)
	c.head.StoreRelease(head + 1)
	return true
}

// tryReceive is the consumer-only non-blocking dequeue.
func (c *spscCore[T]) tryReceive() (T, bool) {
	tail := c.tail.LoadRelaxed()
	head := c.head.LoadAcquire()
	var zero T
	if tail >= head {
		return zero, false
	}

	idx := tail & c.mask
	seq := c.slots[idx].seq.LoadAcquire()
	if seq != tail+1 {
		// Producer has advanced head but not yet published this slot's
		// sequence; treat as not-ready rather than spinning, since the
		// consumer side is non-blocking by contract.
		return zero, false
	}

	value := c.slots[idx].value
	c.slots[idx].value = zero
	c.tail.StoreRelease(tail + 1)
	return value, true
}

func (c *spscCore[T]) isEmpty() bool {
	return c.tail.LoadRelaxed() >= c.head.LoadRelaxed()
}

func (c *spscCore[T]) isFull() bool {
	return c.head.LoadRelaxed()-c.tail.LoadRelaxed() >= c.capacity
}

func (c *spscCore[T]) cap() int {
	return int(c.capacity)
}
