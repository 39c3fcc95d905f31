package ringchan

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// mpscSlot is a single ring buffer cell addressed by producer ticket.
type mpscSlot[T any] struct {
	seq   atomix.Uint64
	value T
	_     padShort
}

// mpscCore is the multi-producer/single-consumer bounded ring buffer.
//
// Producers reserve a monotonic ticket via CAS on head, then spin on the
// claimed slot's sequence until it reads as the ticket itself (the
// consumer has drained the slot's previous generation and republished its
// sequence as ticket), publish by storing ticket+1, and return. The single
// consumer never contends with producers for the consumer cursor, reads/
// writes tail without CAS, and republishes each slot's sequence as
// tail+capacity after extracting its value, handing the slot to whichever
// producer claims the next lap's ticket for that index.
type mpscCore[T any] struct {
	_        pad
	head     atomix.Uint64 // producer ticket counter, CAS-contended
	_        pad
	tail     atomix.Uint64 // consumer cursor, single writer
	_        pad
	slots    []mpscSlot[T]
	mask     uint64
	capacity uint64
}

func newMPSCCore[T any](capacity uint64) *mpscCore[T] {
	c := &mpscCore[T]{
		slots:    make([]mpscSlot[T], capacity),
		mask:     capacity - 1,
		capacity: capacity,
	}
	for i := range c.slots {
		c.slots[i].seq.StoreRelaxed(uint64(i))
	}
	return c
}

// trySend is the multi-producer-safe enqueue. Individual producers are
// bounded by the CAS retry loop: every failing CAS corresponds to another
// producer making progress, so every producer completes in a finite number
// of attempts.
func (c *mpscCore[T]) trySend(value T) bool {
	sw := spin.Wait{}
	for {
		head := c.head.LoadRelaxed()
		tail := c.tail.LoadAcquire()
		if head-tail >= c.capacity {
			return false
		}

		if !c.head.CompareAndSwapAcqRel(head, head+1) {
			continue
		}
		ticket := head

		slot := &c.slots[ticket&c.mask]
		for slot.seq.LoadAcquire() != ticket {
			// A slower producer still owns this slot from the previous
			// generation. Bounded by consumer progress; near-zero under
			// non-saturated load.
			sw.Once()
		}

		slot.value = value
		slot.seq.StoreRelease(ticket + 1)
		return true
	}
}

// tryReceive is the single-consumer non-blocking dequeue. tail is advanced
// with release and read with relaxed ordering, since only this goroutine
// ever writes it. After extracting the value, the slot's sequence is
// republished as tail+capacity, marking it owned by the next lap's
// producer ticket; without this, a producer claiming this slot index
// again would spin on a sequence value nothing ever writes.
func (c *mpscCore[T]) tryReceive() (T, bool) {
	tail := c.tail.LoadRelaxed()
	slot := &c.slots[tail&c.mask]
	seq := slot.seq.LoadAcquire()

	var zero T
	if seq != tail+1 {
		return zero, false
	}

	value := slot.value
	slot.value = zero
	slot.seq.StoreRelease(tail + c.capacity)
	c.tail.StoreRelease(tail + 1)
	return value, true
}

func (c *mpscCore[T]) isEmpty() bool {
	tail := c.tail.LoadRelaxed()
	slot := &c.slots[tail&c.mask]
	return slot.seq.LoadAcquire() != tail+1
}

func (c *mpscCore[T]) isFull() bool {
	return c.head.LoadRelaxed()-c.tail.LoadRelaxed() >= c.capacity
}

func (c *mpscCore[T]) cap() int {
	return int(c.capacity)
}
