package ringchan

// core is the internal non-blocking interface both ring buffer protocols
// satisfy. Channel dispatches to one of them based on the mode it was
// constructed with.
type core[T any] interface {
	trySend(value T) bool
	tryReceive() (T, bool)
	isEmpty() bool
	isFull() bool
	cap() int
}

// Channel is a bounded, lock-free, in-process message channel generic over
// element type T.
//
// A Channel owns its slot array for its entire lifetime; capacity, mode,
// and the slot array itself are immutable once constructed. Only the
// atomic cursor and sequence values inside change.
type Channel[T any] struct {
	mode ChannelMode
	core core[T]
}

// NewChannel constructs a Channel with the given mode and a capacity that
// rounds up to the next power of two no smaller than size.
//
// NewChannel returns [ErrUnsupportedMode] for any mode other than
// [ModeSPSC] or [ModeMPSC], and [ErrInvalidSize] if size is not positive.
func NewChannel[T any](size int, mode ChannelMode) (*Channel[T], error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	capacity := nextPow2(size)

	switch mode {
	case ModeSPSC:
		return &Channel[T]{mode: mode, core: newSPSCCore[T](capacity)}, nil
	case ModeMPSC:
		return &Channel[T]{mode: mode, core: newMPSCCore[T](capacity)}, nil
	default:
		return nil, ErrUnsupportedMode
	}
}

// Mode reports the access pattern this Channel was constructed with.
func (c *Channel[T]) Mode() ChannelMode {
	return c.mode
}

// TrySend attempts to enqueue value without blocking.
//
// Returns true if value was published and is now owned by the Channel,
// false if the channel is full and value was left untouched.
//
// Thread safety: SPSC permits exactly one producer goroutine; MPSC permits
// any number of concurrent producer goroutines.
func (c *Channel[T]) TrySend(value T) bool {
	return c.core.trySend(value)
}

// TryReceive attempts to dequeue an element without blocking.
//
// Returns the element and true on success, transferring ownership to the
// caller. Returns the zero value and false if the channel is empty.
//
// Thread safety: exactly one consumer goroutine, for either mode.
func (c *Channel[T]) TryReceive() (T, bool) {
	return c.core.tryReceive()
}

// IsEmpty reports whether the channel currently holds no elements.
// The result may be stale by the time the caller observes it under
// concurrent access; it is a hint, not a synchronization point.
func (c *Channel[T]) IsEmpty() bool {
	return c.core.isEmpty()
}

// IsFull reports whether the channel is at capacity.
// The result may be stale by the time the caller observes it under
// concurrent access; it is a hint, not a synchronization point.
func (c *Channel[T]) IsFull() bool {
	return c.core.isFull()
}

// Capacity returns the channel's rounded capacity, a power of two.
func (c *Channel[T]) Capacity() int {
	return c.core.cap()
}
