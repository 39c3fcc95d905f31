package ringchan

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a try-op could not proceed immediately.
//
// For TrySend: the channel is full (backpressure).
// For TryReceive: the channel is empty (no data available).
//
// ErrWouldBlock is a control flow signal, not a failure. TrySend/TryReceive
// signal it via a bool return rather than this error; it is exported so
// that callers building their own retry loops on top of the try-ops can
// report the same condition through an error-returning API. It is an alias
// for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrUnsupportedMode is returned by [NewChannel] for any mode other than
// [ModeSPSC] or [ModeMPSC]. SPMC and MPMC are declared in the [ChannelMode]
// enumeration for forward compatibility but are not implemented.
var ErrUnsupportedMode = errors.New("ringchan: unsupported channel mode")

// ErrInvalidSize is returned by [NewChannel] when size is not positive.
// A requested size of zero is rejected rather than silently rounded up to
// one, so that a caller's off-by-one bug surfaces as an error instead of a
// degenerate single-slot channel.
var ErrInvalidSize = errors.New("ringchan: size must be >= 1")

// IsWouldBlock reports whether err indicates an operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition, i.e.
// nil or [ErrWouldBlock]. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
