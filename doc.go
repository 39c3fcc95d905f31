// Package ringchan provides bounded, lock-free, in-process message channels.
//
// Two ring buffer variants are exposed through a single generic type,
// [Channel]:
//
//   - SPSC: one producer goroutine, one consumer goroutine. Wait-free on
//     both sides.
//   - MPSC: any number of producer goroutines, one consumer goroutine.
//     Wait-free dequeue, bounded-spin enqueue under contention.
//
// SPMC and MPMC are not implemented. [NewChannel] rejects any mode other
// than [ModeSPSC] and [ModeMPSC].
//
// # Quick start
//
//	ch, err := ringchan.NewChannel[int](1024, ringchan.ModeMPSC)
//	if err != nil {
//	    // unsupported mode or invalid size
//	}
//
//	if ok := ch.TrySend(42); !ok {
//	    // channel full, try again later
//	}
//
//	v, ok := ch.TryReceive()
//	if !ok {
//	    // channel empty
//	}
//
// # Async wrappers
//
// [Channel.Send] and [Channel.Recv] poll the non-blocking operations with
// exponential backoff (1ms doubling to a 100ms cap) and honor context
// cancellation:
//
//	if err := ch.Send(ctx, value); err != nil {
//	    // ctx was cancelled before the channel had room
//	}
//
//	v, err := ch.Recv(ctx)
//	if err != nil {
//	    // ctx was cancelled before an element arrived
//	}
//
// # Capacity
//
// Capacity always rounds up to the next power of two; [Channel.Capacity]
// reports the rounded value, which equals the size passed to [NewChannel]
// only when that size is already a power of two.
//
// # Ownership
//
// A sent value is owned by the channel from the moment TrySend/Send returns
// successfully until the moment TryReceive/Recv returns it. There is no
// close, drain, peek, or iteration operation — shutdown is the caller's
// responsibility, typically via a sentinel value or an out-of-band signal.
//
// # Thread safety
//
// SPSC permits exactly one producer goroutine and one consumer goroutine.
// MPSC permits any number of producer goroutines and exactly one consumer
// goroutine. Violating these constraints is undefined behavior with respect
// to ordering but never corrupts the underlying array.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for bounded spin-waits in the
// MPSC producer path.
package ringchan
