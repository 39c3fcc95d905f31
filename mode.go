package ringchan

// ChannelMode selects the producer/consumer access pattern a [Channel]
// enforces.
//
// Only [ModeSPSC] and [ModeMPSC] are implemented. The remaining values are
// declared so that an SPMC or MPMC variant can be added later without
// renumbering the enumeration; [NewChannel] rejects them today with
// [ErrUnsupportedMode].
type ChannelMode uint8

const (
	// ModeSPSC selects the single-producer/single-consumer ring buffer.
	ModeSPSC ChannelMode = iota
	// ModeMPSC selects the multi-producer/single-consumer ring buffer.
	ModeMPSC
	// modeSPMC is reserved; not implemented.
	modeSPMC
	// modeMPMC is reserved; not implemented.
	modeMPMC
)

func (m ChannelMode) String() string {
	switch m {
	case ModeSPSC:
		return "SPSC"
	case ModeMPSC:
		return "MPSC"
	case modeSPMC:
		return "SPMC"
	case modeMPMC:
		return "MPMC"
	default:
		return "unknown"
	}
}
