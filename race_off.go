//go:build !race

package ringchan

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
