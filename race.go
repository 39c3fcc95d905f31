//go:build race

package ringchan

// RaceEnabled is true when the race detector is active. Tests use it to
// skip concurrency stress cases that rely on cross-variable acquire/release
// ordering the race detector cannot model, to avoid false positives.
const RaceEnabled = true
