// Package engine implements the falling-block simulation behind the tetris
// game: the locked-cell grid, piece templates and rotation with wall kicks,
// collision and merging, row sweeping, scoring and leveling, gravity timing
// and delayed-auto-shift input repeat.
//
// The engine has no clock and no I/O. A host drives a Session by applying
// commands between ticks and calling Tick with a monotonically increasing
// millisecond timestamp. Given the same random source, command sequence and
// timestamps, a Session always produces the same snapshots.
package engine
