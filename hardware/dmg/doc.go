// Package dmg synthesises tracker style music in the manner of the original
// Game Boy sound hardware: two square wave channels, one wave channel and
// one noise channel, driven by a sequence of patterns rather than a stream
// of samples.
//
// Playback position is expressed as a pattern number and a row within that
// pattern. The sequencer advances one row every few frames, as dictated by
// the module's speed value, and briefly has no meaningful position while it
// crosses from one pattern to the next. The Position() function reports a
// negative pattern number in that situation.
package dmg
