// Package mixer renders streamed music and sound effects into the output
// sample stream.
//
// Music is a single PCM stream pulled from an io.ReadSeeker. Sound effects
// play from in-memory sample buffers on a fixed number of channels; when all
// channels are busy a new sound steals the channel of the playing sound with
// the lowest priority, or is dropped if every playing sound outranks it.
//
// Both sources accumulate into a 32bit intermediate buffer. Reduction to the
// 16bit output range is the job of the mix sub-package.
package mixer
