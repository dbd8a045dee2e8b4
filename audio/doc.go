// Package audio implements the deferred command audio manager at the centre
// of the engine's sound support.
//
// Public operations on the Manager type do not touch the hardware driver
// directly. Instead, each operation validates its preconditions, updates the
// manager's local belief about what the hardware is doing (the shadow state)
// and appends a command to a bounded queue. The queue is drained in FIFO
// order once per frame by the Update() function, after which the positional
// parts of the shadow state are refreshed from the values reported by the
// hardware.
//
// Everything in the package runs on a single goroutine: the one that calls
// the public operations and the Update()/Commit() pair. The Manager performs
// no locking of its own.
//
// Precondition violations are programming errors, not runtime errors, and
// are treated as fatal: the offending operation panics with a description of
// the violated condition. The same is true of exceeding the capacity of the
// command queue. Silently dropping an audio command would leave the shadow
// state and the hardware state permanently out of agreement, which is far
// worse than a loud failure.
package audio
