// Package button implements a smart button whose presentation follows the
// lifecycle of an asynchronous host action.
//
// A click moves the button from default to pending. After an optional delay
// the host action is dispatched with a supply callback; the promise the host
// supplies decides between fulfilled and rejected. Labels, icons and classes
// are derived from the props and the current status on every read.
//
// A Button is not safe for concurrent use. Drive it from a single goroutine,
// the way a Bubble Tea Update loop does, and deliver promise settlements back
// to that goroutine (see Await and Press).
package button
