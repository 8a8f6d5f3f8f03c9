// Package host mounts an infinite.List into a scroll viewport.
//
// A Host plays the part of the UI toolkit around the list: each Pump
// renders a frame, instantiates the entries the container asks for,
// registers an appearance subscription per instantiated item, and delivers
// appearance events as items scroll on screen. Refreshable containers get
// bouncing physics and a pull-to-refresh recognizer wired to the list's
// refresh adapter.
//
// Hosts are not safe for concurrent use. Work finishing on another
// goroutine must come back through Dispatch, which runs queued callbacks
// at the start of the next Pump.
package host
