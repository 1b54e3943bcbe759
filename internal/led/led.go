// Package led drives the bi-color status LED through a small capability
// interface so the polling and decision logic stays testable without
// hardware attached.
package led

// Driver is the sink the monitor loop commands. The two physical lines
// back a single bi-color package, so implementations must never assert
// both at once: each call clears the other line before asserting its own.
type Driver interface {
	// Idle shows the steady "system quiet" color.
	Idle()
	// Activity shows the activity color at the configured brightness.
	Activity()
	// Off clears both lines.
	Off()
	// Close forces both lines off and releases the capability. It is
	// idempotent and safe to call from the shutdown path.
	Close()
}
