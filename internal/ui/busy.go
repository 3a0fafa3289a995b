package ui

// acquireBusy switches a control to its busy state and returns the function restoring it.
// Callers defer the release so every exit path returns the control to idle.
func acquireBusy(d Display, id WidgetID, idleLabel string) (release func()) {
	d.Apply(Busy(id))
	return func() {
		d.Apply(Idle(id, idleLabel))
	}
}
