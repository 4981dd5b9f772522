package state

// SetCode replaces the editable buffer unconditionally and returns a new
// state copy. No validation, no trimming, no length limit.
func SetCode(s AppState, code string) AppState {
	s.Code = code
	return s
}

// BeginRun marks a new submission: snapshots the buffer, bumps the run
// counter, and flips the phase to Running. It does not guard against a
// run already being in flight; concurrent runs are independent.
func BeginRun(s AppState) AppState {
	s.Phase = Running
	s.LastRun = s.Code
	s.Seq++
	return s
}

// ApplyResult records a non-empty endpoint result in the Info slot and
// makes it visible. Last writer wins: an earlier result still on screen
// is overwritten.
func ApplyResult(s AppState, text string) AppState {
	s.Info = Banner{Text: text, Visible: true}
	s.Phase = Idle
	return s
}

// ApplyFailure records a failure description in the Error slot and makes
// it visible.
func ApplyFailure(s AppState, desc string) AppState {
	s.Error = Banner{Text: desc, Visible: true}
	s.Phase = Idle
	return s
}

// Dismiss hides both banners and wipes their stored text. A single firing
// clears both slots regardless of which banner armed the timer; the two
// slots share one dismissal action.
func Dismiss(s AppState) AppState {
	s.Info = Banner{}
	s.Error = Banner{}
	return s
}
