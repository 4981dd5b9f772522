package state

// Phase represents the submission controller's visible busy state.
// It is informational only: a new run may be issued while a previous
// one is still in flight.
type Phase int

const (
	Idle Phase = iota
	Running
)

// Banner is one transient notification slot. Text is retained only while
// the banner is visible; dismissal wipes both slots together.
type Banner struct {
	Text    string
	Visible bool
}

// AppState is the single state record owned by the code runner component.
type AppState struct {
	// Code is the editable buffer. Always defined; only SetCode mutates it.
	Code string

	Phase Phase

	// Notification slots. One Info and one Error; both may be visible at once.
	Info  Banner
	Error Banner

	// LastRun is the buffer snapshot taken when the latest run was issued.
	// Session-scoped; feeds the changed-since-last-run diff panel.
	LastRun string

	// Seq counts issued runs. Used to label requests in debug logs.
	Seq int
}

// PlaceholderCode is the sample the buffer starts out with, also shown as
// the textarea placeholder when the buffer is empty.
const PlaceholderCode = `let identity = fn(x) { x; }; identity(5);`

// NewAppState returns the initial component state: placeholder code,
// nothing in flight, both banners hidden.
func NewAppState() AppState {
	return AppState{Code: PlaceholderCode}
}
