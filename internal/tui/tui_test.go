package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coderun/internal/tui/state"
)

// fakeRunner stands in for the execution endpoint.
type fakeRunner struct {
	out   string
	err   error
	calls int
	last  string
}

func (f *fakeRunner) Run(_ context.Context, code string) (string, error) {
	f.calls++
	f.last = code
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func (f *fakeRunner) URL() string { return "http://test/api/code" }

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	out, ok := nm.(model)
	require.True(t, ok)
	return out, cmd
}

func TestInitialState(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	assert.Equal(t, state.PlaceholderCode, m.app.Code)
	assert.Equal(t, state.Idle, m.app.Phase)
	assert.False(t, m.app.Info.Visible)
	assert.False(t, m.app.Error.Visible)
}

func TestRunKeySubmitsBuffer(t *testing.T) {
	r := &fakeRunner{out: "5"}
	m := newModel(r, testLogger())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	assert.Equal(t, state.Running, m.app.Phase)
	assert.Equal(t, m.app.Code, m.app.LastRun)

	msg := cmd()
	res, ok := msg.(runResultMsg)
	require.True(t, ok)
	assert.Equal(t, "5", res.output)
	assert.Equal(t, state.PlaceholderCode, r.last)
}

func TestRunKeyHasNoInFlightGuard(t *testing.T) {
	r := &fakeRunner{out: "5"}
	m := newModel(r, testLogger())

	m, cmd1 := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, cmd2 := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd1)
	require.NotNil(t, cmd2)
	assert.Equal(t, 2, m.app.Seq)
}

func TestResultShowsInfoBannerAndArmsDismiss(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())

	m, cmd := update(t, m, runResultMsg{output: "10", seq: 1})
	assert.True(t, m.app.Info.Visible)
	assert.Equal(t, "10", m.app.Info.Text)
	assert.False(t, m.app.Error.Visible)
	require.NotNil(t, cmd, "dismiss timer must be armed")
}

func TestFailureShowsErrorBanner(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())

	m, cmd := update(t, m, runFailedMsg{err: errors.New("connection refused"), seq: 1})
	assert.True(t, m.app.Error.Visible)
	assert.Equal(t, "connection refused", m.app.Error.Text)
	assert.False(t, m.app.Info.Visible)
	require.NotNil(t, cmd)
}

func TestFailedRunNeverLeavesBothBannersHidden(t *testing.T) {
	r := &fakeRunner{err: errors.New("dial tcp: connect: connection refused")}
	m := newModel(r, testLogger())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.True(t, m.app.Info.Visible || m.app.Error.Visible)
	assert.NotEmpty(t, m.app.Error.Text)
}

func TestDismissDelay(t *testing.T) {
	assert.Equal(t, 3*time.Second, dismissAfter)
}

func TestDismissClearsBothBanners(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	m, _ = update(t, m, runResultMsg{output: "5", seq: 1})
	m, _ = update(t, m, runFailedMsg{err: errors.New("boom"), seq: 2})

	m, _ = update(t, m, dismissMsg{})
	assert.False(t, m.app.Info.Visible)
	assert.False(t, m.app.Error.Visible)
	assert.Empty(t, m.app.Info.Text)
	assert.Empty(t, m.app.Error.Text)
}

func TestLastArrivalWinsAcrossInterleavedRuns(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	// The second run's response arrives first; the first run's arrives last.
	m, _ = update(t, m, runResultMsg{output: "10", seq: 2})
	m, _ = update(t, m, runResultMsg{output: "5", seq: 1})
	assert.Equal(t, "5", m.app.Info.Text)
}

func TestTypingMirrorsIntoState(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, strings.HasSuffix(m.app.Code, "x"))
}

func TestEscQuits(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewProjectsBanners(t *testing.T) {
	m := newModel(&fakeRunner{}, testLogger())
	assert.NotContains(t, m.View(), "✗")

	m, _ = update(t, m, runResultMsg{output: "unique-result-42", seq: 1})
	assert.Contains(t, m.View(), "unique-result-42")

	m, _ = update(t, m, dismissMsg{})
	assert.NotContains(t, m.View(), "unique-result-42")
}
