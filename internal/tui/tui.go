// Package tui implements the code runner component: an editable code
// buffer, a submission controller for the execution endpoint, and two
// transient notification banners with a shared auto-dismiss timer.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coderun/internal/tui/state"
	"coderun/internal/tui/widgets/banner"
	"coderun/internal/tui/widgets/examples"
	"coderun/internal/tui/widgets/statusbar"
)

// Banners auto-hide this long after they appear. One shared timer action
// clears both slots, matching the component this replaces.
const dismissAfter = 3 * time.Second

// Runner is the execution endpoint boundary.
type Runner interface {
	Run(ctx context.Context, code string) (string, error)
	URL() string
}

// Run shows the code runner and blocks until the user quits.
func Run(runner Runner, logger *slog.Logger) error {
	p := tea.NewProgram(newModel(runner, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ===== Messages =====

// runResultMsg is sent when the endpoint returns a non-empty result.
type runResultMsg struct {
	output string
	seq    int
}

// runFailedMsg is sent on transport failure, non-2xx status, or an empty
// success body.
type runFailedMsg struct {
	err error
	seq int
}

// dismissMsg hides both banners.
type dismissMsg struct{}

// ===== Model =====

type model struct {
	app    state.AppState
	runner Runner
	logger *slog.Logger

	input  textarea.Model
	spin   spinner.Model
	ban    banner.Banner
	status statusbar.StatusBar
	help   examples.Panel

	showDiff bool
	notice   string
	width    int
	height   int
	quitting bool
}

func newModel(runner Runner, logger *slog.Logger) model {
	ta := textarea.New()
	ta.Placeholder = state.PlaceholderCode
	ta.SetValue(state.PlaceholderCode)
	ta.CharLimit = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		app:    state.NewAppState(),
		runner: runner,
		logger: logger,
		input:  ta,
		spin:   sp,
		ban:    banner.NewBanner(),
		status: statusbar.NewStatusBar(),
		help:   examples.NewPanel(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick)
}

// Update handles user input, run completions, and the dismiss timer.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			// Issue a run unconditionally. A run already in flight is not
			// suppressed; completions are applied in arrival order.
			m.app = state.SetCode(m.app, m.input.Value())
			m.app = state.BeginRun(m.app)
			m.notice = ""
			m.logger.Info("run issued", slog.Int("seq", m.app.Seq), slog.Int("code_bytes", len(m.app.Code)))
			return m, m.runCmd(m.app.Code, m.app.Seq)

		case "ctrl+d":
			m.showDiff = !m.showDiff
			return m, nil

		case "ctrl+y":
			if m.app.Info.Text == "" {
				m.notice = "Nothing to copy"
				return m, nil
			}
			if err := clipboard.WriteAll(m.app.Info.Text); err != nil {
				m.notice = "Copy failed: " + err.Error()
			} else {
				m.notice = "Result copied"
			}
			return m, nil
		}

		// Everything else edits the buffer; mirror the textarea into state.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.app = state.SetCode(m.app, m.input.Value())
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case runResultMsg:
		m.app = state.ApplyResult(m.app, msg.output)
		return m, dismissCmd()

	case runFailedMsg:
		m.app = state.ApplyFailure(m.app, msg.err.Error())
		return m, dismissCmd()

	case dismissMsg:
		m.app = state.Dismiss(m.app)
		return m, nil
	}

	return m, nil
}

// runCmd performs one request. Capturing runner and logger keeps the
// closure safe after the model value is superseded.
func (m model) runCmd(code string, seq int) tea.Cmd {
	runner := m.runner
	logger := m.logger
	return func() tea.Msg {
		out, err := runner.Run(context.Background(), code)
		if err != nil {
			logger.Warn("run failed", slog.Int("seq", seq), slog.String("error", err.Error()))
			return runFailedMsg{err: err, seq: seq}
		}
		logger.Info("run completed", slog.Int("seq", seq), slog.Int("result_bytes", len(out)))
		return runResultMsg{output: out, seq: seq}
	}
}

func dismissCmd() tea.Cmd {
	return tea.Tick(dismissAfter, func(time.Time) tea.Msg { return dismissMsg{} })
}

func (m *model) layout() {
	w := m.width
	if w <= 0 {
		w = 100
	}
	// Editor takes the left ~60%, examples the rest.
	ew := w * 6 / 10
	if ew < 40 {
		ew = 40
	}
	m.input.SetWidth(ew)
	eh := m.height - 10
	if eh < 5 {
		eh = 5
	}
	m.input.SetHeight(eh)
}

// ===== View =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// View is a pure projection of the current state; recomputed every update.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Monkey Language") + "\n\n")

	left := m.input.View()
	right := panelStyle.Render(m.help.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("ctrl+r: run   ctrl+d: diff since last run   ctrl+y: copy result   ctrl+c: quit"))
	b.WriteString("\n")

	if m.showDiff {
		b.WriteString("\n" + panelStyle.Render(renderUnifiedDiff(m.app.LastRun, m.app.Code)) + "\n")
	}

	if info := m.ban.View(banner.Info, m.app.Info.Text, m.app.Info.Visible); info != "" {
		b.WriteString("\n" + info + "\n")
	}
	if errv := m.ban.View(banner.Error, m.app.Error.Text, m.app.Error.Visible); errv != "" {
		b.WriteString("\n" + errv + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(m.status.View(m.app, m.runner.URL(), m.spin.View(), m.notice)) + "\n")
	return b.String()
}
