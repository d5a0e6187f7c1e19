package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(22)

	outputStyle = slotStyle.
			BorderForeground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const maxLogLines = 500

// ActionKind is what the player did in the anvil view.
type ActionKind int

const (
	// ActionRename carries the rename box contents in Text.
	ActionRename ActionKind = iota
	// ActionClick clicks the slot in Slot.
	ActionClick
	// ActionClose closes the window from the client side.
	ActionClose
	// ActionReopen asks the demo to open a fresh dialog.
	ActionReopen
	// ActionQuit disconnects the player.
	ActionQuit
)

// Action is posted to the main loop, which owns all server state.
type Action struct {
	Kind ActionKind
	Slot int
	Text string
}

// State is a snapshot of the player's view, sent to the TUI after every
// action the main loop applies.
type State struct {
	Player string
	Title  string
	Open   bool
	Slots  [3]string // left input, right input, output; "" = empty
}

// StateMsg carries a new State into the program.
type StateMsg State

// LogMsg is a message type for logging
type LogMsg string

// TUI renders one player's anvil window and turns keys into Actions.
type TUI struct {
	actions   chan<- Action
	state     State
	viewport  viewport.Model
	textInput textinput.Model
	lastSent  string
	logs      []string
	logMutex  sync.Mutex
	ready     bool
	width     int
	height    int
}

// New creates a TUI posting actions on actions.
func New(actions chan<- Action) *TUI {
	ti := textinput.New()
	ti.Placeholder = "No window open"
	ti.Blur()
	ti.CharLimit = 50 // vanilla rename limit
	ti.Width = 50

	return &TUI{
		actions:   actions,
		textInput: ti,
		logs:      []string{},
	}
}

// Init initializes the TUI
func (t *TUI) Init() tea.Cmd {
	return textinput.Blink
}

func (t *TUI) post(a Action) tea.Cmd {
	return func() tea.Msg {
		t.actions <- a
		return nil
	}
}

// Update handles TUI updates
func (t *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return t, tea.Sequence(t.post(Action{Kind: ActionQuit}), tea.Quit)

		case tea.KeyEsc:
			if !t.state.Open {
				return t, nil
			}
			return t, t.post(Action{Kind: ActionClose})

		case tea.KeyEnter:
			if !t.state.Open {
				return t, nil
			}
			return t, t.post(Action{Kind: ActionClick, Slot: 2})

		case tea.KeyCtrlL:
			if !t.state.Open {
				return t, nil
			}
			return t, t.post(Action{Kind: ActionClick, Slot: 0})

		case tea.KeyCtrlO:
			if t.state.Open {
				return t, nil
			}
			return t, t.post(Action{Kind: ActionReopen})
		}

	case tea.WindowSizeMsg:
		logHeight := msg.Height - 9
		if !t.ready {
			t.viewport = viewport.New(msg.Width, logHeight)
			t.viewport.SetContent(t.renderLogs())
			t.ready = true
		} else {
			t.viewport.Width = msg.Width
			t.viewport.Height = logHeight
		}
		t.width = msg.Width
		t.height = msg.Height
		t.textInput.Width = msg.Width - 2

	case LogMsg:
		t.AddLog(string(msg))
		if t.ready {
			// do not scroll if not at bottom, to prevent flickering
			wasAtBottom := t.viewport.AtBottom()
			t.viewport.SetContent(t.renderLogs())
			if wasAtBottom {
				t.viewport.GotoBottom()
			}
		}
		return t, nil

	case StateMsg:
		return t, t.applyState(State(msg))
	}

	// update viewport
	if t.ready {
		t.viewport, cmd = t.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	// update text input (only while a window is open)
	if t.state.Open {
		t.textInput, cmd = t.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if v := t.textInput.Value(); v != t.lastSent {
			t.lastSent = v
			cmds = append(cmds, t.post(Action{Kind: ActionRename, Text: v}))
		}
	}

	return t, tea.Batch(cmds...)
}

// applyState takes over a new snapshot. Like the vanilla client, a changed
// left input resets the rename box to the item's name and reports it back.
func (t *TUI) applyState(s State) tea.Cmd {
	prev := t.state
	t.state = s

	if !s.Open {
		t.textInput.Blur()
		t.textInput.SetValue("")
		t.textInput.Placeholder = "No window open"
		t.lastSent = ""
		return nil
	}

	t.textInput.Placeholder = ""
	t.textInput.Focus()
	if prev.Open && prev.Slots[0] == s.Slots[0] {
		return nil
	}
	t.textInput.SetValue(s.Slots[0])
	t.textInput.CursorEnd()
	t.lastSent = s.Slots[0]
	return t.post(Action{Kind: ActionRename, Text: s.Slots[0]})
}

// View renders the TUI
func (t *TUI) View() string {
	if !t.ready {
		return "Initializing..."
	}

	var header, help string
	if t.state.Open {
		header = titleStyle.Render(fmt.Sprintf("%s - %s", t.state.Title, t.state.Player))
		help = "type to rename • Enter: take output • Ctrl+L: click left • Esc: close • Ctrl+C: quit"
	} else {
		header = titleStyle.Render(fmt.Sprintf("No window - %s", t.state.Player))
		help = "Ctrl+O: reopen • Ctrl+C: quit"
	}

	slots := lipgloss.JoinHorizontal(lipgloss.Top,
		slotStyle.Render(slotLabel(t.state.Slots[0])),
		slotStyle.Render(slotLabel(t.state.Slots[1])),
		" → ",
		outputStyle.Render(slotLabel(t.state.Slots[2])),
	)

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n%s",
		header,
		slots,
		inputStyle.Render("> "+t.textInput.View()),
		t.viewport.View(),
		helpStyle.Render(help),
	)
}

func slotLabel(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

// AddLog adds a log message to the TUI
func (t *TUI) AddLog(msg string) {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	t.logs = append(t.logs, msg)

	// trim logs
	if len(t.logs) > maxLogLines {
		t.logs = t.logs[len(t.logs)-maxLogLines:]
	}
}

func (t *TUI) renderLogs() string {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	return strings.Join(t.logs, "\n")
}

// Writer is an io.Writer that sends output to the TUI
type Writer struct {
	program *tea.Program
}

// NewWriter creates a new TUI Writer
func NewWriter(program *tea.Program) *Writer {
	return &Writer{program: program}
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg != "" {
		w.program.Send(LogMsg(msg))
	}
	return len(p), nil
}

// Start creates a new TUI program posting to actions, returning the program
// and a writer for logging
func Start(actions chan<- Action) (*tea.Program, io.Writer) {
	t := New(actions)
	p := tea.NewProgram(t, tea.WithAltScreen())
	writer := NewWriter(p)
	return p, writer
}

// SendState pushes a new snapshot to the given program
func SendState(program *tea.Program, s State) {
	if program != nil {
		program.Send(StateMsg(s))
	}
}
