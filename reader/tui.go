package reader

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// TUI reads a line through a bubbletea program with an editable text input.
type TUI struct {
	// Extra program options, mostly for tests (e.g. tea.WithoutRenderer)
	options []tea.ProgramOption
}

// NewTUI creates a TUI reader.
func NewTUI(opts ...tea.ProgramOption) *TUI {
	return &TUI{options: opts}
}

// ReadLine runs a one-line input program and returns the submitted value.
func (t *TUI) ReadLine(ctx context.Context, req Request) (string, error) {
	ctx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(req.input()),
		tea.WithOutput(req.output()),
	}
	opts = append(opts, t.options...)

	final, err := tea.NewProgram(newLineModel(req.Prompt, req.Silent), opts...).Run()
	if ctx.Err() != nil {
		return "", doneErr(ctx)
	}
	if err != nil {
		return "", errors.Wrap(err, "line input failed")
	}

	m, ok := final.(lineModel)
	if !ok {
		return "", errors.Newf("unexpected model type %T", final)
	}
	if m.canceled {
		return "", ErrCanceled
	}
	return m.value, nil
}

// lineModel is the bubbletea model for a single line of input
type lineModel struct {
	input    textinput.Model
	silent   bool
	value    string
	done     bool
	canceled bool
}

func newLineModel(prompt string, silent bool) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	if silent {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()

	return lineModel{
		input:  ti,
		silent: silent,
	}
}

// Init starts the cursor blinking
func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit and cancel keys and forwards the rest to the input
func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input; once finished it leaves the answered prompt behind
func (m lineModel) View() string {
	switch {
	case m.canceled:
		return m.input.Prompt + "\n"
	case m.done:
		if m.silent {
			return m.input.Prompt + strings.Repeat("•", len([]rune(m.value))) + "\n"
		}
		return m.input.Prompt + m.value + "\n"
	default:
		return m.input.View()
	}
}
