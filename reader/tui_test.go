package reader

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// send feeds msg to the model and returns the updated lineModel
func send(t *testing.T, m lineModel, msg tea.Msg) (lineModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(lineModel)
	require.True(t, ok)
	return lm, cmd
}

func typeText(t *testing.T, m lineModel, text string) lineModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestLineModel_Submit(t *testing.T) {
	m := newLineModel("Name: ", false)
	m = typeText(t, m, "Ada")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.False(t, m.canceled)
	assert.Equal(t, "Ada", m.value)
	assert.Equal(t, "Name: Ada\n", m.View())
}

func TestLineModel_SubmitEmpty(t *testing.T) {
	m := newLineModel("Name: ", false)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Equal(t, "", m.value)
}

func TestLineModel_Cancel(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyType
	}{
		{"ctrl+c", tea.KeyCtrlC},
		{"esc", tea.KeyEsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typeText(t, newLineModel("Name: ", false), "partial")
			m, cmd := send(t, m, tea.KeyMsg{Type: tt.key})
			require.NotNil(t, cmd)
			assert.True(t, m.canceled)
			assert.False(t, m.done)
			assert.Equal(t, "Name: \n", m.View())
		})
	}
}

func TestLineModel_SilentHidesValue(t *testing.T) {
	m := newLineModel("Password: ", true)
	m = typeText(t, m, "hunter2")

	assert.NotContains(t, m.View(), "hunter2")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "hunter2", m.value)
	assert.Equal(t, "Password: •••••••\n", m.View())
}

func TestLineModel_Backspace(t *testing.T) {
	m := typeText(t, newLineModel("> ", false), "abcd")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "abc", m.value)
}
