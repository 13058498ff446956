package tui

import (
	"strings"
	"testing"
	"time"

	"go-contact-form/internal/contactform"
	"go-contact-form/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validator = contactform.DefaultValidator()

func newModel() Model {
	return NewModel(contactform.NewForm(validator))
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	tab    = tea.KeyMsg{Type: tea.KeyTab}
	behind = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter  = tea.KeyMsg{Type: tea.KeyEnter}
	submit = tea.KeyMsg{Type: tea.KeyCtrlS}
	reset  = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func TestNewModel_StartsOnFirstName(t *testing.T) {
	m := newModel()

	assert.Equal(t, focusFirstName, m.focus)
	assert.True(t, m.inputs[focusFirstName].Focused())
	assert.NotNil(t, m.Init())

	out := m.View()
	assert.Contains(t, out, "Contact Form")
	for _, label := range []string{"First Name*", "Last Name*", "Email*", "Message", "Submit"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "You Submitted:")
}

func TestModel_TypingIsAChangeEvent(t *testing.T) {
	m := typeText(t, newModel(), "123")

	assert.Equal(t, "123", m.form.Values().FirstName)
	assert.Equal(t, domain.FieldInvalid, m.form.FieldStatus(domain.FieldFirstName))
	assert.Len(t, m.form.Errors(), 1)
	assert.Contains(t, m.View(), "firstName must be at least 5 characters in length")

	m = typeText(t, m, "45")
	assert.Empty(t, m.form.Errors())
	assert.NotContains(t, m.View(), "firstName must be")
}

func TestModel_FocusCycles(t *testing.T) {
	m := newModel()

	m = press(t, m, tab, tab, tab, tab)
	assert.Equal(t, focusButton, m.focus)

	m = press(t, m, tab)
	assert.Equal(t, focusFirstName, m.focus)

	m = press(t, m, behind)
	assert.Equal(t, focusButton, m.focus)
	assert.False(t, m.inputs[focusFirstName].Focused())
}

func TestModel_EnterAdvancesThenSubmits(t *testing.T) {
	m := newModel()

	m = press(t, m, enter, enter)
	assert.Equal(t, focusEmail, m.focus)
	assert.Equal(t, domain.SubmitIdle, m.form.Status())

	m = press(t, m, enter)
	m = typeText(t, m, "hi")

	// Enter in the message is a newline
	m = press(t, m, enter)
	assert.Equal(t, focusMessage, m.focus)
	assert.Equal(t, "hi\n", m.form.Values().Message)

	m = press(t, m, tab, enter)
	assert.Equal(t, domain.SubmitRejected, m.form.Status())
	assert.Len(t, m.form.Errors(), 3)
}

func TestModel_SubmitEmptyShowsThreeErrors(t *testing.T) {
	m := press(t, newModel(), submit)

	out := m.View()
	assert.Contains(t, out, "firstName is a required field")
	assert.Contains(t, out, "lastName is a required field")
	assert.Contains(t, out, "email is a required field")
	assert.NotContains(t, out, "You Submitted:")
}

func TestModel_SubmitShowsValues(t *testing.T) {
	m := newModel()
	m = typeText(t, m, "Alexander")
	m = press(t, m, tab)
	m = typeText(t, m, "Monteiro")
	m = press(t, m, tab)
	m = typeText(t, m, "monteiro@email.com")
	m = press(t, m, submit)

	require.Equal(t, domain.SubmitAccepted, m.form.Status())
	out := m.View()
	assert.Contains(t, out, "You Submitted:")
	assert.Contains(t, out, "First Name: Alexander")
	assert.Contains(t, out, "Last Name: Monteiro")
	assert.Contains(t, out, "Email: monteiro@email.com")
	assert.NotContains(t, out, "Message:")

	m = press(t, m, tab)
	m = typeText(t, m, "alexmonteiromessage")
	m = press(t, m, submit)
	assert.Contains(t, m.View(), "Message: alexmonteiromessage")
}

func TestModel_ResetClearsEverything(t *testing.T) {
	m := newModel()
	m = typeText(t, m, "abc")
	m = press(t, m, tab, tab)
	m = press(t, m, submit)
	require.NotEmpty(t, m.form.Errors())

	m = press(t, m, reset)

	assert.Equal(t, domain.FieldValues{}, m.form.Values())
	assert.Empty(t, m.form.Errors())
	assert.Equal(t, domain.SubmitIdle, m.form.Status())
	assert.Empty(t, m.inputs[focusFirstName].Value())
	assert.Equal(t, focusFirstName, m.focus)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			next, cmd := newModel().Update(msg)
			m := next.(Model)

			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowSizeBoundsMessageWidth(t *testing.T) {
	next, _ := newModel().Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	m := next.(Model)

	assert.Equal(t, 200, m.width)
	assert.Positive(t, m.message.Width())
	assert.LessOrEqual(t, m.message.Width(), maxMessageWidth)
}

func TestModel_Teatest_FillAndSubmit(t *testing.T) {
	tm := teatest.NewTestModel(t, newModel(), teatest.WithInitialTermSize(80, 40))

	tm.Type("Alexander")
	tm.Send(tab)
	tm.Type("Monteiro")
	tm.Send(tab)
	tm.Type("monteiro@email.com")
	tm.Send(tab)
	tm.Type("hello there")
	tm.Send(submit)
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	assert.Equal(t, domain.SubmitAccepted, final.form.Status())
	snapshot := final.form.Snapshot()
	require.NotNil(t, snapshot)
	assert.Equal(t, "Alexander", snapshot.FirstName)
	assert.Equal(t, "hello there", strings.TrimSpace(snapshot.Message))
}
