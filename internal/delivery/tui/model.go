// Package tui hosts one contact form in the terminal.
package tui

import (
	"strings"

	"go-contact-form/internal/contactform"
	"go-contact-form/internal/domain"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus positions, in tab order.
const (
	focusFirstName = iota
	focusLastName
	focusEmail
	focusMessage
	focusButton

	focusCount
)

const maxMessageWidth = 60

// Model is the Bubble Tea model of the contact form.
type Model struct {
	form domain.ContactForm

	inputs  [focusMessage]textinput.Model // firstName, lastName, email
	message textarea.Model

	focus    int
	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel wraps form. The fields start with whatever the form holds.
func NewModel(form domain.ContactForm) Model {
	m := Model{
		form: form,
		keys: defaultKeyMap(),
		help: help.New(),
	}

	values := form.Values()
	fields := domain.Fields()
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = contactform.Label(fields[i])
		ti.SetValue(values.Get(fields[i]))
		m.inputs[i] = ti
	}

	m.message = textarea.New()
	m.message.ShowLineNumbers = false
	m.message.SetHeight(3)
	m.message.SetValue(values.Message)

	m.inputs[focusFirstName].Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 4; w > 0 {
			m.message.SetWidth(min(w, maxMessageWidth))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.form.Submit()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			return m.reset()
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Enter):
			// The message takes enter as a newline
			switch {
			case m.focus == focusButton:
				m.form.Submit()
				return m, nil
			case m.focus < focusMessage:
				return m.setFocus(m.focus + 1)
			}
		}
	}

	return m.updateFocused(msg)
}

// updateFocused hands msg to the focused field and fires a change event
// when its text changed.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == focusButton {
		return m, nil
	}

	field := domain.Fields()[m.focus]
	var (
		cmd   tea.Cmd
		value string
	)
	if m.focus == focusMessage {
		m.message, cmd = m.message.Update(msg)
		value = m.message.Value()
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		value = m.inputs[m.focus].Value()
	}

	if value != m.form.Values().Get(field) {
		m.form.SetFieldValue(field, value)
	}
	return m, cmd
}

func (m Model) setFocus(focus int) (tea.Model, tea.Cmd) {
	m.focus = (focus%focusCount + focusCount) % focusCount

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()

	switch {
	case m.focus < focusMessage:
		return m, m.inputs[m.focus].Focus()
	case m.focus == focusMessage:
		return m, m.message.Focus()
	}
	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	return m.setFocus(focusFirstName)
}

// View renders the form, its errors and the submitted values.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := contactform.Render(m.form)
	errs := make(map[domain.Field]string, len(view.Errors))
	for _, e := range view.Errors {
		errs[e.Field] = e.Message
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(view.Header))
	b.WriteString("\n\n")

	for i, input := range view.Inputs {
		b.WriteString(labelStyle.Render(input.Label))
		b.WriteString("\n")
		if i == focusMessage {
			b.WriteString(m.message.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
		if msg, ok := errs[input.Name]; ok {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := buttonStyle
	if m.focus == focusButton {
		button = focusedButtonStyle
	}
	b.WriteString(button.Render(view.Submit.Label))
	b.WriteString("\n")

	if d := view.Display; d != nil {
		lines := []string{
			labelStyle.Render("You Submitted:"),
			"First Name: " + d.FirstName,
			"Last Name: " + d.LastName,
			"Email: " + d.Email,
		}
		if d.ShowMessage {
			lines = append(lines, "Message: "+d.Message)
		}
		b.WriteString(displayStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}
