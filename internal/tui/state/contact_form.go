package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/tui/render"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Subject", "Message"}

var fieldKeys = [fieldCount]string{contact.FieldName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage}

// contactForm is the contact page: three single-line inputs, a message
// area, the submission status and the sending spinner.
type contactForm struct {
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   int
	status  contact.Status
	errs    map[string]string
	spinner spinner.Model
	seq     int
}

func newContactForm() *contactForm {
	placeholders := [fieldMessage]string{"Your name", "your.email@example.com", "What is this about?"}
	f := &contactForm{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Prompt = ""
		f.inputs[i] = in
	}
	f.message = textarea.New()
	f.message.Placeholder = "Your message here..."
	f.message.ShowLineNumbers = false
	f.message.CharLimit = contact.MaxMessageLength
	f.message.SetHeight(5)
	f.setWidth(60)
	return f
}

func (f *contactForm) setWidth(w int) {
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	for i := range f.inputs {
		f.inputs[i].Width = w - 4
	}
	f.message.SetWidth(w - 4)
}

// focusCurrent focuses the active field and blurs the rest.
func (f *contactForm) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	if f.focus == fieldMessage {
		cmd = f.message.Focus()
	} else {
		f.message.Blur()
	}
	return cmd
}

func (f *contactForm) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
}

func (f *contactForm) move(delta int) tea.Cmd {
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.focusCurrent()
}

func (f *contactForm) values() contact.Form {
	return contact.Form{
		Name:    f.inputs[fieldName].Value(),
		Email:   f.inputs[fieldEmail].Value(),
		Subject: f.inputs[fieldSubject].Value(),
		Message: f.message.Value(),
	}
}

// clear empties every field and returns focus to the first one.
func (f *contactForm) clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.message.Reset()
	f.errs = nil
	f.focus = fieldName
}

// update forwards msg to the focused field.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldMessage {
		f.message, cmd = f.message.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *contactForm) view(theme render.Theme, width int) string {
	fields := make([]render.ContactField, fieldCount)
	for i := 0; i < fieldCount; i++ {
		view := ""
		if i == fieldMessage {
			view = f.message.View()
		} else {
			view = f.inputs[i].View()
		}
		fields[i] = render.ContactField{
			Label:   fieldLabels[i],
			View:    view,
			Focused: i == f.focus,
			Error:   f.errs[fieldKeys[i]],
		}
	}
	return render.Contact(theme, render.ContactState{
		Intro:   "Have a project in mind or just want to say hi? Leave a message below.",
		Fields:  fields,
		Status:  f.status,
		Spinner: f.spinner.View(),
		Width:   width,
	})
}
