package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
)

type submitDoneMsg struct {
	outcome models.Outcome
}

type field struct {
	label string
	set   func(string)
	input textinput.Model
}

// form renders one screens.Screen as a column of text inputs. Enter moves
// focus down the column and submits from the last field.
type form struct {
	screen *screens.Screen
	fields []field
	focus  int
}

func newForm(s *screens.Screen) *form {
	f := &form{screen: s}

	f.add("Email", s.SetEmail, false)
	if s.Form() == models.SignUp {
		f.add("Name", s.SetName, false)
	}
	f.add("Password", s.SetPassword, true)

	f.fields[0].input.Focus()
	return f
}

func (f *form) add(label string, set func(string), secret bool) {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = strings.ToLower(label)
	in.CharLimit = 256
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	f.fields = append(f.fields, field{label: label, set: set, input: in})
}

func (f *form) title() string {
	if f.screen.Form() == models.SignUp {
		return "Create account"
	}
	return "Sign in"
}

func (f *form) move(dir int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + dir + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) submit(ctx context.Context) tea.Cmd {
	s := f.screen
	return func() tea.Msg {
		return submitDoneMsg{outcome: s.Submit(ctx)}
	}
}

func (f *form) update(ctx context.Context, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.move(1)
		return nil
	case "shift+tab", "up":
		f.move(-1)
		return nil
	case "enter":
		if f.focus < len(f.fields)-1 {
			f.move(1)
			return nil
		}
		return f.submit(ctx)
	case "ctrl+n":
		if f.screen.Form() == models.SignIn {
			s := f.screen
			// Navigate delivers a program message and must run outside Update.
			return func() tea.Msg {
				s.ToSignUp()
				return nil
			}
		}
		return nil
	}

	cur := &f.fields[f.focus]
	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	cur.set(cur.input.Value())
	return cmd
}

func (f *form) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title()))
	b.WriteString("\n\n")

	for i, fl := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + fl.label + "\n")
		b.WriteString("  " + fl.input.View() + "\n\n")
	}

	label := "Sign in"
	if f.screen.Form() == models.SignUp {
		label = "Sign up"
	}
	if f.screen.CanSubmit() {
		b.WriteString(buttonActive.Render(label))
	} else {
		b.WriteString(buttonInactive.Render(label))
	}
	if f.screen.Loading() {
		b.WriteString("  " + spin + " Please wait…")
	}
	b.WriteString("\n\n")

	hint := "tab: next field  enter: next / submit  ctrl+c: quit"
	if f.screen.Form() == models.SignIn {
		hint += "  ctrl+n: create account"
	} else {
		hint += "  esc: back to sign in"
	}
	b.WriteString(hintStyle.Render(hint))
	return b.String()
}
