package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/devboard/internal/models"
	"github.com/emilianohg/devboard/internal/settings"
)

type Settings struct {
	store  *settings.Store
	width  int
	height int

	inputs  []textinput.Model
	focus   int
	err     error
	message string
}

func NewSettings(store *settings.Store) *Settings {
	return &Settings{
		store:  store,
		inputs: newInputs(40, "Username", "Email"),
	}
}

func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Settings) Init() tea.Cmd {
	p := s.store.Profile()
	s.inputs[0].SetValue(p.Username)
	s.inputs[1].SetValue(p.Email)
	s.inputs[1].Blur()
	s.focus = 0
	s.err = nil
	s.message = ""
	return s.inputs[0].Focus()
}

func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc":
		return Navigate("dashboard")
	case "tab", "shift+tab", "up", "down":
		s.inputs[s.focus].Blur()
		s.focus = 1 - s.focus
		return s.inputs[s.focus].Focus()
	case "enter":
		s.message = ""
		err := s.store.Update(models.Profile{
			Username: s.inputs[0].Value(),
			Email:    s.inputs[1].Value(),
		})
		s.err = err
		if err == nil {
			s.message = "Profile saved"
		}
		return nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *Settings) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("SETTINGS"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n\n")
	}
	if s.message != "" {
		b.WriteString(SuccessStyle.Render(s.message))
		b.WriteString("\n\n")
	}

	for _, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("[tab] Switch field  [enter] Save  [esc] Back"))
	return b.String()
}
