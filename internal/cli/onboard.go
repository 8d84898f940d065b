package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/insighteer/relaybot/internal/config"
)

const envPath = ".env"

// --- overwrite confirmation model ---

type onboardChoice int

const (
	choiceOverwrite onboardChoice = iota
	choiceSkip
)

type choiceModel struct {
	choices []string
	cursor  int
	chosen  bool
	choice  onboardChoice
}

func (m choiceModel) Init() tea.Cmd { return nil }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.choice = choiceSkip
			m.chosen = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown, tea.KeyTab:
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			m.choice = onboardChoice(m.cursor)
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	if m.chosen {
		return ""
	}

	s := "\n"
	s += fmt.Sprintf("  A %s file already exists\n\n", DimStyle.Render(envPath))
	for i, choice := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = TitleStyle.Render("❯ ")
		}
		s += "  " + cursor + choice + "\n"
	}
	s += "\n" + DimStyle.Render("  ↑/↓ navigate · enter select · ctrl+c cancel") + "\n"
	return s
}

// --- credentials form model ---

type formModel struct {
	inputs  []textinput.Model
	labels  []string
	focused int
	done    bool
	aborted bool
	errText string
}

func newFormModel() formModel {
	token := textinput.New()
	token.Placeholder = "123456:ABC-DEF..."
	token.EchoMode = textinput.EchoPassword
	token.Prompt = "❯ "
	token.PromptStyle = lipgloss.NewStyle().Foreground(Accent)
	token.Focus()

	chatID := textinput.New()
	chatID.Placeholder = "-1001234567890"
	chatID.Prompt = "❯ "
	chatID.PromptStyle = lipgloss.NewStyle().Foreground(Accent)

	return formModel{
		inputs: []textinput.Model{token, chatID},
		labels: []string{"Bot token (from @BotFather)", "Admin chat id"},
	}
}

func (m formModel) Init() tea.Cmd { return textinput.Blink }

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.validateFocused(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.errText = ""
			if m.focused == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			m.inputs[m.focused].Blur()
			m.focused++
			m.inputs[m.focused].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m formModel) validateFocused() error {
	value := strings.TrimSpace(m.inputs[m.focused].Value())
	switch m.focused {
	case 0:
		if value == "" {
			return fmt.Errorf("bot token cannot be empty")
		}
	case 1:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("admin chat id must be an integer")
		}
	}
	return nil
}

func (m formModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	s := "\n"
	for i, input := range m.inputs {
		label := m.labels[i]
		if i == m.focused {
			s += "  " + BoldStyle.Render(label) + "\n"
			s += "  " + input.View() + "\n\n"
		} else {
			s += "  " + DimStyle.Render(label) + "\n"
			s += "  " + DimStyle.Render(input.View()) + "\n\n"
		}
	}
	if m.errText != "" {
		s += "  " + ErrStyle.Render(m.errText) + "\n\n"
	}
	s += DimStyle.Render("  enter next · esc cancel") + "\n"
	return s
}

// RunOnboard runs the setup wizard: it asks for the bot token and the
// admin chat id and writes them to .env in the working directory.
func RunOnboard() {
	fmt.Println()
	fmt.Println(TitleStyle.Render(fmt.Sprintf("  %s relaybot Onboard", Logo)))

	if fileExists(envPath) {
		m := choiceModel{
			choices: []string{
				"Overwrite — replace with new credentials",
				"Skip — keep the existing file",
			},
		}
		p := tea.NewProgram(m)
		final, err := p.Run()
		if err != nil {
			fmt.Println("  " + ErrStyle.Render("Error: "+err.Error()))
			os.Exit(1)
		}
		if final.(choiceModel).choice == choiceSkip {
			fmt.Println()
			fmt.Println("  " + DimStyle.Render(envPath+" unchanged"))
			return
		}
	}

	p := tea.NewProgram(newFormModel())
	final, err := p.Run()
	if err != nil {
		fmt.Println("  " + ErrStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
	fm := final.(formModel)
	if fm.aborted {
		fmt.Println()
		fmt.Println("  " + DimStyle.Render("Cancelled"))
		return
	}

	token := strings.TrimSpace(fm.inputs[0].Value())
	chatID, _ := strconv.ParseInt(strings.TrimSpace(fm.inputs[1].Value()), 10, 64)

	if err := config.WriteEnvFile(envPath, token, chatID); err != nil {
		fmt.Println("  " + ErrStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  " + OkStyle.Render("✓") + " Wrote " + DimStyle.Render(envPath))
	fmt.Println()
	fmt.Println(OkStyle.Render("  relaybot is ready!"))
	fmt.Println()
	fmt.Println(DimStyle.Render("  Start relaying: relaybot run"))
	fmt.Println()
}
