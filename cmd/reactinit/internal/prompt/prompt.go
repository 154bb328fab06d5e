// Package prompt implements the interactive questionnaire that collects a
// scaffold.Config: a language choice followed by one yes/no question per
// feature toggle.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
)

// ErrAborted is returned when the user cancels the questionnaire.
var ErrAborted = errors.New("prompt aborted")

// question is one step of the questionnaire.
type question struct {
	title   string
	options []string
	confirm bool // options are Yes and No
	// selected returns the option index that cfg currently answers.
	selected func(cfg scaffold.Config) int
	// answer stores option index choice into cfg.
	answer func(cfg *scaffold.Config, choice int)
}

var yesNo = []string{"Yes", "No"}

func confirm(title string, field func(*scaffold.Features) *bool) question {
	return question{
		title:   title,
		options: yesNo,
		confirm: true,
		selected: func(cfg scaffold.Config) int {
			if *field(&cfg.Features) {
				return 0
			}
			return 1
		},
		answer: func(cfg *scaffold.Config, choice int) {
			*field(&cfg.Features) = choice == 0
		},
	}
}

func languageQuestion() question {
	labels := make([]string, len(scaffold.Languages))
	for i, l := range scaffold.Languages {
		labels[i] = l.Label()
	}
	return question{
		title:   "Language?",
		options: labels,
		selected: func(cfg scaffold.Config) int {
			for i, l := range scaffold.Languages {
				if l == cfg.Language {
					return i
				}
			}
			return 0
		},
		answer: func(cfg *scaffold.Config, choice int) {
			cfg.Language = scaffold.Languages[choice]
		},
	}
}

func questions() []question {
	return []question{
		languageQuestion(),
		confirm("Include Redux Toolkit?", func(f *scaffold.Features) *bool { return &f.Redux }),
		confirm("Include Context API?", func(f *scaffold.Features) *bool { return &f.Context }),
		confirm("Include React Router?", func(f *scaffold.Features) *bool { return &f.Router }),
		confirm("Include Tailwind CSS?", func(f *scaffold.Features) *bool { return &f.Tailwind }),
		confirm("Include Axios?", func(f *scaffold.Features) *bool { return &f.Axios }),
	}
}

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Reverse(true)
	answeredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the bubbletea model of the questionnaire. The zero value is not
// usable; construct it with New.
type Model struct {
	keys      KeyMap
	questions []question
	config    scaffold.Config

	index   int // current question
	cursor  int // highlighted option of the current question
	done    bool
	aborted bool
}

// New returns a questionnaire whose highlighted answers start at defaults.
func New(defaults scaffold.Config) Model {
	m := Model{
		keys:      DefaultKeyMap,
		questions: questions(),
		config:    defaults,
	}
	m.cursor = m.questions[0].selected(defaults)
	return m
}

// Config returns the answers collected so far.
func (m Model) Config() scaffold.Config { return m.config }

// Done reports whether every question has been answered.
func (m Model) Done() bool { return m.done }

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	msg, ok := message.(tea.KeyMsg)
	if !ok || m.done || m.aborted {
		return m, nil
	}

	q := m.questions[m.index]
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.cursor = (m.cursor - 1 + len(q.options)) % len(q.options)
	case key.Matches(msg, m.keys.Next):
		m.cursor = (m.cursor + 1) % len(q.options)
	case key.Matches(msg, m.keys.Accept):
		return m.answer(m.cursor)
	case q.confirm && key.Matches(msg, m.keys.Yes):
		return m.answer(0)
	case q.confirm && key.Matches(msg, m.keys.No):
		return m.answer(1)
	}
	return m, nil
}

func (m Model) answer(choice int) (tea.Model, tea.Cmd) {
	m.questions[m.index].answer(&m.config, choice)
	m.index++
	if m.index == len(m.questions) {
		m.done = true
		return m, tea.Quit
	}
	m.cursor = m.questions[m.index].selected(m.config)
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for i := 0; i < m.index && i < len(m.questions); i++ {
		q := m.questions[i]
		fmt.Fprintf(&b, "%s %s\n", promptStyle.Render("?"), q.title+" "+answeredStyle.Render(q.options[q.selected(m.config)]))
	}
	if m.done || m.aborted {
		return b.String()
	}

	q := m.questions[m.index]
	fmt.Fprintf(&b, "%s %s ", promptStyle.Render("?"), q.title)
	for i, opt := range q.options {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(" " + opt + " "))
		} else {
			b.WriteString(" " + opt + " ")
		}
	}
	b.WriteString("\n")

	help := []key.Binding{m.keys.Next, m.keys.Accept}
	if q.confirm {
		help = append(help, m.keys.Yes, m.keys.No)
	}
	help = append(help, m.keys.Abort)
	parts := make([]string, len(help))
	for i, h := range help {
		parts[i] = h.Help().Key + " " + h.Help().Desc
	}
	b.WriteString(helpStyle.Render(strings.Join(parts, " • ")))
	b.WriteString("\n")
	return b.String()
}

// Run asks the questionnaire on in and out, starting from defaults. It
// returns ErrAborted when the user cancels.
func Run(ctx context.Context, in io.Reader, out io.Writer, defaults scaffold.Config) (scaffold.Config, error) {
	program := tea.NewProgram(New(defaults),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return scaffold.Config{}, ErrAborted
		}
		return scaffold.Config{}, fmt.Errorf("questionnaire failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok || m.aborted || !m.done {
		return scaffold.Config{}, ErrAborted
	}
	return m.config, nil
}
