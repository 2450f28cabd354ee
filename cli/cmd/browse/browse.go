// Package browse implements an interactive terminal explorer for loaded
// grammars. Type a variable name, with fuzzy completion over the lexicon,
// and expand it repeatedly to sample what the rules produce.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wojfil/iskierka/cli/cmd"
	"github.com/wojfil/iskierka/lang"
)

// Browse runs the interactive explorer.
type Browse struct {
	Seed *uint64 `help:"Seed the random source for reproducible runs." placeholder:"N"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	lex, err := cmd.Load(ctx)
	if err != nil {
		return err
	}

	opts := []lang.Option{lang.WithLogger(cmd.Logger(ctx))}
	if b.Seed != nil {
		opts = append(opts, lang.WithSeed(*b.Seed))
	}

	_, err = tea.NewProgram(
		newModel(lex, lang.NewGenerator(lex, opts...)),
		tea.WithContext(ctx),
	).Run()
	return err
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	naturalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	programStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// maxMatches bounds the completion list shown below the prompt.
const maxMatches = 8

type model struct {
	lex   *lang.Lexicon
	gen   *lang.Generator
	names []string

	input   textinput.Model
	matches []string
	sel     int

	pair  *lang.Pair
	fail  error
	count int
}

func newModel(lex *lang.Lexicon, gen *lang.Generator) model {
	input := textinput.New()
	input.Placeholder = lang.RootName
	input.Prompt = "> "
	input.Focus()

	names := lex.Names()

	return model{
		lex:     lex,
		gen:     gen,
		names:   names,
		input:   input,
		matches: complete(names, ""),
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var tcmd tea.Cmd
		m.input, tcmd = m.input.Update(msg)
		return m, tcmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		if m.sel > 0 {
			m.sel--
		}
		return m, nil

	case tea.KeyDown:
		if m.sel < len(m.matches)-1 {
			m.sel++
		}
		return m, nil

	case tea.KeyTab:
		if len(m.matches) > 0 {
			m.input.SetValue(m.matches[m.sel])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyEnter:
		m.expand()
		return m, nil
	}

	var tcmd tea.Cmd
	m.input, tcmd = m.input.Update(msg)
	m.matches = complete(m.names, m.input.Value())
	m.sel = 0
	return m, tcmd
}

// expand generates one pair from the typed variable, or from the highlighted
// completion when the prompt is empty.
func (m *model) expand() {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		name = lang.RootName
		if len(m.matches) > 0 && m.sel < len(m.matches) {
			name = m.matches[m.sel]
		}
	}

	h, ok := m.lex.Lookup(name)
	if !ok {
		m.pair = nil
		m.fail = cmd.ErrNoSuchName
		return
	}

	pair, err := m.gen.Expand(h)
	if err != nil {
		m.pair = nil
		m.fail = err
		return
	}
	m.pair = &pair
	m.fail = nil
	m.count++
}

func (m model) View() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  %s\n\n",
		titleStyle.Render("iskierka"),
		hintStyle.Render(fmt.Sprintf("%d variables loaded", m.lex.Len())))
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	for i, name := range m.matches {
		cursor := "  "
		style := hintStyle
		if i == m.sel {
			cursor = "| "
			style = matchStyle
		}
		sb.WriteString(cursor + style.Render(name) + "\n")
	}

	switch {
	case m.fail != nil:
		sb.WriteString("\n" + errorStyle.Render(m.fail.Error()) + "\n")
	case m.pair != nil:
		fmt.Fprintf(&sb, "\n%s\n%s\n",
			naturalStyle.Render(m.pair.Natural),
			programStyle.Render(m.pair.Programming))
	}

	sb.WriteString("\n" + hintStyle.Render(
		"enter: expand | tab: complete | up/down: select | esc: quit") + "\n")
	return sb.String()
}
