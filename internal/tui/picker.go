// Package tui is the interactive picker: a query line over the window
// list, re-ranked on every keystroke, with enter focusing the selection.
package tui

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"hypr-switch/internal/fuzzy"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithTitle sets the heading displayed above the picker.
func WithTitle(title string) PickerOption {
	return func(p *Picker) { p.title = title }
}

// WithCaseSensitive toggles case-sensitive matching.
func WithCaseSensitive(v bool) PickerOption {
	return func(p *Picker) { p.caseSensitive = v }
}

// WithHeight sets the maximum visible rows (0 = auto).
func WithHeight(h int) PickerOption {
	return func(p *Picker) { p.height = h }
}

// Picker is the bubbletea model for interactive window selection. An empty
// query shows the whole corpus as a browsing aid; once the user types, only
// ranked matches remain, best first.
type Picker struct {
	title         string
	height        int
	caseSensitive bool

	candidates []fuzzy.Candidate
	rows       []fuzzy.Ranked
	query      string
	cursor     int
	offset     int // viewport scroll offset
	chosen     *fuzzy.Candidate
	canceled   bool

	termWidth  int
	termHeight int
}

// NewPicker creates a Picker over the given candidates.
func NewPicker(candidates []fuzzy.Candidate, opts ...PickerOption) *Picker {
	p := &Picker{
		height:     10,
		candidates: candidates,
		termWidth:  80,
		termHeight: 24,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.applyQuery()
	return p
}

// Run shows the picker and returns the selected candidate, or nil when the
// user canceled.
func Run(candidates []fuzzy.Candidate, opts ...PickerOption) (*fuzzy.Candidate, error) {
	p := NewPicker(candidates, opts...)
	prog := tea.NewProgram(p, tea.WithAltScreen())
	m, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	result := m.(*Picker)
	if result.canceled {
		return nil, nil
	}
	return result.chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// --- Bubbletea model implementation ---

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termWidth = msg.Width
		p.termHeight = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			p.canceled = true
			return p, tea.Quit

		case "enter":
			if len(p.rows) > 0 {
				chosen := p.rows[p.cursor].Candidate
				p.chosen = &chosen
			}
			return p, tea.Quit

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
				if p.cursor < p.offset {
					p.offset = p.cursor
				}
			}
			return p, nil

		case "down", "ctrl+n":
			if p.cursor < len(p.rows)-1 {
				p.cursor++
				vis := p.visibleHeight()
				if p.cursor >= p.offset+vis {
					p.offset = p.cursor - vis + 1
				}
			}
			return p, nil

		case "backspace":
			if len(p.query) > 0 {
				// Trim the last rune, not the last byte.
				_, size := utf8.DecodeLastRuneInString(p.query)
				p.query = p.query[:len(p.query)-size]
				p.applyQuery()
			}
			return p, nil

		default:
			if len(msg.Runes) == 1 {
				p.query += string(msg.Runes)
				p.applyQuery()
			}
			return p, nil
		}
	}
	return p, nil
}

func (p *Picker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + titleStyle.Render(p.title) + "\n\n")
	}

	b.WriteString("  " + promptStyle.Render("> ") + p.query + cursorGlyph() + "\n\n")

	vis := p.visibleHeight()
	end := p.offset + vis
	if end > len(p.rows) {
		end = len(p.rows)
	}

	if len(p.rows) == 0 {
		b.WriteString("  " + mutedStyle.Render("No matches") + "\n")
	} else {
		for i := p.offset; i < end; i++ {
			b.WriteString(p.renderRow(i) + "\n")
		}
	}

	b.WriteString("\n")
	status := mutedStyle.Render(fmt.Sprintf("  %d/%d", len(p.rows), len(p.candidates)))
	help := mutedStyle.Render(" · ↑↓ navigate · enter focus · esc cancel")
	b.WriteString(status + help + "\n")

	return b.String()
}

// --- internal helpers ---

func (p *Picker) visibleHeight() int {
	h := p.height
	if h <= 0 || h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	if h < 3 {
		h = 3
	}
	return h
}

// applyQuery re-ranks the corpus for the current query. Ranking the whole
// corpus per keystroke is cheap at window-list sizes, and the latest call's
// rows are simply the ones rendered, so no stale result can survive.
func (p *Picker) applyQuery() {
	if p.query == "" {
		p.rows = make([]fuzzy.Ranked, 0, len(p.candidates))
		for _, c := range p.candidates {
			p.rows = append(p.rows, fuzzy.Ranked{Candidate: c})
		}
	} else {
		// The picker scrolls instead of truncating, so the cap is the
		// corpus itself.
		p.rows = fuzzy.Rank(p.query, p.candidates, p.caseSensitive, len(p.candidates))
	}
	p.cursor = 0
	p.offset = 0
}

func (p *Picker) renderRow(i int) string {
	row := p.rows[i]

	pointer := "  "
	display := row.Display
	if i == p.cursor {
		pointer = selectedStyle.Render("❯ ")
		display = selectedStyle.Render(display)
	}

	score := ""
	if p.query != "" {
		score = " " + scoreStyle.Render(fmt.Sprintf("(%d)", row.Score))
	}

	return "  " + pointer + display + score
}

func cursorGlyph() string {
	return promptStyle.Render("▎")
}
