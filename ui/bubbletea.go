package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/depado/hms/utils"
)

// maxDigits keeps the input within the range of an int64
const maxDigits = 18

// Color palette and styles
var (
	// Colors
	primaryColor   = lipgloss.Color("#FBBF24") // Yellow/amber
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#3B82F6") // Blue
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	borderColor    = lipgloss.Color("#374151") // Border gray

	baseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2).
			Margin(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6"))

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// ViewMode represents different view modes
type ViewMode int

const (
	ViewMain ViewMode = iota
	ViewHelp
)

// BubbleTeaModel holds the state of the interactive converter
type BubbleTeaModel struct {
	width  int
	height int

	log zerolog.Logger

	input  string
	total  int64
	result *utils.Decomposed

	currentView ViewMode
	ready       bool
}

// NewBubbleTeaModel creates a new bubbletea model
func NewBubbleTeaModel(l zerolog.Logger) *BubbleTeaModel {
	return &BubbleTeaModel{
		log:         l,
		currentView: ViewMain,
	}
}

// Init implements tea.Model
func (m *BubbleTeaModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m *BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.currentView == ViewHelp {
			// In help view, any key returns to main
			m.currentView = ViewMain
			return m, nil
		}

		switch key := msg.String(); key {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "?", "h":
			m.currentView = ViewHelp
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case "enter":
			m.convert()
		default:
			if isDigits(key) && len(m.input)+len(key) <= maxDigits {
				m.input += key
			}
		}
	}

	return m, nil
}

// convert decomposes the current input and stores the outcome. The input
// only holds up to maxDigits digits so it always parses to a non-negative
// int64.
func (m *BubbleTeaModel) convert() {
	if m.input == "" {
		return
	}
	total, err := strconv.ParseInt(m.input, 10, 64)
	if err != nil {
		m.log.Error().Err(err).Str("input", m.input).Msg("unable to parse input")
		return
	}
	d, err := utils.Decompose(total)
	if err != nil {
		m.log.Error().Err(err).Int64("seconds", total).Msg("unable to convert")
		return
	}
	m.log.Debug().Int64("seconds", total).Int64("hours", d.Hours).Int64("minutes", d.Minutes).
		Int64("remaining", d.Seconds).Msg("converted")
	m.total, m.result = total, &d
	m.input = ""
}

// Result returns the last successful conversion, if any
func (m *BubbleTeaModel) Result() (utils.Decomposed, bool) {
	if m.result == nil {
		return utils.Decomposed{}, false
	}
	return *m.result, true
}

// Input returns the digits typed so far
func (m *BubbleTeaModel) Input() string {
	return m.input
}

// View implements tea.Model
func (m *BubbleTeaModel) View() string {
	if !m.ready {
		return baseStyle.Render("Loading...")
	}

	switch m.currentView {
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderMainView()
	}
}

func (m *BubbleTeaModel) renderMainView() string {
	header := titleStyle.Render("⏱  hms")
	prompt := labelStyle.Render("Seconds: ") + inputStyle.Render(m.input+"█")

	var body string
	switch {
	case m.result != nil:
		d := *m.result
		body = strings.Join([]string{
			labelStyle.Render(fmt.Sprintf("%d seconds", m.total)),
			valueStyle.Render(fmt.Sprintf("%d hours %d minutes %d seconds", d.Hours, d.Minutes, d.Seconds)),
			valueStyle.Render(fmt.Sprintf("%d hours: %d minutes: %d seconds:", d.Hours, d.Minutes, d.Seconds)),
			valueStyle.Render(d.Clock()),
		}, "\n")
	default:
		body = helpStyle.Render("Type a number of seconds and press enter")
	}

	footer := helpStyle.Render(keyStyle.Render("enter") + " convert • " +
		keyStyle.Render("?") + " help • " + keyStyle.Render("q") + " quit")

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, prompt, "", body)),
			footer,
		),
	)
}

func (m *BubbleTeaModel) renderHelpView() string {
	helpContent := []string{
		"",
		keyStyle.Render("Input:"),
		"  0-9         - Append a digit",
		"  Backspace   - Remove the last digit",
		"  Enter       - Convert",
		"",
		keyStyle.Render("Interface:"),
		"  h/?         - Show this help",
		"  q/Esc/Ctrl+C - Quit",
		"",
		helpStyle.Render("Press any key to return to the converter"),
	}

	helpBox := panelStyle.
		Width(max(m.width-4, 0)).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render("Help & Controls"), strings.Join(helpContent, "\n")))

	return baseStyle.Render(helpBox)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
