package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pchchv/utf8codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeSize
)

func (m mode) String() string {
	switch m {
	case modeEncode:
		return "encode"
	case modeDecode:
		return "decode"
	case modeSize:
		return "size"
	default:
		return "<unknown mode>"
	}
}

func (m mode) placeholder() string {
	switch m {
	case modeDecode:
		return "0xE282AC"
	case modeSize:
		return "0xE2"
	default:
		return "U+20AC"
	}
}

type interactiveModel struct {
	err    error
	input  textinput.Model
	result []string
	mode   mode
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	m := &interactiveModel{input: ti}
	m.setMode(modeEncode)
	return m
}

func (m *interactiveModel) setMode(md mode) {
	m.mode = md
	m.input.Placeholder = md.placeholder()
	m.input.SetValue("")
	m.result = nil
	m.err = nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.setMode((m.mode + 1) % 3)
			return m, nil

		case "enter":
			m.result, m.err = evaluate(m.mode, m.input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs the operation of md on the text typed by the user and
// returns the lines to display.
func evaluate(md mode, value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	switch md {
	case modeEncode:
		c, err := parseCodePoint(value)
		if err != nil {
			return nil, err
		}
		s, n, err := utf8codec.Encode(c)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", c, err)
		}
		back, _ := utf8codec.Decode(s)
		return []string{
			fmt.Sprintf("code point  %v", c),
			fmt.Sprintf("packed      %v", s),
			fmt.Sprintf("bytes       % X", s.AppendBytes(nil, n)),
			fmt.Sprintf("size        %d", n),
			fmt.Sprintf("round-trip  %v", back),
		}, nil

	case modeDecode:
		s, err := parseSequence(value)
		if err != nil {
			return nil, err
		}
		c, err := utf8codec.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", s, err)
		}
		lines := []string{
			fmt.Sprintf("packed      %v", s),
			fmt.Sprintf("code point  %v", c),
		}
		if again, n, err := utf8codec.Encode(c); err == nil && again != s {
			lines = append(lines, fmt.Sprintf("canonical   %v (%d bytes)", again, n))
		}
		return lines, nil

	case modeSize:
		b, err := parseLeadByte(value)
		if err != nil {
			return nil, err
		}
		n, err := utf8codec.Size(b)
		if err != nil {
			return nil, fmt.Errorf("0x%02X: %w", b, err)
		}
		return []string{
			fmt.Sprintf("lead byte   0x%02X (%08b)", b, b),
			fmt.Sprintf("size        %d", n),
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %v", md)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-8 Codec"))
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	for _, line := range m.result {
		b.WriteString(resultStyle.Render(line))
		b.WriteString("\n")
	}
	if len(m.result) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter run • tab switch mode • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
