// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/textcodec/transcode"
)

var inspectFlags = flag.NewFlagSet("inspect", flag.ContinueOnError)

var inspectFile = inspectFlags.String("file", "", "path to read (default stdin)")

var (
	inspectTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	inspectByteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#87CEEB"))

	inspectCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4"))

	inspectGoodStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#90EE90"))

	inspectBadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B"))

	inspectHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	data   []byte
	cursor int
}

func newInspectModel(data []byte) *inspectModel {
	return &inspectModel{data: data}
}

func (m *inspectModel) Init() tea.Cmd { return nil }

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.data)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.data) - 1
	}
	return m, nil
}

// diagnosis describes what DecodeCodePoint finds starting at a byte offset.
type diagnosis struct {
	width int // bytes consumed if valid, 0 if invalid
	scalar rune
	reason string // empty if valid
}

func diagnose(data []byte, offset int) diagnosis {
	c := data[offset]
	if transcode.IsASCII(c) {
		return diagnosis{width: 1, scalar: rune(c)}
	}

	var d diagnosis
	cursor := offset + 1
	scalar, ok := transcode.DecodeCodePoint(c, &cursor, len(data), data, transcode.Reporter{
		BadLead:      func() { d.reason = "bad lead byte" },
		NotEnough:    func(available, needed int) { d.reason = fmt.Sprintf("not enough bytes (%d of %d)", available, needed) },
		BadTrailing:  func(int) { d.reason = "bad continuation byte" },
		BadCodePoint: func(rune, int) { d.reason = "decodes to a surrogate or out-of-range scalar" },
		NotShortest:  func(rune, int) { d.reason = "overlong encoding" },
	})
	if ok {
		d.width = cursor - offset
		d.scalar = scalar
	}
	return d
}

func (m *inspectModel) View() string {
	if len(m.data) == 0 {
		return inspectTitleStyle.Render("Byte Inspector") + "\n\nempty input\n"
	}

	var b strings.Builder
	b.WriteString(inspectTitleStyle.Render("Byte Inspector"))
	b.WriteString(fmt.Sprintf(" %d bytes\n\n", len(m.data)))

	const window = 16
	start := (m.cursor / window) * window
	end := start + window
	if end > len(m.data) {
		end = len(m.data)
	}
	for i := start; i < end; i++ {
		s := fmt.Sprintf("%02X ", m.data[i])
		if i == m.cursor {
			b.WriteString(inspectCursorStyle.Render(s))
		} else {
			b.WriteString(inspectByteStyle.Render(s))
		}
	}
	b.WriteString("\n\n")

	d := diagnose(m.data, m.cursor)
	if d.reason != "" {
		b.WriteString(inspectBadStyle.Render(fmt.Sprintf("offset %d: %s", m.cursor, d.reason)))
	} else {
		b.WriteString(inspectGoodStyle.Render(fmt.Sprintf("offset %d: scalar %#x, %d byte(s)", m.cursor, d.scalar, d.width)))
	}
	b.WriteString("\n\n")
	b.WriteString(inspectHelpStyle.Render("←/→ move • home/end jump • q quit"))
	return b.String()
}

func runInspect() error {
	data, err := readInput(*inspectFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	p := tea.NewProgram(newInspectModel(data), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
