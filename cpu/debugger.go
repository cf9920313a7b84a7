package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu     *Cpu
	program string
	offset  uint16 // only for drawing pageTable

	prevPC uint16
}

// Init loads the program at offset and sets PC to it before the TUI
// takes over.
func (m model) Init() tea.Cmd {
	m.cpu.LoadProgram(m.program, m.offset)
	m.cpu.Reg.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Reg.PC
			m.cpu.Step()
		}
	}
	return m, nil
}

// renderPage renders 16 consecutive bytes as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Bus.Read8(addr)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	r := m.cpu.Reg
	var flags string
	for _, set := range []bool{
		r.Flag(FlagZ),
		r.Flag(FlagN),
		r.Flag(FlagH),
		r.Flag(FlagC),
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 A: %02x   F: %02x
 B: %02x   C: %02x
 D: %02x   E: %02x
 H: %02x   L: %02x
halted=%v ime=%v
Z N H C
`,
		r.PC, m.prevPC,
		r.SP,
		r.A, r.F,
		r.B, r.C,
		r.D, r.E,
		r.H, r.L,
		m.cpu.Halted, m.cpu.IME,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	pc := int(m.cpu.Reg.PC) &^ 0xF
	offsets := []int{
		0, 16, 32, 48, 64,
		pc,
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	opcode := m.cpu.Bus.Read8(m.cpu.Reg.PC)
	row := Opcodes[opcode]
	if opcode == 0xCB {
		row = CBOpcodes[m.cpu.Bus.Read8(m.cpu.Reg.PC+1)]
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(row),
	)
}

// Inspect loads program into memory at offset, then starts an
// interactive single-step TUI over c.
func Inspect(c *Cpu, program string, offset uint16) {
	_, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
}
