package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"turm/orbit"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	panelStyle   = lipgloss.NewStyle().PaddingLeft(2)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	canvas := strings.Join(m.drawScene().Render(true), "\n")

	var panel string
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		panel = m.fileListView()
	} else {
		panel = m.panelView()
	}

	var result strings.Builder
	result.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle.Render(panel)))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) panelView() string {
	o := m.ctl.Orbit
	s := m.ctl.Status()

	name := "[new]"
	if m.current != "" {
		name = filepath.Base(m.current)
	}
	if o.Modified() {
		name += " [+]"
	}

	pen := "up"
	if s.PenDown {
		pen = "down"
	}
	replayState := "idle"
	if running, _ := m.replay.state(); running {
		replayState = "running"
	}

	lines := []string{
		titleStyle.Render(appTitle) + "  " + name,
		"",
		fmt.Sprintf("Strokes: %d  Undone: %d", s.Strokes, s.Redo),
		fmt.Sprintf("Pen: %s  Heading: %.1f°", pen, normalizeDegrees(s.Heading)),
		fmt.Sprintf("X: %d  Y: %d", s.RelX, s.RelY),
		fmt.Sprintf("Last: %s", m.lastOp),
		fmt.Sprintf("Test draw: %s", replayState),
		"",
	}
	lines = append(lines, strings.Split(dimStyle.Render(usage), "\n")...)

	if m.showPath {
		lines = append(lines, "", titleStyle.Render("Path"))
		lines = append(lines, strokeList(o.Strokes())...)
	}
	if m.showRedo {
		lines = append(lines, "", titleStyle.Render("Undone"))
		lines = append(lines, strokeList(o.RedoBuffer())...)
	}
	return strings.Join(lines, "\n")
}

// strokeList shows the last listRows strokes, numbered from one.
func strokeList(strokes []orbit.Stroke) []string {
	if len(strokes) == 0 {
		return []string{dimStyle.Render("  (empty)")}
	}
	start := 0
	if len(strokes) > listRows {
		start = len(strokes) - listRows
	}
	var lines []string
	if start > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  ... %d more", start)))
	}
	for i := start; i < len(strokes); i++ {
		s := strokes[i]
		pen := "up  "
		if s.PenDown {
			pen = "down"
		}
		lines = append(lines, fmt.Sprintf("%4d %s %9.3f %9.3f", i+1, pen, s.Angle, s.Length))
	}
	return lines
}

func (m model) fileListView() string {
	var result strings.Builder
	result.WriteString(titleStyle.Render("Open a saved path:"))
	result.WriteString("\n")

	if len(m.fileList) == 0 {
		result.WriteString(fmt.Sprintf("(No %s files in %s)", orbit.Ext, m.config.listDirectory()))
		return result.String()
	}

	_, rows := m.canvas.Size()
	maxFiles := rows - 2
	if maxFiles < 1 {
		maxFiles = 1
	}
	startIdx := 0
	if m.selectedFileIndex >= maxFiles {
		startIdx = m.selectedFileIndex - maxFiles + 1
	}
	endIdx := startIdx + maxFiles
	if endIdx > len(m.fileList) {
		endIdx = len(m.fileList)
	}

	for i := startIdx; i < endIdx; i++ {
		name := displayName(m.fileList[i])
		if i == m.selectedFileIndex {
			result.WriteString("> " + name + " <")
		} else {
			result.WriteString("  " + name)
		}
		if i < endIdx-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func (m model) statusLine() string {
	var statusLine string
	switch m.mode {
	case ModeFileInput:
		statusLine = fmt.Sprintf("%s: %s█", m.fileOpString(), m.filename)
	case ModeConfirm:
		statusLine = m.confirmPrompt()
	default:
		statusLine = "? for help"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("[%s] %s", m.modeString(), statusLine))
	if m.errorMessage != "" {
		result.WriteString("  ")
		result.WriteString(errorStyle.Render(m.errorMessage))
	} else if m.successMessage != "" {
		result.WriteString("  ")
		result.WriteString(successStyle.Render(m.successMessage))
	}
	return result.String()
}

func (m model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmQuit:
		return "Discard unsaved changes and quit? (y/n)"
	case ConfirmClear:
		return "Discard unsaved changes and clear? (y/n)"
	case ConfirmOpen:
		return fmt.Sprintf("Discard unsaved changes and open %s? (y/n)", filepath.Base(m.pendingName))
	case ConfirmPaste:
		return fmt.Sprintf("Discard unsaved changes and paste %d strokes? (y/n)", len(m.pendingStrokes))
	case ConfirmOverwriteFile:
		return fmt.Sprintf("%s exists. Overwrite? (y/n)", filepath.Base(m.pendingName))
	case ConfirmRestartReplay:
		return "Test draw is running. Restart it? (y/n)"
	default:
		return "(y/n)"
	}
}

func (m model) fileOpString() string {
	switch m.fileOp {
	case FileOpSave:
		return "Save as"
	case FileOpOpen:
		return "Open"
	case FileOpExportPNG:
		return "Export PNG"
	case FileOpExportPDF:
		return "Export PDF"
	case FileOpExportTXT:
		return "Export text"
	default:
		return "File"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func (m model) helpView() string {
	helpLines := []string{
		"turm Help",
		"=========",
		"",
		"Mouse:",
		"------",
		"  Left click          Mark: draw from the pen to the pointer",
		"  Right click         Release: lift the pen, the next mark moves",
		"  Shift+Right click   Back and hold: undo a stroke, pen stays down",
		"  Right double click  Back and release: undo a stroke, lift the pen",
		"  Shift+Left click    Redo an undone stroke, or put the pen down",
		"  (Alt works in place of Shift)",
		"",
		"Keyboard pointer:",
		"-----------------",
		"  h/←/j/↓/k/↑/l/→     Move the pointer one cell",
		"  Shift+h/j/k/l       Move the pointer four cells",
		"  g                   Put the pointer on the pen",
		"  Space/Enter         Mark",
		"  x                   Release",
		"  u                   Back and hold",
		"  U                   Back and release",
		"  r                   Redo, or put the pen down",
		"",
		"Path:",
		"-----",
		"  n                   Clear the path",
		"  t                   Test draw the path from the origin",
		"  T/Esc               Stop the test draw",
		"  [                   Show or hide the stroke list",
		"  ]                   Show or hide the undone strokes",
		"  y                   Copy the path to the clipboard",
		"  p                   Paste a path from the clipboard",
		"",
		"File Operations:",
		"----------------",
		"  s                   Save (" + orbit.Ext + ")",
		"  o                   Open a saved path",
		"  e                   Export as PNG",
		"  E                   Export as PDF",
		"  V                   Export the screen as text",
		"",
		"  ?                   Toggle this help",
		"  q/Ctrl+C            Quit",
	}

	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = len(helpLines)
	}

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = len(helpLines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
