package main

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"turm/orbit"
	"turm/session"
)

func (m *model) beginFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	m.fileList = nil
	m.selectedFileIndex = -1

	switch op {
	case FileOpOpen:
		m.filename = ""
		m.scanTurtleFiles()
	case FileOpSave:
		m.filename = ""
		if m.current != "" {
			m.filename = displayName(filepath.Base(m.current))
		}
	default:
		m.filename = m.defaultExportName()
	}
}

// openPath resolves a name typed in the open prompt.
func (m *model) openPath(name string) string {
	name = withExt(name, orbit.Ext)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.config.listDirectory(), name)
}

// commitFileInput runs the prompt's operation on the typed name.
func (m *model) commitFileInput() tea.Cmd {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "Filename required"
		return nil
	}

	switch m.fileOp {
	case FileOpSave:
		path := m.config.GetSavePath(withExt(name, orbit.Ext))
		if path != m.current && fileExists(path) && m.config.Confirmations {
			m.pendingName = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return nil
		}
		if err := m.saveTo(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error saving file: %s", err.Error())
			return nil
		}

	case FileOpOpen:
		path := m.openPath(name)
		if m.ctl.Orbit.Modified() && m.config.Confirmations {
			m.pendingName = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOpen
			return nil
		}
		m.mode = ModeNormal
		m.filename = ""
		return m.openFile(path)

	case FileOpExportPNG:
		path := m.config.GetSavePath(withExt(name, ".png"))
		if err := m.exportPNG(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
			return nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath(path))

	case FileOpExportPDF:
		path := m.config.GetSavePath(withExt(name, ".pdf"))
		if err := m.exportPDF(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PDF: %s", err.Error())
			return nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath(path))

	case FileOpExportTXT:
		path := m.config.GetSavePath(withExt(name, ".txt"))
		if err := m.exportVisualTXT(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting text: %s", err.Error())
			return nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath(path))
	}

	m.mode = ModeNormal
	m.filename = ""
	m.errorMessage = ""
	return nil
}

func (m *model) saveTo(path string) error {
	o := m.ctl.Orbit
	if err := orbit.SaveFile(path, o.Strokes()); err != nil {
		return err
	}
	o.MarkSaved()
	m.current = path
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Saved to %s", absPath(path))
	return nil
}

// openFile loads path and test-draws it when it holds any strokes.
func (m *model) openFile(path string) tea.Cmd {
	strokes, err := orbit.LoadFile(path)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error opening file: %s", err.Error())
		return nil
	}
	m.pendingStrokes = strokes
	m.pendingName = path
	return m.loadPending()
}

// loadPending replaces the orbit with pendingStrokes. A named source is
// remembered for saving and test-drawn.
func (m *model) loadPending() tea.Cmd {
	strokes, name := m.pendingStrokes, m.pendingName
	m.pendingStrokes, m.pendingName = nil, ""

	m.stopReplay()
	m.ctl.Orbit.Load(strokes)
	m.ctl.SetLive(m.ctl.Orbit.Cursor())
	m.lastOp = session.OpNone
	m.errorMessage = ""

	if name == "" {
		m.successMessage = fmt.Sprintf("Pasted %d strokes", len(strokes))
		return nil
	}
	m.current = name
	m.successMessage = fmt.Sprintf("Loaded %s", absPath(name))
	if len(strokes) == 0 {
		return nil
	}
	return m.restartReplay()
}

// confirm runs the pending confirmed action.
func (m *model) confirm() tea.Cmd {
	m.mode = ModeNormal
	switch m.confirmAction {
	case ConfirmQuit:
		m.driver.Stop()
		return tea.Quit
	case ConfirmClear:
		m.clearOrbit()
	case ConfirmOpen:
		m.filename = ""
		return m.openFile(m.pendingName)
	case ConfirmPaste:
		return m.loadPending()
	case ConfirmOverwriteFile:
		path := m.pendingName
		m.pendingName = ""
		if err := m.saveTo(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error saving file: %s", err.Error())
			m.mode = ModeFileInput
			return nil
		}
		m.filename = ""
	case ConfirmRestartReplay:
		return m.restartReplay()
	}
	return nil
}

func (m *model) cancelConfirm() {
	switch m.confirmAction {
	case ConfirmOverwriteFile:
		m.mode = ModeFileInput
		m.fileOp = FileOpSave
	case ConfirmOpen:
		m.mode = ModeFileInput
		m.fileOp = FileOpOpen
	default:
		m.mode = ModeNormal
	}
	m.pendingStrokes = nil
	m.pendingName = ""
}

func (m *model) requestQuit() tea.Cmd {
	if m.ctl.Orbit.Modified() && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return nil
	}
	m.driver.Stop()
	return tea.Quit
}

func absPath(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return path
}
