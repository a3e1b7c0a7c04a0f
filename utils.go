package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"turm/orbit"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText drops control characters and normalises line endings.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

// copyToClipboard puts the path on the clipboard in file format.
func (m *model) copyToClipboard() {
	o := m.ctl.Orbit
	if o.Len() == 0 {
		m.errorMessage = "Nothing to copy"
		return
	}
	if err := writeClipboardText(string(orbit.Marshal(o.Strokes()))); err != nil {
		m.errorMessage = fmt.Sprintf("Error copying: %s", err.Error())
		return
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Copied %d strokes", o.Len())
}

// pasteFromClipboard replaces the path with one read from the clipboard.
func (m *model) pasteFromClipboard() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error reading clipboard: %s", err.Error())
		return
	}
	strokes, err := orbit.Unmarshal([]byte(cleanClipboardText(text)))
	if err != nil {
		m.errorMessage = fmt.Sprintf("Clipboard: %s", err.Error())
		return
	}
	if len(strokes) == 0 {
		m.errorMessage = "Clipboard holds no strokes"
		return
	}
	m.pendingStrokes = strokes
	m.pendingName = ""
	if m.ctl.Orbit.Modified() && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmPaste
		return
	}
	m.loadPending()
}

func (m *model) scanTurtleFiles() {
	m.fileList = []string{}
	m.selectedFileIndex = -1

	entries, err := os.ReadDir(m.config.listDirectory())
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), orbit.Ext) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = displayName(m.fileList[0])
	}
}

// displayName strips the extension for the file prompt.
func displayName(file string) string {
	if strings.HasSuffix(strings.ToLower(file), orbit.Ext) {
		return file[:len(file)-len(orbit.Ext)]
	}
	return file
}

func withExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
