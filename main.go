package main

import (
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"turm/orbit"
	"turm/replay"
	"turm/session"
)

func main() {
	config := loadConfig()

	logFile := config.LogFile
	if env := os.Getenv("TURM_LOG"); env != "" {
		logFile = env
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, appTitle)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := newModel(config)
	if len(os.Args) > 1 {
		m.openFile(os.Args[1])
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func newModel(config *Config) model {
	o := orbit.New(orbit.Point{X: config.Width / 2, Y: config.Height / 2}, false)
	ctl := session.NewController(o)
	ctl.DoubleClickInterval = config.DoubleClick

	drawn := newReplayLayer()
	driver := replay.NewDriver(config.ReplayDelay)
	driver.OnDone = drawn.finish

	return model{
		ctl:               ctl,
		driver:            driver,
		replay:            drawn,
		config:            config,
		canvas:            NewCanvas(config.Width, config.Height, config.Scale),
		selectedFileIndex: -1,
		now:               time.Now,
	}
}

func (m model) Init() tea.Cmd {
	if running, _ := m.replay.state(); running {
		return replayTick()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replayTickMsg:
		return m, m.handleReplayTick()

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg)
			return m, nil
		}
		switch m.mode {
		case ModeFileInput:
			return m, m.handleFileInputKey(msg)
		case ModeConfirm:
			return m, m.handleConfirmKey(msg)
		default:
			return m, m.handleNormalKey(msg)
		}
	}
	return m, nil
}

// handleMouse turns a terminal mouse report into a pointer event. Shift or
// alt is the modifier, since some terminals keep shift-click for selection.
func (m *model) handleMouse(msg tea.MouseMsg) {
	pos, ok := m.mousePoint(msg.X, msg.Y)
	if !ok {
		return
	}
	ev := session.PointerEvent{
		Pos:      pos,
		Modifier: msg.Shift || msg.Alt,
		At:       m.now(),
	}

	switch msg.Button {
	case tea.MouseButtonNone:
		ev.Button = session.ButtonNone
	case tea.MouseButtonLeft:
		ev.Button = session.ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = session.ButtonSecondary
	default:
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = session.ActionPress
	case tea.MouseActionRelease:
		ev.Action = session.ActionRelease
	case tea.MouseActionMotion:
		ev.Action = session.ActionMotion
	default:
		return
	}
	m.apply(ev)
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m.requestQuit()
	case "?":
		m.help = true
		m.helpScroll = 0

	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleNavigation(key)
	case "g":
		m.pointerToPen()

	case " ", "enter":
		m.markAtPointer()
	case "x":
		m.release()
	case "u":
		m.undo()
	case "U":
		m.backAndRelease()
	case "r":
		m.redo()
	case "n":
		m.requestClear()

	case "t":
		return m.startReplay()
	case "T", "esc":
		if running, _ := m.replay.state(); running {
			m.stopReplay()
			m.successMessage = "Test draw stopped"
		}

	case "s":
		m.beginFileInput(FileOpSave)
	case "o":
		m.beginFileInput(FileOpOpen)
	case "e":
		m.beginFileInput(FileOpExportPNG)
	case "E":
		m.beginFileInput(FileOpExportPDF)
	case "V":
		m.beginFileInput(FileOpExportTXT)

	case "y":
		m.copyToClipboard()
	case "p":
		m.pasteFromClipboard()

	case "[":
		m.showPath = !m.showPath
	case "]":
		m.showRedo = !m.showRedo
	}
	return nil
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
		return nil
	case msg.Type == tea.KeyEnter:
		return m.commitFileInput()
	case msg.String() == "up":
		m.selectFile(-1)
		return nil
	case msg.String() == "down":
		m.selectFile(1)
		return nil
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			r := []rune(m.filename)
			m.filename = string(r[:len(r)-1])
		}
		return nil
	case msg.Type == tea.KeySpace:
		m.filename += " "
		return nil
	case msg.Type == tea.KeyRunes:
		m.filename += string(msg.Runes)
		return nil
	}
	return nil
}

// selectFile moves through the open list while the typed name still matches
// a listed file.
func (m *model) selectFile(delta int) {
	if m.fileOp != FileOpOpen || len(m.fileList) == 0 {
		return
	}
	matchesFile := m.filename == ""
	if m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList) {
		matchesFile = matchesFile || m.filename == displayName(m.fileList[m.selectedFileIndex])
	}
	if !matchesFile {
		return
	}
	n := len(m.fileList)
	if m.selectedFileIndex < 0 {
		m.selectedFileIndex = 0
	} else {
		m.selectedFileIndex = (m.selectedFileIndex + delta + n) % n
	}
	m.filename = displayName(m.fileList[m.selectedFileIndex])
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return m.confirm()
	case "n", "N", "esc":
		m.cancelConfirm()
	}
	return nil
}

func (m *model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}
