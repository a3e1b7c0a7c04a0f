package main

import (
	"time"

	"turm/orbit"
	"turm/replay"
	"turm/session"
)

type model struct {
	width  int
	height int

	ctl    *session.Controller
	driver *replay.Driver
	replay *replayLayer
	config *Config
	canvas *Canvas

	mode       Mode
	help       bool
	helpScroll int
	showPath   bool
	showRedo   bool

	// filename is the name being typed; current is the file the orbit was
	// last loaded from or saved to.
	filename          string
	current           string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation

	confirmAction  ConfirmAction
	pendingStrokes []orbit.Stroke
	pendingName    string

	lastOp         session.Op
	errorMessage   string
	successMessage string

	now func() time.Time
}

type replayTickMsg struct{}
