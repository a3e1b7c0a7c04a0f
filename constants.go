package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpExportPNG
	FileOpExportPDF
	FileOpExportTXT
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmClear
	ConfirmOpen
	ConfirmPaste
	ConfirmOverwriteFile
	ConfirmRestartReplay
)

const (
	appTitle = "turm"

	defaultWidth       = 480
	defaultHeight      = 480
	defaultScale       = 4 // canvas units per braille dot
	defaultPenWidth    = 15.0
	defaultReplayDelay = 20 * time.Millisecond
	defaultDoubleClick = 400 * time.Millisecond

	replayTickInterval = 50 * time.Millisecond
	fastMoveFactor     = 4
	listRows           = 6
)

const usage = `Left Click: mark
Right Click: release
Shift + Right Click: back and hold
Right Double Click: back and release
Shift + Left Click: redo or re-hold`
