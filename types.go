package main

import (
	"wireframer/internal/logger"
	"wireframer/internal/wireframe"
)

type model struct {
	width          int
	height         int
	panX           int
	panY           int
	editor         *wireframe.Editor
	exports        wireframe.ExportCache
	config         *Config
	log            logger.Logger
	help           bool
	editCursorPos  int
	errorMessage   string
	successMessage string
	txtName        string
	pngName        string
	writeClipboard func(string) error
	readClipboard  func() (string, error)
}
