package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"wireframer/internal/logger"
	"wireframer/internal/wireframe"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		rows        int
		cols        int
		style       string
		blank       bool
		printOnly   bool
		output      string
		logFile     string
		logLevel    string
		showVersion bool
		showHelp    bool
	)

	pflag.StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to the YAML config file")
	pflag.IntVarP(&rows, "rows", "r", 0, "Grid rows (8-200, 0=config)")
	pflag.IntVarP(&cols, "cols", "C", 0, "Grid columns (16-400, 0=config)")
	pflag.StringVarP(&style, "style", "s", "", "Line style: ascii or unicode")
	pflag.BoolVar(&blank, "blank", false, "Start with an empty board")
	pflag.BoolVarP(&printOnly, "print", "p", false, "Print the starting scene and exit")
	pflag.StringVarP(&output, "output", "o", "", "File for --print and the save keys (.txt or .png)")
	pflag.StringVar(&logFile, "log-file", "", "Write logs to this file")
	pflag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		fmt.Println("Usage: wireframer [flags]")
		pflag.PrintDefaults()
		return 0
	}
	if showVersion {
		fmt.Printf("wireframer version %s\n", version)
		return 0
	}

	config, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if rows > 0 {
		config.Rows = rows
	}
	if cols > 0 {
		config.Cols = cols
	}
	if style != "" {
		config.Style = style
	}
	if logFile != "" {
		config.LogFile = logFile
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if err := config.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log := logger.Discard
	if config.LogFile != "" {
		level, err := logger.ParseLevel(config.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		l, f, err := logger.OpenFile(config.LogFile, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		log = l
	}

	m, err := newModel(config, log, !blank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if output != "" {
		if strings.HasSuffix(strings.ToLower(output), ".png") {
			m.pngName = output
		} else {
			m.txtName = output
		}
	}
	log.Info("starting", "rows", m.editor.Scene.Rows, "cols", m.editor.Scene.Cols,
		"style", m.editor.Scene.Style.String(), "config", configPath)

	if printOnly {
		if err := printScene(m.editor.Scene, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newModel(config *Config, log logger.Logger, seed bool) (model, error) {
	style, err := wireframe.ParseStyle(config.Style)
	if err != nil {
		return model{}, err
	}
	tool, err := parseTool(config.Tool)
	if err != nil {
		return model{}, err
	}

	scene := wireframe.NewScene(defaultRows, defaultCols, style)
	if seed {
		seedScene(scene)
	}
	editor := wireframe.NewEditor(scene)
	editor.Handle(wireframe.SetGrid{Rows: orDefault(config.Rows, defaultRows), Cols: orDefault(config.Cols, defaultCols)})
	editor.Handle(wireframe.SetTool{Tool: tool})

	return model{
		editor:         editor,
		config:         config,
		log:            log,
		txtName:        defaultTXTName,
		pngName:        defaultPNGName,
		writeClipboard: clipboard.WriteAll,
		readClipboard:  readClipboardText,
	}, nil
}

func orDefault(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}

// seedScene lays out a starter wireframe: two panels over a content area.
func seedScene(s *wireframe.Scene) {
	s.AddBox(2, 2, 22, 7)
	s.AddBox(26, 2, 36, 7)
	s.AddBox(2, 11, 60, 14)
	s.AddText(4, 4, "Login")
	s.AddText(28, 4, "Dashboard")
	s.AddText(4, 13, "Content")
}

var (
	styleToolbar    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	styleToolActive = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Bold(true)
	styleStatus     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("24"))
	styleError      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("24")).Bold(true)
	styleSuccess    = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Background(lipgloss.Color("24"))
	styleHelpTitle  = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	w, h := m.boardSize()
	board := buildBoard(m.editor)
	if m.editor.Edit != nil {
		board.drawEdit(m.editor.Edit, m.editCursorPos)
	}

	lines := make([]string, 0, h+2)
	lines = append(lines, m.toolbarView(w))
	lines = append(lines, board.render(m.panX, m.panY, w, h)...)
	lines = append(lines, m.statusView(w))
	return strings.Join(lines, "\n")
}

func (m model) toolbarView(width int) string {
	var b strings.Builder
	for _, t := range []wireframe.Tool{wireframe.ToolBox, wireframe.ToolText, wireframe.ToolSelect} {
		label := " " + strings.ToUpper(t.String()[:1]) + t.String()[1:] + " "
		if t == m.editor.Tool {
			b.WriteString(styleToolActive.Render(label))
		} else {
			b.WriteString(styleToolbar.Render(label))
		}
	}
	scene := m.editor.Scene
	info := fmt.Sprintf(" │ %s │ %d×%d │ y copy  ^S txt  ^P png  ? help", scene.Style, scene.Rows, scene.Cols)
	used := lipgloss.Width(b.String())
	b.WriteString(styleToolbar.Render(fitWidth(info, width-used)))
	return b.String()
}

// inspector summarises the selection for the status line.
func (m model) inspector() string {
	ed := m.editor
	sel := ed.Selection
	if len(sel) == 0 {
		return "nothing selected"
	}
	if len(sel) > 1 {
		return fmt.Sprintf("%d selected", len(sel))
	}
	switch sel[0].Kind {
	case wireframe.KindBox:
		if b, ok := ed.Scene.Box(sel[0].ID); ok {
			return fmt.Sprintf("box x:%d y:%d w:%d h:%d", b.X, b.Y, b.W, b.H)
		}
	case wireframe.KindText:
		if t, ok := ed.Scene.Text(sel[0].ID); ok {
			return fmt.Sprintf("text x:%d y:%d %q", t.X, t.Y, t.Value)
		}
	}
	return ""
}

func (m model) statusView(width int) string {
	ed := m.editor
	status := fmt.Sprintf(" %s │ %s", strings.ToUpper(ed.State().String()), m.inspector())
	if ed.Edit != nil {
		status = " EDITING │ Enter = save / Esc = cancel"
	}

	switch {
	case m.errorMessage != "":
		return styleError.Render(fitWidth(status+" │ "+m.errorMessage, width))
	case m.successMessage != "":
		return styleSuccess.Render(fitWidth(status+" │ "+m.successMessage, width))
	default:
		return styleStatus.Render(fitWidth(status, width))
	}
}

func (m model) helpView() string {
	helpLines := []string{
		styleHelpTitle.Render("wireframer help"),
		"",
		"Tools:",
		"  b / t / s        Box, Text, Select",
		"  mouse drag       Box: draw a box   Select: move, or marquee on empty space",
		"  shift+click      Select: add or remove from selection",
		"  corner drag      Select: resize the single selected box",
		"",
		"Selection:",
		"  arrows           Move selection 1 cell (shift: 5)",
		"  backspace/del/x  Delete selection",
		"  e                Edit the selected text",
		"  esc              Clear selection",
		"",
		"Text editing:",
		"  enter            Save      esc  Cancel      ctrl+v  Paste",
		"",
		"Board:",
		"  u                Toggle ascii / unicode",
		"  [ ]  { }         Columns -/+ " + fmt.Sprint(colStep) + ", rows -/+ " + fmt.Sprint(rowStep),
		"  h/j/k/l          Pan (shift: faster)",
		"",
		"Export:",
		"  y                Copy to clipboard",
		"  ctrl+s / ctrl+p  Save " + m.txtName + " / " + m.pngName,
		"",
		"  q                Quit        ? / esc  Close help",
	}
	return strings.Join(helpLines, "\n")
}
