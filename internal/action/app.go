package action

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// MissingAppName is returned when a generic launch phrase names no application
const MissingAppName = "Please specify which application to open"

// appCommands maps logical application names to argv per GOOS
var appCommands = map[string]map[string][]string{
	"calculator": {
		"windows": {"calc.exe"},
		"darwin":  {"open", "-a", "Calculator"},
		"linux":   {"gnome-calculator"},
	},
	"notepad": {
		"windows": {"notepad.exe"},
		"darwin":  {"open", "-a", "TextEdit"},
		"linux":   {"gedit"},
	},
	"file manager": {
		"windows": {"explorer.exe"},
		"darwin":  {"open", "-a", "Finder"},
		"linux":   {"nautilus"},
	},
	"browser": {
		"windows": {"cmd", "/C", "start", "chrome"},
		"darwin":  {"open", "-a", "Google Chrome"},
		"linux":   {"google-chrome"},
	},
}

// StartFunc starts a process without waiting for it to exit
type StartFunc func(argv []string) error

// Launcher opens local applications through the per-platform command table
type Launcher struct {
	goos   string
	start  StartFunc
	logger *zap.Logger
}

// NewLauncher creates a launcher for the running platform
func NewLauncher(logger *zap.Logger) *Launcher {
	return NewLauncherFor(runtime.GOOS, startDetached, logger)
}

// NewLauncherFor creates a launcher for an explicit platform and start function
func NewLauncherFor(goos string, start StartFunc, logger *zap.Logger) *Launcher {
	return &Launcher{
		goos:   goos,
		start:  start,
		logger: logger.With(zap.String("component", "action.launcher"), zap.String("goos", goos)),
	}
}

// Command returns the argv for app on this launcher's platform
func (l *Launcher) Command(app string) ([]string, bool) {
	platforms, ok := appCommands[strings.ToLower(app)]
	if !ok {
		return nil, false
	}
	argv, ok := platforms[l.goos]
	return argv, ok
}

// Open launches app and reports the outcome as a user-facing sentence.
// Unknown names or unsupported platforms never spawn anything.
func (l *Launcher) Open(app string) string {
	argv, ok := l.Command(app)
	if !ok {
		l.logger.Info("application not supported", zap.String("app", app))
		return fmt.Sprintf("Application '%s' not found or not supported", app)
	}

	if err := l.start(argv); err != nil {
		l.logger.Warn("application launch failed", zap.String("app", app), zap.Error(err))
		return fmt.Sprintf("Error opening application: %v", err)
	}

	l.logger.Info("application launched", zap.String("app", app), zap.Strings("argv", argv))
	return fmt.Sprintf("Opening %s", app)
}

// startDetached starts argv and reaps it in the background
func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
