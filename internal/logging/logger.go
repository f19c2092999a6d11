// Package logging provides categorized file-based logging for catena.
// Each engine subsystem logs to its own file under the configured log
// directory. Logging is a no-op until Initialize is called with debug mode
// enabled, so library consumers pay nothing by default.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // Initialization
	CategoryHierarchy Category = "hierarchy" // Super-category resolution
	CategoryCache     Category = "cache"     // Closure cache activity
	CategoryBundle    Category = "bundle"    // Bundle registration and composition
	CategoryCoerce    Category = "coerce"    // Operator dispatch
	CategoryKernel    Category = "kernel"    // Introspection kernel
)

// Options controls whether and where log files are written.
type Options struct {
	Debug      bool            // Master switch; false means every logger is a no-op.
	Level      string          // "debug", "info", "warn" or "error". Defaults to "info".
	Dir        string          // Log directory. Defaults to "catena-logs".
	Categories map[string]bool // Per-category enable. Empty means all enabled.
}

var (
	mu      sync.RWMutex
	loggers = make(map[Category]*zap.SugaredLogger)
	files   []*os.File
	opts    Options
	level   zapcore.Level
	ready   bool

	nop = zap.NewNop().Sugar()
)

// Initialize configures the logging directory and level. Call once at
// startup; the zero state (never initialized) is a silent no-op.
func Initialize(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	opts = o
	if opts.Dir == "" {
		opts.Dir = "catena-logs"
	}
	switch opts.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	if !opts.Debug {
		ready = false
		return nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("logging: create log directory: %w", err)
	}
	ready = true
	return nil
}

// IsCategoryEnabled reports whether a category currently produces output.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if !ready {
		return false
	}
	if len(opts.Categories) == 0 {
		return true
	}
	enabled, known := opts.Categories[string(category)]
	if !known {
		return true
	}
	return enabled
}

// Get returns (or creates) the logger for the given category. Disabled
// categories get a shared no-op logger.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}
	if !categoryEnabled(category) {
		return nop
	}

	// Date-prefixed file per category, matches external log rotation.
	date := time.Now().Format("2006-01-02")
	path := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", path, err)
		return nop
	}
	files = append(files, file)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(file), level)
	l := zap.New(core).Sugar().Named(string(category))
	loggers[category] = l
	return l
}

// CloseAll syncs and closes every open log file. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		_ = l.Sync()
	}
	for _, f := range files {
		_ = f.Close()
	}
	loggers = make(map[Category]*zap.SugaredLogger)
	files = nil
	ready = false
}

// Convenience helpers per category. No-ops when the category is disabled.

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

// Hierarchy logs to the hierarchy category.
func Hierarchy(format string, args ...interface{}) {
	Get(CategoryHierarchy).Infof(format, args...)
}

// HierarchyDebug logs debug to the hierarchy category.
func HierarchyDebug(format string, args ...interface{}) {
	Get(CategoryHierarchy).Debugf(format, args...)
}

// CacheDebug logs debug to the cache category.
func CacheDebug(format string, args ...interface{}) {
	Get(CategoryCache).Debugf(format, args...)
}

// Bundle logs to the bundle category.
func Bundle(format string, args ...interface{}) {
	Get(CategoryBundle).Infof(format, args...)
}

// BundleDebug logs debug to the bundle category.
func BundleDebug(format string, args ...interface{}) {
	Get(CategoryBundle).Debugf(format, args...)
}

// CoerceDebug logs debug to the coerce category.
func CoerceDebug(format string, args ...interface{}) {
	Get(CategoryCoerce).Debugf(format, args...)
}

// Kernel logs to the kernel category.
func Kernel(format string, args ...interface{}) {
	Get(CategoryKernel).Infof(format, args...)
}

// KernelDebug logs debug to the kernel category.
func KernelDebug(format string, args ...interface{}) {
	Get(CategoryKernel).Debugf(format, args...)
}
