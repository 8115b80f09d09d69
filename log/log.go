package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// EnvPath names the environment variable that enables the diagnostics log.
const EnvPath = "KBICONS_LOG_PATH"

const fileName = "diagnostics_log.txt"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

// ResolveDir picks the log directory. An empty result means logging is off.
func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: KBICONS_LOG_PATH environment variable
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return absolute(envPath)
	}

	return "", nil
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if dir == "" {
		return fmt.Errorf("log directory not set")
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(outDir string, themes []string, jobs int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("out", outDir).
		Str("themes", strings.Join(themes, ",")).
		Int("jobs", jobs).
		Msg("run_start")
}

type RenderMetrics struct {
	Theme    string
	Size     int
	Tier     string
	RenderMs float64
}

func IconRendered(m RenderMetrics) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("theme", m.Theme).
		Int("size", m.Size).
		Str("tier", m.Tier).
		Float64("render_ms", m.RenderMs).
		Msg("icon_rendered")
}

func IconWritten(path string, bytes int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Float64("size_kb", float64(bytes)/1024).
		Msg("icon_written")
}

func RunEnd(count int, totalMs float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Float64("total_ms", totalMs).
		Msg("run_end")
}
