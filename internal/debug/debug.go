package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEX_DEBUG"

// maxSizeMB is the size at which the debug log is rotated.
const maxSizeMB = 10

var (
	mu       sync.Mutex
	logger   *zap.Logger
	sink     *lumberjack.Logger
	envOnce  sync.Once
	initDone bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	closeLocked()
	sink = &lumberjack.Logger{Filename: path, MaxSize: maxSizeMB, MaxBackups: 3}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(sink), zapcore.DebugLevel)
	logger = zap.New(core).Named("flex")
	initDone = true
	return nil
}

// Logger returns the debug logger. The first call initializes it from
// FLEX_DEBUG; without it the logger discards everything.
func Logger() *zap.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			if !initDone {
				if err := initLocked(path); err != nil {
					fmt.Fprintf(os.Stderr, "debug: %v\n", err)
				}
			}
			mu.Unlock()
		}
	})

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if sink != nil {
		err = sink.Close()
		sink = nil
	}
	initDone = false
	return err
}
