package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// InitLogger initializes the global zap logger, writing level-tagged lines
// of the form "<timestamp> - <LEVEL> - <message>" to both the given
// append-only log file and the console. If path is empty only the console
// is used. If debug is true, debug-level messages are included.
func InitLogger(path string, debug bool) error {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " - "
	encoder := zapcore.NewConsoleEncoder(encCfg)

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	sink := zapcore.AddSync(os.Stderr)
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		sink = zapcore.NewMultiWriteSyncer(zapcore.AddSync(f), zapcore.AddSync(os.Stderr))
	}

	l := zap.New(zapcore.NewCore(encoder, sink, level))
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l)
	logger = l.Sugar()
	return nil
}

// GetLogger returns the global sugared logger
func GetLogger() *zap.SugaredLogger {
	if logger == nil {
		if err := InitLogger("", false); err != nil {
			panic(err)
		}
	}
	return logger
}
