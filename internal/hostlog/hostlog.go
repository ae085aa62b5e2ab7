// Package hostlog is the terminal-facing logger for the nestrace host
// binary. The emulator core never logs anything itself (its only output is
// the trace writer passed into NewConsole); this package exists so cmd/
// code can report ROM-load errors, mapper selection, and per-subsystem
// diagnostics without threading a logger through the core's API.
package hostlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level selects which messages reach the writer.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger writes leveled, timestamped lines to a single writer, with
// independent on/off toggles per subsystem for the noisier debug output.
type Logger struct {
	level  Level
	writer io.Writer
	cpu    bool
	ppu    bool
	apu    bool
	mapper bool
}

var global *Logger

// Init sets up the process-wide logger. filename, if non-empty, opens a
// file for output instead of stdout.
func Init(level Level, filename string) error {
	var w io.Writer = os.Stdout

	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("hostlog: create log file: %w", err)
		}
		w = f
	}

	global = &Logger{level: level, writer: w}
	return nil
}

// EnableCPU toggles per-instruction CPU diagnostics.
func EnableCPU(enabled bool) {
	if global != nil {
		global.cpu = enabled
	}
}

// EnablePPU toggles PPU register diagnostics.
func EnablePPU(enabled bool) {
	if global != nil {
		global.ppu = enabled
	}
}

// EnableAPU toggles APU register diagnostics.
func EnableAPU(enabled bool) {
	if global != nil {
		global.apu = enabled
	}
}

// EnableMapper toggles cartridge mapper diagnostics.
func EnableMapper(enabled bool) {
	if global != nil {
		global.mapper = enabled
	}
}

func write(tag string, format string, args ...interface{}) {
	if global == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(global.writer, "[%s] %s: %s\n", ts, tag, fmt.Sprintf(format, args...))
}

// CPU logs a CPU-subsystem message at debug level, if enabled.
func CPU(format string, args ...interface{}) {
	if global != nil && global.cpu && global.level >= LevelDebug {
		write("CPU", format, args...)
	}
}

// PPU logs a PPU-subsystem message at debug level, if enabled.
func PPU(format string, args ...interface{}) {
	if global != nil && global.ppu && global.level >= LevelDebug {
		write("PPU", format, args...)
	}
}

// APU logs an APU-subsystem message at debug level, if enabled.
func APU(format string, args ...interface{}) {
	if global != nil && global.apu && global.level >= LevelDebug {
		write("APU", format, args...)
	}
}

// Mapper logs a cartridge mapper message at debug level, if enabled.
func Mapper(format string, args ...interface{}) {
	if global != nil && global.mapper && global.level >= LevelDebug {
		write("MAPPER", format, args...)
	}
}

// Info logs a general informational message.
func Info(format string, args ...interface{}) {
	if global != nil && global.level >= LevelInfo {
		write("INFO", format, args...)
	}
}

// Warn logs a warning.
func Warn(format string, args ...interface{}) {
	if global != nil && global.level >= LevelWarn {
		write("WARN", format, args...)
	}
}

// Error logs an error.
func Error(format string, args ...interface{}) {
	if global != nil && global.level >= LevelError {
		write("ERROR", format, args...)
	}
}

// LevelFromString parses a CLI-facing level name, defaulting to LevelInfo
// for anything unrecognized.
func LevelFromString(s string) Level {
	switch s {
	case "off":
		return LevelOff
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Close releases any file opened by Init. Stdout is left alone.
func Close() {
	if global == nil {
		return
	}
	if f, ok := global.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close()
	}
}
