package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents the workspace logger. All observable events (retry
// attempts, parse failures, apply summaries) flow through it.
type Logger struct {
	logger                 *log.Logger
	userInteractionEnabled bool
	jsonMode               bool
	correlationID          string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton instance of Logger, backed by a rotating
// log file under .zor/. It never changes the interaction mode; until
// InitLogger runs, confirmations resolve to their defaults.
func GetLogger() *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".zor/zor.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	if os.Getenv("ZOR_JSON_LOGS") == "1" {
		globalLogger.jsonMode = true
	}
	if cid := os.Getenv("ZOR_CORRELATION_ID"); cid != "" {
		globalLogger.correlationID = cid
	}
	return globalLogger
}

// InitLogger returns the singleton and sets whether confirmation prompts
// wait for the user. Called once per command with the resolved skip-prompt
// flag; component constructors use GetLogger and leave the mode alone.
func InitLogger(skipPrompts bool) *Logger {
	logger := GetLogger()
	logger.userInteractionEnabled = !skipPrompts
	return logger
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

// LogError logs an error only to the log file.
func (w *Logger) LogError(err error) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}

// LogProcessStep logs the current step in a flow and echoes it to stdout.
func (w *Logger) LogProcessStep(step string) {
	w.logger.Printf("Process Step: %s", step)
	fmt.Println(step)
}

// LogUserInteraction logs a message that requires a response and prints it.
func (w *Logger) LogUserInteraction(message string) {
	w.logger.Printf("User Interaction: %s", message)
	fmt.Print(message)
}

// AskForConfirmation prompts the user with a message and waits for a 'yes'
// or 'no' response. Returns the default in non-interactive mode.
func (w *Logger) AskForConfirmation(prompt string, defaultResponse bool) bool {
	if !w.userInteractionEnabled {
		w.Log("Skipping user confirmation in non-interactive mode.")
		return defaultResponse
	}
	reader := bufio.NewReader(os.Stdin)
	for {
		w.LogUserInteraction(fmt.Sprintf("%s (yes/no): ", prompt))
		response, _ := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		switch response {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		default:
			w.LogUserInteraction("Invalid input. Please type 'yes' or 'no'.\n")
		}
	}
}
