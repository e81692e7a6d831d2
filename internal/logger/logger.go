package logger

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muliwe/go-sign-classifier/internal/classifier"
)

// LogEntry represents a single recorded classification
type LogEntry struct {
	Timestamp      time.Time                 `json:"timestamp"`
	RunID          string                    `json:"run_id"`
	Input          int                       `json:"input"`
	Classification classifier.Classification `json:"classification"`
	Message        string                    `json:"message"`
}

// Logger records classification results as JSON lines
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	encoder *json.Encoder
}

// Config holds logger configuration
type Config struct {
	LogDir   string // Directory for log files
	FileName string // Log file name (default: results.jsonl)
	Stdout   bool   // Also write to stdout
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		LogDir:   "logs",
		FileName: "results.jsonl",
		Stdout:   false,
	}
}

// ConfigFromPath builds a Config that records to the given file path
func ConfigFromPath(path string) Config {
	cfg := DefaultConfig()
	cfg.LogDir = filepath.Dir(path)
	cfg.FileName = filepath.Base(path)
	return cfg
}

// New creates a new logger instance
func New(cfg Config) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(cfg.LogDir, cfg.FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	var writer io.Writer = file
	if cfg.Stdout {
		writer = io.MultiWriter(file, os.Stdout)
	}

	return &Logger{
		file:    file,
		encoder: json.NewEncoder(writer),
	}, nil
}

// NewWriter creates a logger that encodes entries to w without owning a file
func NewWriter(w io.Writer) *Logger {
	return &Logger{encoder: json.NewEncoder(w)}
}

// Log writes a single entry
func (l *Logger) Log(entry LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.encoder.Encode(entry)
}

// Record logs a classification result under the given run ID
func (l *Logger) Record(runID string, result classifier.Result) error {
	return l.Log(LogEntry{
		Timestamp:      time.Now().UTC(),
		RunID:          runID,
		Input:          result.Input,
		Classification: result.Classification,
		Message:        result.Message,
	})
}

// Close closes the logger
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// LogPath returns the path to the log file
func (l *Logger) LogPath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}
