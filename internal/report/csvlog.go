package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/jonathan/smarthire/internal/types"
)

var csvHeader = []string{"Name", "Email", "Role", "Score", "Date"}

const csvTimeLayout = "2006-01-02 15:04:05"

// LogError represents a failure writing to or reading from the CSV log.
type LogError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report log %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report log %s: %s", e.Path, e.Message)
}

func (e *LogError) Unwrap() error {
	return e.Cause
}

// CSVLog is an append-only CSV file of finished interviews. Appends are
// serialized by a mutex; the header row is written only when the file is
// empty, rechecked on every append so an externally truncated file heals
// itself.
type CSVLog struct {
	mu   sync.Mutex
	path string
}

// NewCSVLog creates a log writing to path. The file is created lazily on the
// first append.
func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

// Path returns the backing file path.
func (l *CSVLog) Path() string {
	return l.path
}

// Append writes one report row, creating the file and header as needed.
func (l *CSVLog) Append(r *types.InterviewReport) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &LogError{Path: l.path, Message: "open failed", Cause: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &LogError{Path: l.path, Message: "stat failed", Cause: err}
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return &LogError{Path: l.path, Message: "header write failed", Cause: err}
		}
	}
	row := []string{
		r.CandidateName,
		r.CandidateEmail,
		r.Role,
		strconv.FormatFloat(r.Score, 'f', 2, 64),
		r.CreatedAt.Format(csvTimeLayout),
	}
	if err := w.Write(row); err != nil {
		return &LogError{Path: l.path, Message: "row write failed", Cause: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &LogError{Path: l.path, Message: "flush failed", Cause: err}
	}
	return nil
}

// Raw returns the log file's bytes, header included, under the same mutex
// that guards appends so callers never observe a half-written row. A missing
// file yields nil, not an error.
func (l *CSVLog) Raw() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LogError{Path: l.path, Message: "read failed", Cause: err}
	}
	return data, nil
}

// Entries reads every logged row back, skipping the header. A missing file
// yields an empty slice, not an error.
func (l *CSVLog) Entries() ([][]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LogError{Path: l.path, Message: "open failed", Cause: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &LogError{Path: l.path, Message: "read failed", Cause: err}
	}
	if len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}
