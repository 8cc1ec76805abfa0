// Package translog implements the append-only CSV translation log.
//
// Writes are serialized by a mutex so concurrent submissions cannot
// interleave rows. Embedded newlines in text fields are flattened to a
// literal " | " separator so every record stays on one logical line.
package translog

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/frndlabs/gobhasha"
)

const timeLayout = "2006-01-02 15:04:05"

var header = []string{"Input Language", "Output Language", "Input Text", "Output Text", "Timestamp"}

// CSVLogger appends translation records to a flat CSV file, creating
// it with a header row on first write.
type CSVLogger struct {
	path string
	mu   sync.Mutex
}

// NewCSVLogger creates a logger writing to the given path. The file is
// not touched until the first append.
func NewCSVLogger(path string) *CSVLogger {
	return &CSVLogger{path: path}
}

// Path returns the log file location.
func (l *CSVLogger) Path() string {
	return l.path
}

// Append writes one record to the log, creating the file with a header
// if it does not exist yet.
func (l *CSVLogger) Append(rec gobhasha.LogRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &gobhasha.LogError{Message: "failed to open log file", Cause: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return &gobhasha.LogError{Message: "failed to write log header", Cause: err}
		}
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	row := []string{
		rec.SourceLang,
		rec.TargetLang,
		flatten(rec.Input),
		flatten(rec.Output),
		ts.Format(timeLayout),
	}
	if err := w.Write(row); err != nil {
		return &gobhasha.LogError{Message: "failed to write log row", Cause: err}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &gobhasha.LogError{Message: "failed to flush log", Cause: err}
	}
	return nil
}

// ReadAll returns every record in the log. A missing file yields an
// empty slice.
func (l *CSVLogger) ReadAll() ([]gobhasha.LogRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readLocked()
}

// ExportCSV returns the raw log file contents. A missing file yields
// just the header row.
func (l *CSVLogger) ExportCSV() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return headerBytes(), nil
	}
	if err != nil {
		return nil, &gobhasha.LogError{Message: "failed to read log file", Cause: err}
	}
	return data, nil
}

// MonthCSV returns a CSV holding only the rows whose timestamp falls
// in the calendar month of now. Rows lacking a parseable timestamp are
// legacy data: they are kept and backfilled with now.
func (l *CSVLogger) MonthCSV(now time.Time) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readLocked()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, &gobhasha.LogError{Message: "failed to write export header", Cause: err}
	}

	for _, rec := range records {
		ts := rec.Timestamp
		if ts.IsZero() {
			ts = now
		}
		if ts.Year() != now.Year() || ts.Month() != now.Month() {
			continue
		}
		row := []string{rec.SourceLang, rec.TargetLang, rec.Input, rec.Output, ts.Format(timeLayout)}
		if err := w.Write(row); err != nil {
			return nil, &gobhasha.LogError{Message: "failed to write export row", Cause: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, &gobhasha.LogError{Message: "failed to flush export", Cause: err}
	}
	return buf.Bytes(), nil
}

func (l *CSVLogger) readLocked() ([]gobhasha.LogRecord, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &gobhasha.LogError{Message: "failed to open log file", Cause: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Legacy rows may be short

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &gobhasha.LogError{Message: "failed to parse log file", Cause: err}
	}

	var records []gobhasha.LogRecord
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		rec := gobhasha.LogRecord{}
		if len(row) > 0 {
			rec.SourceLang = row[0]
		}
		if len(row) > 1 {
			rec.TargetLang = row[1]
		}
		if len(row) > 2 {
			rec.Input = row[2]
		}
		if len(row) > 3 {
			rec.Output = row[3]
		}
		if len(row) > 4 {
			if ts, err := time.ParseInLocation(timeLayout, row[4], time.Local); err == nil {
				rec.Timestamp = ts
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " | ")
	s = strings.ReplaceAll(s, "\n", " | ")
	return s
}

func headerBytes() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(header)
	w.Flush()
	return buf.Bytes()
}

// Verify CSVLogger implements the pipeline interface
var _ gobhasha.Logger = (*CSVLogger)(nil)
