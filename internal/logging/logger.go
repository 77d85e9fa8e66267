// Package logging emits one JSON object per line on stdout. Every record
// carries level, ts and msg; callers attach request context through
// Fields using the shared field-name constants.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

type Fields map[string]interface{}

// Reserved record keys. Caller fields with the same names are
// overwritten in the emitted record, never in the caller's map.
const (
	keyLevel = "level"
	keyTime  = "ts"
	keyMsg   = "msg"
	keyError = "error"
)

var out = log.New(os.Stdout, "", 0)

// SetOutput redirects the log stream. Tests use it to capture records.
func SetOutput(w io.Writer) {
	out.SetOutput(w)
}

func emit(level, msg string, err error, fields Fields) {
	record := make(Fields, len(fields)+4)
	for k, v := range fields {
		record[k] = v
	}
	record[keyLevel] = level
	record[keyTime] = time.Now().UTC().Format(time.RFC3339)
	record[keyMsg] = msg
	if err != nil {
		record[keyError] = err.Error()
	}
	b, mErr := json.Marshal(record)
	if mErr != nil {
		// fallback to plain logging
		out.Printf("%s: %s (%v)", level, msg, record)
		return
	}
	out.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, nil, fields)
}

// Error logs an error message and includes the error text in the record.
func Error(msg string, err error, fields Fields) {
	emit("error", msg, err, fields)
}

// Fatal logs an unrecoverable error and exits the process. Reserved for
// startup failures.
func Fatal(msg string, err error, fields Fields) {
	emit("fatal", msg, err, fields)
	os.Exit(1)
}
