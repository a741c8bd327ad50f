package keyfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Field names a record line.
type Field string

const (
	// FieldString is the line carrying the ciphertext text.
	FieldString Field = "string"
	// FieldKey is the line carrying the key.
	FieldKey Field = "key"
)

// Separator sits between a field name and its value.
const Separator = " : "

var (
	// ErrMissingField is returned when a required field line is absent.
	ErrMissingField = errors.New("missing field")

	// ErrLineBreak is returned when a value would span more than one line.
	ErrLineBreak = errors.New("value contains a line break")
)

// Marker returns the line prefix that introduces f.
func (f Field) Marker() string {
	return string(f) + Separator
}

// Line formats a single newline-terminated record line. Callers writing
// records must Validate value first; Parse stops a value at the line break.
func Line(f Field, value string) []byte {
	return []byte(f.Marker() + value + "\n")
}

// Validate reports whether value fits on a single record line.
func Validate(f Field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &LineBreakError{Field: f}
	}
	return nil
}

// Parse scans each buffer line by line and returns the value of the first
// line that starts with each requested field's marker, ignoring leading
// spaces and tabs. Buffers are scanned
// independently, so a buffer without a trailing newline never merges with
// the next one. Values keep everything after the marker except the line
// terminator.
func Parse(fields []Field, bufs ...[]byte) (map[Field]string, error) {
	values := make(map[Field]string, len(fields))

	for _, buf := range bufs {
		scanner := bufio.NewScanner(bytes.NewReader(buf))
		scanner.Buffer(make([]byte, 0, 4096), len(buf)+1)
		for scanner.Scan() {
			line := strings.TrimLeft(scanner.Text(), " \t")
			for _, f := range fields {
				if _, ok := values[f]; ok {
					continue
				}
				if value, ok := strings.CutPrefix(line, f.Marker()); ok {
					values[f] = strings.TrimSuffix(value, "\r")
				}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
	}

	for _, f := range fields {
		if _, ok := values[f]; !ok {
			return nil, &MissingFieldError{Field: f}
		}
	}
	return values, nil
}

// MissingFieldError reports which field line could not be found.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: no line starting with %q", e.Field.Marker())
}

// Is implements errors.Is for sentinel error matching.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// LineBreakError reports a value that cannot be stored on one line.
type LineBreakError struct {
	Field Field
}

func (e *LineBreakError) Error() string {
	return fmt.Sprintf("%s value contains a line break", e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *LineBreakError) Is(target error) bool {
	return target == ErrLineBreak
}
