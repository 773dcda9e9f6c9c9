package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	entryHeader = "[Desktop Entry]"
	entryType   = "Application"
)

// ErrMissingHeader is returned by Parse when the document does not start
// with the [Desktop Entry] group.
var ErrMissingHeader = errors.New("missing [Desktop Entry] header")

// Render serializes fields into a Desktop Entry document. Values are written
// verbatim; Icon and Comment lines are omitted when unset.
func Render(fields Fields) []byte {
	var b strings.Builder

	writeLine := func(key, value string) {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte('\n')
	}

	b.WriteString(entryHeader)
	b.WriteByte('\n')
	writeLine("Version", fields.EffectiveVersion())
	writeLine("Type", entryType)
	writeLine("Name", fields.Name)
	writeLine("Exec", fields.Exec)
	if icon, ok := fields.Icon.Get(); ok {
		writeLine("Icon", icon)
	}
	if fields.Comment != "" {
		writeLine("Comment", fields.Comment)
	}

	return []byte(b.String())
}

// Parse reads the [Desktop Entry] group of a launcher file back into Fields.
// Unknown keys are ignored and parsing stops at the next group header.
func Parse(r io.Reader) (Fields, error) {
	var fields Fields

	reader := bufio.NewReader(r)
	lineNo := 0
	inEntry := false

	// Lines are split on '\n' only so values keep any trailing '\r'.
	for atEOF := false; !atEOF; {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			atEOF = true
		} else if err != nil {
			return Fields{}, fmt.Errorf("failed to read entry: %w", err)
		}
		if atEOF && line == "" {
			break
		}

		lineNo++
		line = strings.TrimSuffix(line, "\n")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			if inEntry {
				break
			}
			if trimmed != entryHeader {
				return Fields{}, ErrMissingHeader
			}
			inEntry = true
			continue
		}

		if !inEntry {
			return Fields{}, ErrMissingHeader
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Fields{}, fmt.Errorf("malformed line %d: %q", lineNo, line)
		}

		switch strings.TrimSpace(key) {
		case "Name":
			fields.Name = value
		case "Exec":
			fields.Exec = value
		case "Icon":
			fields.Icon = SomePath(value)
		case "Version":
			fields.Version = value
		case "Comment":
			fields.Comment = value
		}
	}

	if !inEntry {
		return Fields{}, ErrMissingHeader
	}

	return fields, nil
}
