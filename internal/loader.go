package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single audit log line. Tool output is truncated by
// the logger well below this, but user input can be large.
const maxLineBytes = 4 * 1024 * 1024

// LoadSessionEvents reads all events from one session file. Blank lines are
// skipped. The first I/O or JSON error stops loading that file: it is
// reported on stderr and whatever parsed before it is returned. Failure
// never escapes the file boundary, so a bad file cannot abort a run over
// other sessions.
func LoadSessionEvents(path string) []Event {
	return loadSessionEvents(path, os.Stderr)
}

func loadSessionEvents(path string, errw io.Writer) []Event {
	f, err := os.Open(path)
	if err != nil {
		reportReadError(errw, path, err)
		return nil
	}
	defer func() { _ = f.Close() }()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			reportReadError(errw, path, err)
			return events
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		reportReadError(errw, path, err)
	}

	return events
}

func reportReadError(errw io.Writer, path string, err error) {
	_, _ = fmt.Fprintf(errw, "Error reading %s: %v\n", path, err)
}
