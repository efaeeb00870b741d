package internal

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// sessionFilePattern matches the files the audit logger writes, one per
// session.
const sessionFilePattern = "session-*.jsonl"

// SessionFile is a discovered session log file.
type SessionFile struct {
	Path    string
	ModTime time.Time
}

// FindSessionFiles enumerates session log files in dir, newest first. Files
// that cannot be stat'd are skipped. An empty result means no session files
// exist; a missing directory also yields an empty result, callers
// distinguish the two via FindAuditDir.
func FindSessionFiles(dir string) []SessionFile {
	matches, err := filepath.Glob(filepath.Join(dir, sessionFilePattern))
	if err != nil {
		LogDebug("Failed to glob session files in %s: %v", dir, err)
		return nil
	}

	files := make([]SessionFile, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			LogDebug("Skipping %s: %v", path, err)
			continue
		}
		files = append(files, SessionFile{Path: path, ModTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files
}

// Latest returns at most n of the given files. FindSessionFiles already
// orders them newest first.
func Latest(files []SessionFile, n int) []SessionFile {
	if n < 0 || n >= len(files) {
		return files
	}
	return files[:n]
}

// Name returns the base name of the session file.
func (sf SessionFile) Name() string {
	return filepath.Base(sf.Path)
}
