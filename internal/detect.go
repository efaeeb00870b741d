package internal

import (
	"os"
	"path/filepath"
)

// auditSuffix is the fixed location of the audit log directory relative to
// the base data directory.
var auditSuffix = filepath.Join("amazon-q-cli", "audit")

// FindAuditDir resolves the audit log directory for the current environment.
// Candidates are probed in priority order: the snap-confined VS Code data
// directory first, then the XDG data directory (XDG_DATA_HOME, defaulting to
// ~/.local/share). The boolean is false when no candidate exists; absence is
// not an error.
func FindAuditDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		LogDebug("Failed to resolve home directory: %v", err)
		return "", false
	}
	return findAuditDir(home, os.Getenv)
}

func findAuditDir(home string, getenv func(string) string) (string, bool) {
	// Snap confinement relocates the data directory under a versioned
	// revision segment, hence the glob.
	snapPattern := filepath.Join(home, "snap", "code", "*", ".local", "share", auditSuffix)
	if matches, err := filepath.Glob(snapPattern); err == nil && len(matches) > 0 {
		return matches[0], true
	}

	xdgData := getenv("XDG_DATA_HOME")
	if xdgData == "" {
		xdgData = filepath.Join(home, ".local", "share")
	}
	standard := filepath.Join(xdgData, auditSuffix)
	if info, err := os.Stat(standard); err == nil && info.IsDir() {
		return standard, true
	}

	return "", false
}
