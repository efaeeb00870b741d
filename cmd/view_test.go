package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/qaudit/qaudit/testutil"
)

func TestViewAuditDir_NoSessionFiles(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	viewAuditDir(&buf, dir, 5)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (directory header + absence line):\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "📁 Audit directory: ") {
		t.Errorf("line 1 = %q, want directory header", lines[0])
	}
	if !strings.Contains(lines[1], "❌ No session files found") {
		t.Errorf("line 2 = %q, want absence line", lines[1])
	}
}

func TestViewAuditDir_RendersOnlyLatestFive(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg"}
	for i, id := range ids {
		path := testutil.CreateSessionFixture(t, dir, id)
		testutil.SetModTime(t, path, base.Add(-time.Duration(i)*time.Hour))
	}

	var buf bytes.Buffer
	viewAuditDir(&buf, dir, 5)
	out := buf.String()

	if !strings.Contains(out, "Found 7") {
		t.Errorf("file count line missing:\n%s", out)
	}
	if got := strings.Count(out, "📋 Session: "); got != 5 {
		t.Errorf("rendered %d sessions, want 5:\n%s", got, out)
	}
	for _, id := range ids[:5] {
		if !strings.Contains(out, "Session: "+id) {
			t.Errorf("latest session %s missing from output", id)
		}
	}
	for _, id := range ids[5:] {
		if strings.Contains(out, "Session: "+id) {
			t.Errorf("old session %s rendered, want it skipped", id)
		}
	}
}

func TestViewAuditDir_SkipsEmptySessionFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSessionFile(t, dir, "session-empty.jsonl", []string{""})
	testutil.CreateSessionFixture(t, dir, "real")

	var buf bytes.Buffer
	viewAuditDir(&buf, dir, 5)
	out := buf.String()

	if got := strings.Count(out, "📋 Session: "); got != 1 {
		t.Errorf("rendered %d sessions, want 1 (empty file silently skipped):\n%s", got, out)
	}
	if !strings.Contains(out, "Found 2") {
		t.Errorf("both files should still be counted:\n%s", out)
	}
}

func TestViewCommand_ExplicitAuditDir(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateSessionFixture(t, dir, "cli")

	out := &bytes.Buffer{}
	rootCmd.SetArgs([]string{"view", "--audit-dir", dir})
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { auditDir = "" }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("view command error = %v", err)
	}
	if !strings.Contains(out.String(), "Session: cli") {
		t.Errorf("view output missing transcript:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Total tools: 1 (MCP: 0)") {
		t.Errorf("view output missing tool footer:\n%s", out.String())
	}
}
