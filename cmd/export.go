package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qaudit/qaudit/internal"
	"github.com/qaudit/qaudit/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportOutput  string
	exportSession string
	exportLatest  bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a session to file",
	Long: `Export one audit session to a structured format (jsonl, md, yaml, json).

Select a session by id (or an unambiguous id prefix) with --session, or take
the most recently modified one with --latest. Use 'qaudit list' to see
available session ids.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportSession == "" && !exportLatest {
			return fmt.Errorf("nothing to export: pass --session <id> or --latest")
		}

		dir, ok := resolveAuditDir()
		if !ok {
			return fmt.Errorf("no audit directory found")
		}

		files := internal.FindSessionFiles(dir)
		if len(files) == 0 {
			return fmt.Errorf("no session files found in %s", dir)
		}

		session, err := selectSession(files)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return exporter.Export(session, cmd.OutOrStdout())
		}

		path := exportOutput
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, fmt.Sprintf("session-%s.%s", session.ID, exporter.Extension()))
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(session, f); err != nil {
			return fmt.Errorf("failed to export session: %w", err)
		}

		internal.LogInfo("Exported session %s to %s", session.ID, path)
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported session %s to %s\n", session.ID, path)
		return nil
	},
}

// selectSession loads candidate files until the requested session is found.
// Files that fail to load are reported by the loader and skipped here.
func selectSession(files []internal.SessionFile) (*internal.Session, error) {
	for _, sf := range files {
		events := internal.LoadSessionEvents(sf.Path)
		session := internal.Summarize(sf.Path, events)
		if session == nil {
			continue
		}
		if exportLatest || strings.HasPrefix(session.ID, exportSession) {
			return session, nil
		}
	}
	if exportLatest {
		return nil, fmt.Errorf("no readable session found")
	}
	return nil, fmt.Errorf("session not found: %s", exportSession)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file or directory (default: stdout)")
	exportCmd.Flags().StringVarP(&exportSession, "session", "s", "", "Session id (or id prefix) to export")
	exportCmd.Flags().BoolVar(&exportLatest, "latest", false, "Export the most recently modified session")
}
