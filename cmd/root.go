package cmd

import (
	"fmt"
	"os"

	"github.com/qaudit/qaudit/internal"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	auditDir string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qaudit",
	Short: "View Amazon Q CLI audit log sessions",
	Long: `A CLI tool to locate and display audit log sessions recorded by the
Amazon Q CLI agent.

The agent writes one JSONL file per session (session start/end, user input,
tool invocations). This tool finds that directory, picks the most recent
sessions, and prints each one as a readable timeline.

Quick Start:
  qaudit                   # Transcripts of the 5 most recent sessions
  qaudit list              # Table of all discovered sessions
  qaudit export --latest   # Export the newest session
  qaudit healthcheck       # Verify the audit directory is reachable`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	// Bare invocation is the common case, make it the view command.
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveAuditDir returns the audit directory to scan: the --audit-dir flag
// when set, otherwise the environment probe. The boolean is false when
// nothing resolved; that is absence, not an error.
func resolveAuditDir() (string, bool) {
	if auditDir != "" {
		return auditDir, true
	}
	return internal.FindAuditDir()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&auditDir, "audit-dir", "", "Audit log directory (skips automatic detection)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
