package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/qaudit/qaudit/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if qaudit can locate and read audit logs",
	Long: `Check the health of qaudit by verifying:
  • Audit directory detection
  • Session file discovery
  • Readability of the newest session file

This command is useful for debugging environment issues, such as a missing
XDG_DATA_HOME or a snap-confined data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, sectionStyle.Render("🔍 Audit Log Health Check"))
		fmt.Fprintln(out)

		// Step 1: Resolve the audit directory
		fmt.Fprintln(out, infoStyle.Render("Step 1: Detecting audit directory..."))
		dir, ok := resolveAuditDir()
		if !ok {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No audit directory found"))
			fmt.Fprintln(out, "   Checked the snap path and $XDG_DATA_HOME/amazon-q-cli/audit")
			return nil
		}
		fmt.Fprintln(out, successStyle.Render("✅ Audit directory found"))
		if healthcheckVerbose {
			fmt.Fprintf(out, "   Directory: %s\n", dir)
		}
		fmt.Fprintln(out)

		// Step 2: Discover session files
		fmt.Fprintln(out, infoStyle.Render("Step 2: Discovering session files..."))
		files := internal.FindSessionFiles(dir)
		if len(files) == 0 {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No session files found"))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Found %d session file(s)", len(files))))
		if healthcheckVerbose {
			for _, sf := range internal.Latest(files, 5) {
				fmt.Fprintf(out, "   %s (%s)\n", sf.Name(), sf.ModTime.Format("2006-01-02 15:04:05"))
			}
		}
		fmt.Fprintln(out)

		// Step 3: Read the newest file
		fmt.Fprintln(out, infoStyle.Render("Step 3: Reading newest session..."))
		newest := files[0]
		events := internal.LoadSessionEvents(newest.Path)
		if len(events) == 0 {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Newest session file has no readable events"))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Parsed %d event(s) from %s", len(events), newest.Name())))
		if healthcheckVerbose {
			fmt.Fprintf(out, "   Session id: %s\n", events[0].SessionID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "verbose-output", false, "Show detailed path and file information")
}
