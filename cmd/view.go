package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/qaudit/qaudit/internal"
	"github.com/spf13/cobra"
)

var viewLimit int

var (
	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	absenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show transcripts of the most recent sessions",
	Long: `Locate the audit log directory, enumerate session files, and print a
timeline transcript for each of the most recently modified sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		dir, ok := resolveAuditDir()
		if !ok {
			fmt.Fprintln(out, absenceStyle.Render("❌ No audit directory found"))
			return nil
		}

		viewAuditDir(out, dir, viewLimit)
		return nil
	},
}

// viewAuditDir runs discovery and rendering over one resolved directory.
// Absence of session files ends the run with a single line; per-file read
// failures are reported by the loader and never stop the remaining files.
func viewAuditDir(out io.Writer, dir string, limit int) {
	fmt.Fprintf(out, "📁 Audit directory: %s\n", dirStyle.Render(dir))

	files := internal.FindSessionFiles(dir)
	if len(files) == 0 {
		fmt.Fprintln(out, absenceStyle.Render("❌ No session files found"))
		return
	}

	fmt.Fprintf(out, "📊 Found %s session files\n", countStyle.Render(fmt.Sprintf("%d", len(files))))

	for _, sf := range internal.Latest(files, limit) {
		events := internal.LoadSessionEvents(sf.Path)
		internal.RenderSession(out, sf.Path, events)
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVarP(&viewLimit, "limit", "n", 5, "Number of recent sessions to show")
}
