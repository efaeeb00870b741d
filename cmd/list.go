package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/qaudit/qaudit/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	toolsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sessions",
	Long:  `List all session files discovered in the audit log directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		dir, ok := resolveAuditDir()
		if !ok {
			fmt.Fprintln(out, absenceStyle.Render("❌ No audit directory found"))
			return nil
		}

		files := internal.FindSessionFiles(dir)
		if len(files) == 0 {
			fmt.Fprintln(out, headerStyle.Render("📋 No sessions found"))
			return nil
		}

		header := headerStyle.Render(fmt.Sprintf("📋 Found %d session(s)", len(files)))
		fmt.Fprintln(out, header)
		fmt.Fprintln(out)

		// Use tabwriter for aligned columns with better spacing
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)

		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Events")+"\t"+titleStyle.Render("Tools")+"\t"+titleStyle.Render("Modified")+"\t"+titleStyle.Render("File")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

		for _, sf := range files {
			events := internal.LoadSessionEvents(sf.Path)
			session := internal.Summarize(sf.Path, events)
			if session == nil {
				internal.LogDebug("Skipping empty session file %s", sf.Path)
				continue
			}

			// Show short ID (first 8 chars) for readability
			shortID := session.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}

			tools := toolsStyle.Render(strconv.Itoa(session.ToolCount))
			if session.MCPToolCount > 0 {
				tools += dateStyle.Render(fmt.Sprintf(" (%d mcp)", session.MCPToolCount))
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				idStyle.Render(shortID),
				strconv.Itoa(len(session.Events)),
				tools,
				dateStyle.Render(relativeDate(sf.ModTime)),
				sf.Name())
		}

		_ = w.Flush()
		return nil
	},
}

// relativeDate renders a modification time the way humans scan a listing:
// recent files by time of day, older ones by date.
func relativeDate(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
