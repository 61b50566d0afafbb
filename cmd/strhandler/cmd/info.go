package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/stringhandler/support"
)

// Set via -ldflags at build time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

func newInfoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Zeigt die Paketinformationen an",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := support.Infos()
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				return printResult(cmd, string(data))
			}

			authors := make([]string, 0, len(info.Authors))
			for _, author := range info.Authors {
				if author.Email != "" {
					authors = append(authors, fmt.Sprintf("%s <%s>", author.Name, author.Email))
				} else {
					authors = append(authors, author.Name)
				}
			}

			rows := []string{
				titleStyle.Render(info.Name) + " " + subtitleStyle.Render("v"+info.Version),
				subtitleStyle.Render(info.Description),
				"",
				infoRow("Version", info.SemVer.String()),
				infoRow("Autoren", strings.Join(authors, ", ")),
				infoRow("Lizenz", info.License),
				infoRow("Homepage", info.Homepage),
			}
			return printResult(cmd, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Ausgabe als JSON")
	return cmd
}

func infoRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label+":"), value)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := support.Infos()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "strhandler v%s\n", info.Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
