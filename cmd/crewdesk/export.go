package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"crewdesk/internal/export"
)

var (
	exportFormat string
	exportOutput string
	resetYes     bool
)

// exportCmd dumps every persisted collection without starting the console.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all collections as JSON or an HTML report",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := collectSnapshot()
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOutput, err)
			}
			defer f.Close()
			out = f
		}

		switch exportFormat {
		case "", "json":
			return snap.WriteJSON(out)
		case "html":
			return snap.WriteHTML(out)
		default:
			return fmt.Errorf("unknown format %q (json, html)", exportFormat)
		}
	},
}

// reportCmd renders the finance summary to the terminal.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a finance summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := collectSnapshot()
		if err != nil {
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Plain markdown still reads fine.
			fmt.Println(snap.Markdown())
			return nil
		}
		rendered, err := renderer.Render(snap.Markdown())
		if err != nil {
			fmt.Println(snap.Markdown())
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// resetCmd clears every persisted collection.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all persisted collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Print("Tout supprimer ? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Annulé.")
				return nil
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Clear(); err != nil {
			return err
		}
		fmt.Println("Toutes les données ont été supprimées.")
		return nil
	},
}

func collectSnapshot() (*export.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return export.Collect(st)
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or html")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
