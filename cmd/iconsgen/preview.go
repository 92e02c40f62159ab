package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yacobolo/iconsgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the icon reference in the terminal",
	Long: `Render the Markdown icon reference for the current sources without writing it.
With --file, render an existing reference document instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("file")
		style, _ := cmd.Flags().GetString("style")
		width, _ := cmd.Flags().GetInt("width")

		var content []byte
		if path != "" {
			// #nosec G304 - path comes from the command line
			data, err := os.ReadFile(path)
			if err != nil {
				return &iconsgen.ReadError{Path: path, Err: err}
			}
			content = data
		} else {
			config := buildGenerateConfig()
			set, _, err := iconsgen.LoadIconSet(config)
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
			content, err = iconsgen.RenderReference(set, config.Options())
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content), style, width))
		return nil
	},
}

func init() {
	f := previewCmd.Flags()
	addSourceFlags(f)
	f.String("prefix", iconsgen.DefaultPrefix, "Class prefix")
	f.String("file", "", "Render an existing reference file")
	f.String("style", "auto", `Glamour style: "dark", "light", "notty", "auto", or a style file path`)
	f.Int("width", 0, "Word wrap width (0 = glamour default)")
}

// renderMarkdown renders markdown for the terminal, falling back to the raw
// text when glamour cannot be configured
func renderMarkdown(content, style string, width int) string {
	var options []glamour.TermRendererOption

	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
