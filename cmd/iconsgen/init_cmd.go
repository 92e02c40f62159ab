package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .iconsgen.yaml config file",
	Long:  `Create a .iconsgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# iconsgen configuration
# Docs: https://github.com/yacobolo/iconsgen

# Shared settings
verbose: 0
color: false

# Generation settings
generate:
  source:
    - "index.d.ts"
  output-dir: .
  scss-file: outlined.scss
  css-file: outlined.css
  reference-file: ICON-REFERENCE.md
  prefix: el
  font-url-prefix: ./
  include: []              # icon name globs, e.g. "arrow_*"
  exclude: []              # gitignore-style, e.g. "*_off" then "!toggle_off"
  reference-limit: 20
  timestamp: true
  fail-on-empty: false

# Verification settings
verify:
  strict: false
  output-format: text      # text | issues | summary | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
