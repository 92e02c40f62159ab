package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/iconsgen"
)

var errVerifyFailed = errors.New("generated files are out of date")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check generated files against the sources",
	Long: `Re-read the sources and the three generated files and check that every
file declares exactly the current icon set, with matching class names.
Exits 1 on errors, or on any issue with --strict (CI mode).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runVerify(buildGenerateConfig())
	},
}

func init() {
	f := verifyCmd.Flags()
	addSourceFlags(f)
	addOutputFlags(f)
	f.Bool("strict", false, "Exit 1 on any issue, including warnings")
	f.String("output-format", "text", "Output format: text|issues|summary|json")
}

// runVerify is shared between `iconsgen verify` and `iconsgen generate --check`.
func runVerify(config iconsgen.Config) error {
	result, err := iconsgen.Verify(config)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format, err := iconsgen.DetermineOutputFormat(getStringWithFallback("output-format", "verify.output-format", "text"))
	if err != nil {
		return err
	}

	if !quiet {
		useColors := format != iconsgen.OutputJSON && iconsgen.ShouldUseColors(k.Bool("color"))
		if err := iconsgen.WriteVerifyOutput(os.Stdout, result, format, useColors); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// Exit code logic: errors always fail, warnings only in strict mode
	strict := getBoolWithFallback("strict", "verify.strict", false)
	if result.ErrorCount > 0 || (strict && len(result.Issues) > 0) {
		return errVerifyFailed
	}

	return nil
}
