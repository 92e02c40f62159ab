package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/iconsgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate icon stylesheets and the icon reference",
	Long: `Extract icon names from the source type definitions and write
the SCSS source, the plain CSS stylesheet and the Markdown reference.
Existing files are replaced atomically.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	addSourceFlags(f)
	addOutputFlags(f)
	f.String("font-url-prefix", "./", "Prefix for woff2 URLs in @font-face src")
	f.Int("reference-limit", iconsgen.DefaultReferenceLimit, "Icons shown in the reference usage table")
	f.Bool("no-timestamp", false, "Omit Generated: header lines (reproducible output)")
	f.Bool("fail-on-empty", false, "Fail when no icon names are extracted")
	f.Bool("check", false, "Run verify after generation")
}

// addSourceFlags registers the flags that decide which icons are read
func addSourceFlags(f *pflag.FlagSet) {
	f.StringSlice("source", []string{"index.d.ts"}, "Source type definition files (glob patterns)")
	f.StringSlice("include", nil, "Only keep icons matching these globs (e.g. arrow_*)")
	f.StringSlice("exclude", nil, "Drop icons matching these gitignore-style patterns")
}

// addOutputFlags registers the flags that locate the generated files
func addOutputFlags(f *pflag.FlagSet) {
	f.String("output-dir", ".", "Output directory for generated files")
	f.String("scss-file", "outlined.scss", "SCSS output file name")
	f.String("css-file", "outlined.css", "CSS output file name")
	f.String("reference-file", "ICON-REFERENCE.md", "Markdown reference file name")
	f.String("prefix", iconsgen.DefaultPrefix, "Class prefix")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)

	var reporter *iconsgen.Reporter
	if !quiet {
		reporter = iconsgen.NewReporter(os.Stdout, iconsgen.ShouldUseColors(k.Bool("color")))
	}

	result, err := iconsgen.Generate(config, reporter)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	reporter.Warnings(result.Warnings)

	// Run verify after generate if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runVerify(config)
	}

	return nil
}
