package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/iconsgen"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the icon set extracted from the sources",
	Long:  `Print every icon name, deduplicated and sorted, one per line. With --classes each line also shows the derived class name.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := buildGenerateConfig()

		set, result, err := iconsgen.LoadIconSet(config)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return iconsgen.WriteIconsJSON(os.Stdout, set, config.Prefix, result)
		}

		classes, _ := cmd.Flags().GetBool("classes")
		for _, name := range set {
			if classes {
				fmt.Printf("%s\t.%s\n", name, iconsgen.ClassName(config.Prefix, name))
				continue
			}
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	f := listCmd.Flags()
	addSourceFlags(f)
	f.String("prefix", iconsgen.DefaultPrefix, "Class prefix")
	f.Bool("classes", false, "Show derived class names")
	f.Bool("json", false, "Print as JSON")
}
