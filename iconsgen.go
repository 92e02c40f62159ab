// Package iconsgen generates icon class stylesheets from Material Symbols
// type definitions.
//
// iconsgen reads the quoted icon names out of the Material Symbols
// index.d.ts, deduplicates and sorts them, and writes three artifacts:
// an SCSS source file, a plain CSS file and a Markdown reference.
//
// # Generation
//
//	config := iconsgen.DefaultConfig()
//	config.Sources = []string{"node_modules/material-symbols/index.d.ts"}
//	config.OutputDir = "web/icons"
//	result, err := iconsgen.Generate(config, iconsgen.NewReporter(os.Stdout, false))
//
// Each icon becomes one class. With the default "el" prefix:
//
//   - face           → .el-face
//   - account_circle → .el-account-circle
//
// # Extraction
//
// Extraction is lexical: every double-quoted substring in a source file is
// taken as an icon name, the TypeScript grammar is never parsed. If the
// source format changes, unrelated quoted strings will show up as icons.
// Use the Include and Exclude filters to narrow the set.
//
// # Verification
//
// Verify re-reads the generated files and checks that every artifact
// declares exactly the icon set the sources produce:
//
//	result, err := iconsgen.Verify(config)
//
// # CLI Tool
//
//	go install github.com/yacobolo/iconsgen/cmd/iconsgen@latest
//
// Running iconsgen without arguments generates all three files using
// .iconsgen.yaml (if present) and the built-in defaults.
package iconsgen
