package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/iconsgen"
	"github.com/yacobolo/iconsgen/internal/logging"
)

const (
	defaultConfigFile = ".iconsgen.yaml"
	envPrefix         = "ICONSGEN_"
)

var k = koanf.New(".")

// envSections are the config file sections addressable from the environment
var envSections = map[string]bool{
	"generate": true,
	"verify":   true,
}

// listKeys hold comma-separated values when set from the environment
var listKeys = map[string]bool{
	"generate.source":  true,
	"generate.include": true,
	"generate.exclude": true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, explicitly set flags only)
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, explicitFlags(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	logging.Setup(os.Stderr, getIntWithFallback("verbose", "verbose", 0), !iconsgen.ShouldUseColors(k.Bool("color")))
	return nil
}

// explicitFlags skips flags left at their defaults so they never shadow
// values from the config file or environment
func explicitFlags(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ICONSGEN_* prefix)
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		name := envKey(key)
		if listKeys[name] {
			return name, splitList(value)
		}
		return name, value
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// parserFor picks the koanf parser from the config file extension
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	default:
		return yaml.Parser()
	}
}

// envKey maps an environment variable to a config key:
//
//	ICONSGEN_GENERATE_OUTPUT_DIR -> generate.output-dir
//	ICONSGEN_VERIFY_STRICT       -> verify.strict
//	ICONSGEN_VERBOSE             -> verbose
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && envSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// splitList splits comma-separated values into a slice
func splitList(value string) []string {
	if value == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() iconsgen.Config {
	defaults := iconsgen.DefaultConfig()

	config := iconsgen.Config{
		Sources:        getStringsWithFallback("source", "generate.source", defaults.Sources),
		OutputDir:      getStringWithFallback("output-dir", "generate.output-dir", defaults.OutputDir),
		SCSSFile:       getStringWithFallback("scss-file", "generate.scss-file", defaults.SCSSFile),
		CSSFile:        getStringWithFallback("css-file", "generate.css-file", defaults.CSSFile),
		ReferenceFile:  getStringWithFallback("reference-file", "generate.reference-file", defaults.ReferenceFile),
		Prefix:         getStringWithFallback("prefix", "generate.prefix", defaults.Prefix),
		FontURLPrefix:  getStringWithFallback("font-url-prefix", "generate.font-url-prefix", defaults.FontURLPrefix),
		Include:        getStringsWithFallback("include", "generate.include", nil),
		Exclude:        getStringsWithFallback("exclude", "generate.exclude", nil),
		ReferenceLimit: getIntWithFallback("reference-limit", "generate.reference-limit", defaults.ReferenceLimit),
		Timestamp:      defaults.Timestamp,
		FailOnEmpty:    getBoolWithFallback("fail-on-empty", "generate.fail-on-empty", false),
	}

	// --no-timestamp is the negated flag form of generate.timestamp
	if k.Exists("no-timestamp") {
		config.Timestamp = !k.Bool("no-timestamp")
	} else if k.Exists("generate.timestamp") {
		config.Timestamp = k.Bool("generate.timestamp")
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
