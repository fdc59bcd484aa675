package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
)

// cliConfig is the on-disk shape of ~/.easyappt/config.yml.
type cliConfig struct {
	URL    string `yaml:"url,omitempty"`
	APIKey string `yaml:"api-key,omitempty"`
	Output string `yaml:"output,omitempty"`
	Cache  string `yaml:"cache,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted easyappt configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.APIKey != "" {
				masked.APIKey = constants.SensitiveMask
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(masked)
			case OutputFormatYAML:
				return StandardYAMLRenderer(masked)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("url", valueOrNA(masked.URL))
				_ = table.Append("api-key", valueOrNA(masked.APIKey))
				_ = table.Append("output", valueOrNA(masked.Output))
				_ = table.Append("cache", valueOrNA(masked.Cache))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and persist it.

Supported keys: url, api-key, output, cache.
When setting api-key without a value, the key is read from the terminal
without echoing.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string
			if len(args) == 2 {
				value = args[1]
			}

			if key == "api-key" && value == "" {
				fmt.Fprint(os.Stderr, "API key: ")

				keyBytes, err := term.ReadPassword(syscall.Stdin)

				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				value = string(keyBytes)
			}

			config := loadConfig()

			switch key {
			case "url":
				config.URL = value
			case "api-key":
				config.APIKey = value
			case "output":
				config.Output = value
			case "cache":
				config.Cache = value
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			switch key {
			case "url":
				config.URL = ""
			case "api-key":
				config.APIKey = ""
			case "output":
				config.Output = ""
			case "cache":
				config.Cache = ""
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func configPath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(home, ".easyappt", "config.yml")
}

func loadConfig() *cliConfig {
	config := &cliConfig{}

	data, err := os.ReadFile(configPath())
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveConfig(config *cliConfig) error {
	path := configPath()

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func valueOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
