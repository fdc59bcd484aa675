// Package commands implements the easyappt CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
	"github.com/voctra-ai/easy-appointments-client/pkg/eaclient"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrAPIURLRequired   = errors.New("API base URL is required (use --url, EASYAPPT_URL, or 'easyappt config set url')")
	ErrAPIKeyRequired   = errors.New("API key is required (use --api-key, EASYAPPT_API_KEY, or 'easyappt config set api-key')")
	ErrInputFileOrJSON  = errors.New("provide the record with --from-file or as a JSON argument")
	ErrConfigKeyUnknown = errors.New("unknown config key")

	ErrAppointmentNotFound = errors.New("appointment not found")
)

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (easyappointments.Client, error) {
	baseURL := viper.GetString("url")
	if baseURL == "" {
		return nil, ErrAPIURLRequired
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &easyappointments.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = easyappointments.NewZerologAdapter(newConsoleLogger())
	}

	cache, err := buildCache()
	if err != nil {
		return nil, err
	}

	config.Cache = cache

	client, err := eaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// newConsoleLogger builds a zerolog logger writing to stderr, with colored
// console output when stderr is a terminal.
func newConsoleLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		writer := zerolog.ConsoleWriter{Out: os.Stderr}

		return zerolog.New(writer).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// buildCache resolves the --cache flag into a cache backend. "none" is the
// CLI default: each invocation is a fresh process, so only the shared NATS
// backend survives between runs anyway.
func buildCache() (easyappointments.Cache, error) {
	switch easyappointments.CacheType(viper.GetString("cache")) {
	case easyappointments.CacheTypeNone, "":
		return nil, nil

	case easyappointments.CacheTypeMemory:
		return easyappointments.NewMemoryCache(constants.DefaultCacheSize), nil

	case easyappointments.CacheTypeNATS:
		cache, err := easyappointments.NewNATSKVCache(&easyappointments.NATSKVConfig{
			URL: viper.GetString("nats-url"),
			TTL: constants.DefaultCacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting cache: %w", err)
		}

		return cache, nil

	default:
		return nil, fmt.Errorf("%w: %s", easyappointments.ErrUnsupportedCacheType, viper.GetString("cache"))
	}
}

// StandardJSONRenderer writes the data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes the data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}

// loadRecord decodes a create/update payload either from --from-file (JSON
// or YAML, by extension) or from an inline JSON argument.
func loadRecord[T any](fromFile string, args []string) (*T, error) {
	var record T

	switch {
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fromFile, err)
		}

		if isYAMLFile(fromFile) {
			err = yaml.Unmarshal(data, &record)
		} else {
			err = json.Unmarshal(data, &record)
		}

		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", fromFile, err)
		}

	case len(args) > 0:
		err := json.Unmarshal([]byte(args[0]), &record)
		if err != nil {
			return nil, fmt.Errorf("parsing inline JSON: %w", err)
		}

	default:
		return nil, ErrInputFileOrJSON
	}

	return &record, nil
}

func isYAMLFile(path string) bool {
	for _, suffix := range []string{".yml", ".yaml"} {
		if len(path) > len(suffix) && path[len(path)-len(suffix):] == suffix {
			return true
		}
	}

	return false
}

// fullName joins a first and last name for table output.
func fullName(first, last string) string {
	switch {
	case first == "" && last == "":
		return NotAvailable
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
