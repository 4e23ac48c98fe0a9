package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paygate-io/payapi/pkg/payapi"
	"github.com/paygate-io/payapi/pkg/payclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured. Run 'paygate login' or pass --key")
	ErrAmountRequired      = errors.New("amount is required (--amount)")
	ErrCurrencyRequired    = errors.New("currency is required (--currency)")
	ErrDescriptionRequired = errors.New("description is required (--description)")
	ErrPaymentIDRequired   = errors.New("payment id is required (--payment)")
	ErrCustomerIDRequired  = errors.New("customer id is required (--customer)")
	ErrIntervalRequired    = errors.New("interval is required (--interval)")
)

// createClient builds an API client from the effective configuration: flags
// override environment variables, which override the config file.
func createClient() (payapi.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &payapi.Config{
		APIKey:      apiKey,
		APIEndpoint: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newLogger()
	}

	client, err := payclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// newLogger returns a structured logger writing to stderr, so table and JSON
// output on stdout stays machine-readable.
func newLogger() payapi.Logger {
	return &cliLogger{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
		}),
	}
}

type cliLogger struct {
	logger *log.Logger
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, flatten(fields)...)
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, flatten(fields)...)
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, flatten(fields)...)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	keyvals := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		keyvals = append(keyvals, key, value)
	}

	return keyvals
}

// renderEntity writes a single entity in the configured output format. The
// table fallback is rendered by rows, a property per line.
func renderEntity(entity interface{}, rows [][]string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(entity)
		if err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(entity)
		if err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row[0], row[1])
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderList writes a list page in the configured output format.
func renderList(items interface{}, header []string, rows [][]string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(items)
		if err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(items)
		if err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	default:
		table := tablewriter.NewWriter(os.Stdout)

		headerCells := make([]interface{}, len(header))
		for i, cell := range header {
			headerCells[i] = cell
		}

		table.Header(headerCells...)

		for _, row := range rows {
			cells := make([]interface{}, len(row))
			for i, cell := range row {
				cells[i] = cell
			}

			_ = table.Append(cells...)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func formatAmount(amount *payapi.Amount) string {
	if amount == nil {
		return NotAvailable
	}

	return fmt.Sprintf("%s %s", amount.Value, amount.Currency)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatString(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}
