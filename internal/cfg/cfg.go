package cfg

import (
	"errors"
	"flag"
	"fmt"
)

// Config adds lifeline-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds           int
	ShutdownBudgetSeconds  int
	APIPort                int
	ClaudeAPIKey           string
	ClaudeModel            string
	ClassifyTimeoutSeconds int
	DatabaseURL            string
	SlackWebhookURL        string
	DefaultLat             float64
	DefaultLng             float64
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 60, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 90, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "API listen TCP port (1..65535)")
	fs.StringVar(&c.ClaudeAPIKey, "claude-api-key", "", "API key for the Claude LLM provider (empty = rule-based classification only)")
	fs.StringVar(&c.ClaudeModel, "claude-model", "claude-sonnet-4-20250514", "Claude model to use")
	fs.IntVar(&c.ClassifyTimeoutSeconds, "classify-timeout-seconds", 3, "timeout for a single AI classification call (1..30)")
	fs.StringVar(&c.DatabaseURL, "database-url", "", "PostgreSQL connection URL (empty = in-memory store)")
	fs.StringVar(&c.SlackWebhookURL, "slack-webhook-url", "", "Slack webhook URL for alert notifications")
	fs.Float64Var(&c.DefaultLat, "default-lat", 28.61, "stub latitude for submissions without coordinates")
	fs.Float64Var(&c.DefaultLng, "default-lng", 77.20, "stub longitude for submissions without coordinates")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	// Classification must stay bounded so the fallback path is reached quickly
	if c.ClassifyTimeoutSeconds <= 0 || c.ClassifyTimeoutSeconds > 30 {
		errs = append(errs, fmt.Errorf("invalid CLASSIFY_TIMEOUT_SECONDS %d (must be 1..30)", c.ClassifyTimeoutSeconds))
	}

	// A key without a model (or vice versa via flag override) is a misconfiguration
	if c.ClaudeAPIKey != "" && c.ClaudeModel == "" {
		errs = append(errs, errors.New("CLAUDE_MODEL is required when CLAUDE_API_KEY is set"))
	}

	if c.DefaultLat < -90 || c.DefaultLat > 90 {
		errs = append(errs, fmt.Errorf("invalid DEFAULT_LAT %g (must be -90..90)", c.DefaultLat))
	}
	if c.DefaultLng < -180 || c.DefaultLng > 180 {
		errs = append(errs, fmt.Errorf("invalid DEFAULT_LNG %g (must be -180..180)", c.DefaultLng))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
