package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Requeue strategies for failed reconciles.
const (
	// StrategyFixed requeues every failure after Dispatch.RequeueAfter.
	StrategyFixed = "fixed"
	// StrategyFibonacci requeues after the object's Fibonacci backoff delay.
	StrategyFibonacci = "fibonacci"
)

// DefaultTerminalPatterns are error fragments after which a Failed object is
// not retried until its spec changes.
var DefaultTerminalPatterns = []string{
	"not found in NetBox",
	"Invalid token",
	"403 Forbidden",
}

// Config is the complete operator configuration.
type Config struct {
	NetBox   NetBoxConfig   `mapstructure:"netbox"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Backoff  BackoffConfig  `mapstructure:"backoff"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Startup  StartupConfig  `mapstructure:"startup"`
}

// NetBoxConfig holds connection settings for the NetBox API.
type NetBoxConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retry   RetryConfig   `mapstructure:"retry"`
}

// RetryConfig controls transport level retries of transient NetBox errors.
type RetryConfig struct {
	// MaxAttempts counts every request, the first one included.
	MaxAttempts  int           `mapstructure:"maxAttempts"`
	InitialDelay time.Duration `mapstructure:"initialDelay"`
}

// Retries returns how many times a failed request is repeated.
func (r RetryConfig) Retries() int {
	return max(r.MaxAttempts-1, 0)
}

// WatchConfig restricts which objects are reconciled.
type WatchConfig struct {
	// Namespace limits the watch to one namespace; empty watches all.
	Namespace string `mapstructure:"namespace"`
}

// DispatchConfig controls how change notifications become reconciles.
type DispatchConfig struct {
	Debounce        time.Duration `mapstructure:"debounce"`
	Concurrency     int           `mapstructure:"concurrency"`
	RequeueAfter    time.Duration `mapstructure:"requeueAfter"`
	RequeueStrategy string        `mapstructure:"requeueStrategy"`
}

// BackoffConfig bounds the per-object Fibonacci backoff, in minutes.
type BackoffConfig struct {
	MinMinutes int64 `mapstructure:"minMinutes"`
	MaxMinutes int64 `mapstructure:"maxMinutes"`
}

// TerminalConfig lists the error fragments treated as terminal.
type TerminalConfig struct {
	Patterns []string `mapstructure:"patterns"`
}

// StartupConfig toggles one-off work after the caches have synced.
type StartupConfig struct {
	ReconcilePrefixes bool `mapstructure:"reconcilePrefixes"`
}

type binding struct {
	key   string
	env   string
	flag  string
	value any
}

var bindings = []binding{
	{"netbox.url", "NETBOX_URL", "netbox-url", "http://netbox.netbox:80"},
	{"netbox.token", "NETBOX_TOKEN", "", ""},
	{"netbox.timeout", "NETBOX_TIMEOUT", "netbox-timeout", 30 * time.Second},
	{"netbox.retry.maxAttempts", "NETBOX_RETRY_MAX_ATTEMPTS", "", 3},
	{"netbox.retry.initialDelay", "NETBOX_RETRY_INITIAL_DELAY", "", 500 * time.Millisecond},
	{"watch.namespace", "WATCH_NAMESPACE", "namespace", ""},
	{"dispatch.debounce", "DISPATCH_DEBOUNCE", "debounce", 5 * time.Second},
	{"dispatch.concurrency", "DISPATCH_CONCURRENCY", "concurrency", 3},
	{"dispatch.requeueAfter", "DISPATCH_REQUEUE_AFTER", "requeue-after", 60 * time.Second},
	{"dispatch.requeueStrategy", "DISPATCH_REQUEUE_STRATEGY", "requeue-strategy", StrategyFixed},
	{"backoff.minMinutes", "BACKOFF_MIN_MINUTES", "", int64(1)},
	{"backoff.maxMinutes", "BACKOFF_MAX_MINUTES", "", int64(10)},
	{"terminal.patterns", "TERMINAL_PATTERNS", "", DefaultTerminalPatterns},
	{"startup.reconcilePrefixes", "STARTUP_RECONCILE_PREFIXES", "", true},
}

// Load builds the configuration. When envFile is set the file must exist and
// its values override the process environment. Flags present in fs and
// changed on the command line override everything else; fs may be nil.
func Load(envFile string, fs *pflag.FlagSet) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.value)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
		if fs == nil || b.flag == "" {
			continue
		}
		if f := fs.Lookup(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", b.flag, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.NetBox.URL = strings.TrimRight(strings.TrimSpace(cfg.NetBox.URL), "/")
	cfg.Terminal.Patterns = cleanPatterns(cfg.Terminal.Patterns)
	cfg.Dispatch.RequeueStrategy = strings.ToLower(strings.TrimSpace(cfg.Dispatch.RequeueStrategy))

	return &cfg, nil
}

// RegisterFlags adds the flags understood by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("netbox-url", "", "NetBox base URL (env NETBOX_URL)")
	fs.Duration("netbox-timeout", 0, "NetBox request timeout (env NETBOX_TIMEOUT)")
	fs.String("namespace", "", "Only watch this namespace (env WATCH_NAMESPACE)")
	fs.Duration("debounce", 0, "Debounce window per object (env DISPATCH_DEBOUNCE)")
	fs.Int("concurrency", 0, "Concurrent reconciles per kind (env DISPATCH_CONCURRENCY)")
	fs.Duration("requeue-after", 0, "Fixed requeue delay after a failure (env DISPATCH_REQUEUE_AFTER)")
	fs.String("requeue-strategy", "", "Requeue strategy after a failure: fixed or fibonacci (env DISPATCH_REQUEUE_STRATEGY)")
}

// Summary renders the configuration for display with the token masked.
func (c *Config) Summary() map[string]any {
	token := ""
	if c.NetBox.Token != "" {
		token = "********"
	}
	return map[string]any{
		"netbox": map[string]any{
			"url":     c.NetBox.URL,
			"token":   token,
			"timeout": c.NetBox.Timeout.String(),
			"retry": map[string]any{
				"maxAttempts":  c.NetBox.Retry.MaxAttempts,
				"initialDelay": c.NetBox.Retry.InitialDelay.String(),
			},
		},
		"watch": map[string]any{
			"namespace": c.Watch.Namespace,
		},
		"dispatch": map[string]any{
			"debounce":        c.Dispatch.Debounce.String(),
			"concurrency":     c.Dispatch.Concurrency,
			"requeueAfter":    c.Dispatch.RequeueAfter.String(),
			"requeueStrategy": c.Dispatch.RequeueStrategy,
		},
		"backoff": map[string]any{
			"minMinutes": c.Backoff.MinMinutes,
			"maxMinutes": c.Backoff.MaxMinutes,
		},
		"terminal": map[string]any{
			"patterns": c.Terminal.Patterns,
		},
		"startup": map[string]any{
			"reconcilePrefixes": c.Startup.ReconcilePrefixes,
		},
	}
}

func cleanPatterns(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
