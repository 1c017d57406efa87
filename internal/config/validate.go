package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors that would prevent the
// operator from starting.
func (c *Config) Validate() error {
	var errs []error

	if c.NetBox.Token == "" {
		errs = append(errs, errors.New("netbox token is required (set NETBOX_TOKEN)"))
	}
	if err := validateURL(c.NetBox.URL); err != nil {
		errs = append(errs, err)
	}
	if c.NetBox.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("netbox timeout must be positive, got %s", c.NetBox.Timeout))
	}
	if c.NetBox.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("netbox retry max attempts must be at least 1, got %d", c.NetBox.Retry.MaxAttempts))
	}
	if c.NetBox.Retry.InitialDelay < 0 {
		errs = append(errs, fmt.Errorf("netbox retry initial delay must not be negative, got %s", c.NetBox.Retry.InitialDelay))
	}

	if c.Dispatch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Dispatch.Debounce))
	}
	if c.Dispatch.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Dispatch.Concurrency))
	}
	if c.Dispatch.RequeueAfter <= 0 {
		errs = append(errs, fmt.Errorf("requeue delay must be positive, got %s", c.Dispatch.RequeueAfter))
	}
	switch c.Dispatch.RequeueStrategy {
	case StrategyFixed, StrategyFibonacci:
	default:
		errs = append(errs, fmt.Errorf("unknown requeue strategy %q (expected %s or %s)",
			c.Dispatch.RequeueStrategy, StrategyFixed, StrategyFibonacci))
	}

	if c.Backoff.MinMinutes < 1 {
		errs = append(errs, fmt.Errorf("backoff min minutes must be at least 1, got %d", c.Backoff.MinMinutes))
	}
	if c.Backoff.MaxMinutes < c.Backoff.MinMinutes {
		errs = append(errs, fmt.Errorf("backoff max minutes (%d) must not be below min minutes (%d)",
			c.Backoff.MaxMinutes, c.Backoff.MinMinutes))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid netbox url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid netbox url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid netbox url %q: missing host", raw)
	}
	return nil
}
