package handlers

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/microscaler/netbox-operator/internal/config"
)

// Validate loads and checks the configuration. With printConfig the
// effective configuration is written to out as YAML.
func Validate(envFile string, fs *pflag.FlagSet, printConfig bool, out io.Writer) error {
	cfg, err := loadConfig(envFile, fs)
	if err != nil {
		return err
	}

	if !printConfig {
		_, err = fmt.Fprintf(out, "Configuration is valid (NetBox %s)\n", cfg.NetBox.URL)
		return err
	}

	data, err := yaml.Marshal(cfg.Summary())
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func loadConfig(envFile string, fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(envFile, fs)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
