// Package main resolves a consumer configuration and prints the property
// payload that would be handed to the broker client, one key=value pair per
// line in sorted key order. Dependencies are wired with samber/do v2.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/kafconf"
	"github.com/jsamuelsen11/kafconf/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		filePath = flag.String("file", "",
			"config file to resolve; falls back to $"+kafconf.EnvConfigFile+" precedence when empty")
		resource = flag.String("resource", "",
			"named resource to resolve instead of a file")
		noDefaults = flag.Bool("no-defaults", false,
			"do not merge the built-in defaults underlay; the source must supply every required key")
		envOverrides = flag.Bool("env-overrides", false,
			"overlay KAFKA_CONSUMER_* environment variables before extraction")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := logging.New(*logLevel, "text", os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, logger)
	do.Provide(injector, func(do.Injector) (kafconf.Settings, error) {
		return resolveSettings(*filePath, *resource, *noDefaults, *envOverrides)
	})

	settings, err := do.Invoke[kafconf.Settings](injector)
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}

	props := settings.Properties()
	logger.Debug("resolved consumer configuration", slog.Any("properties", props))

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, props[key])
	}

	logger.Info("rendered broker properties", slog.Int("keys", len(keys)))
	return nil
}

// resolveSettings picks the entry point: explicit flags first, then the
// resolver's own env-driven precedence.
func resolveSettings(filePath, resource string, noDefaults, envOverrides bool) (kafconf.Settings, error) {
	var opts []kafconf.Option
	if noDefaults {
		opts = append(opts, kafconf.WithoutDefaults())
	}
	if envOverrides {
		opts = append(opts, kafconf.WithEnvOverrides())
	}

	switch {
	case filePath != "":
		return kafconf.FromFile(filePath, opts...)
	case resource != "":
		return kafconf.FromResource(resource, opts...)
	default:
		return kafconf.Resolve(opts...)
	}
}
