package kafconf

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	fsprov "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yaml
var builtinFS embed.FS

// DefaultsResource names the built-in default source within the resource
// filesystem.
const DefaultsResource = "defaults.yaml"

const (
	// RootKey prefixes every recognized key in a source tree.
	RootKey = "kafka.consumer"

	// EnvConfigFile and EnvConfigResource steer Resolve toward an external
	// source. At most one is honored, file first.
	EnvConfigFile     = "KAFCONF_CONFIG_FILE"
	EnvConfigResource = "KAFCONF_CONFIG_RESOURCE"

	// envOverridePrefix marks environment variables that overlay individual
	// keys when WithEnvOverrides is enabled, e.g. KAFKA_CONSUMER_GROUP_ID.
	envOverridePrefix = "KAFKA_CONSUMER_"
)

// Option configures a resolve call.
type Option func(*loadOptions)

type loadOptions struct {
	includeDefaults bool
	resourceFS      fs.FS
	envOverrides    bool
}

func newLoadOptions(opts []Option) *loadOptions {
	o := &loadOptions{
		includeDefaults: true,
		resourceFS:      builtinFS,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithoutDefaults skips the built-in defaults underlay. The user source alone
// must then supply every required key or extraction fails.
func WithoutDefaults() Option {
	return func(o *loadOptions) {
		o.includeDefaults = false
	}
}

// WithResourceFS sets the filesystem named resources are read from.
// Defaults to the filesystem holding the built-in default source.
func WithResourceFS(fsys fs.FS) Option {
	return func(o *loadOptions) {
		o.resourceFS = fsys
	}
}

// WithEnvOverrides overlays KAFKA_CONSUMER_* environment variables onto the
// merged tree before extraction. Off by default, so source precedence is
// unchanged unless a caller opts in.
func WithEnvOverrides() Option {
	return func(o *loadOptions) {
		o.envOverrides = true
	}
}

// FromFile resolves settings from a YAML file merged over the built-in
// defaults (overlay wins per key). The YAML parser expands anchors, aliases
// and merge keys at parse time, so the source is fully resolved before the
// merge.
func FromFile(path string, opts ...Option) (Settings, error) {
	o := newLoadOptions(opts)

	k, err := newTree(o)
	if err != nil {
		return Settings{}, err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Settings{}, &SourceError{Source: path, Err: err}
	}

	return finish(k, o)
}

// FromResource resolves settings from a named resource with the same merge
// contract as FromFile.
func FromResource(name string, opts ...Option) (Settings, error) {
	o := newLoadOptions(opts)

	k, err := newTree(o)
	if err != nil {
		return Settings{}, err
	}
	if err := k.Load(fsprov.Provider(o.resourceFS, name), yaml.Parser()); err != nil {
		return Settings{}, &SourceError{Source: name, Err: err}
	}

	return finish(k, o)
}

// Resolve picks the configuration source by precedence, first match wins:
//
//  1. The file named by $KAFCONF_CONFIG_FILE, when set and present on disk.
//  2. The resource named by $KAFCONF_CONFIG_RESOURCE, when set.
//  3. The cached Default instance.
func Resolve(opts ...Option) (Settings, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		if _, err := os.Stat(path); err == nil {
			return FromFile(path, opts...)
		}
	}
	if name := os.Getenv(EnvConfigResource); name != "" {
		return FromResource(name, opts...)
	}
	return Default(), nil
}

// defaultSettings is the process-wide instance resolved from the built-in
// source: computed at most once, immutable afterwards, freely shareable.
var defaultSettings = sync.OnceValue(func() Settings {
	s, err := FromResource(DefaultsResource, WithoutDefaults())
	if err != nil {
		panic(fmt.Sprintf("kafconf: built-in default source is invalid: %v", err))
	}
	return s
})

// Default returns the settings resolved from the built-in default source.
// It panics if the embedded source is malformed or incomplete; that source
// ships with the package and is the ultimate fallback, so there is no way to
// proceed without it.
func Default() Settings {
	return defaultSettings()
}

// newTree returns a koanf tree pre-loaded with the defaults underlay. Later
// loads win on key collision, which is exactly the overlay semantics the
// user source needs.
func newTree(o *loadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if !o.includeDefaults {
		return k, nil
	}
	if err := k.Load(fsprov.Provider(builtinFS, DefaultsResource), yaml.Parser()); err != nil {
		return nil, &SourceError{Source: DefaultsResource, Err: err}
	}
	return k, nil
}

func finish(k *koanf.Koanf, o *loadOptions) (Settings, error) {
	if o.envOverrides {
		if err := loadEnvOverrides(k); err != nil {
			return Settings{}, fmt.Errorf("loading env overrides: %w", err)
		}
	}
	return extract(k)
}

// loadEnvOverrides loads KAFKA_CONSUMER_* variables on top of the merged
// tree. A reverse lookup built from the known keys resolves the ambiguity
// between nesting separators and underscores inside a single key segment:
//
//	KAFKA_CONSUMER_GROUP_ID           -> kafka.consumer.group.id
//	KAFKA_CONSUMER_SESSION_TIMEOUT_MS -> kafka.consumer.session.timeout.ms
func loadEnvOverrides(k *koanf.Koanf) error {
	lookup := buildEnvLookup(k.Keys())

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envOverridePrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envOverridePrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := lookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement under the root.
			return RootKey + "." + strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
}

// buildEnvLookup maps env-style key suffixes (lowercase, underscores) to the
// full koanf keys they override.
func buildEnvLookup(keys []string) map[string]string {
	prefix := RootKey + "."
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		envKey := strings.ReplaceAll(strings.TrimPrefix(key, prefix), ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
