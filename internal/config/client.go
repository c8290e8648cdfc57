package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix marks environment variables that override the CLI config file.
const EnvPrefix = "BLUESWITCH_"

// ClientConfig configures the blueswitch CLI.
type ClientConfig struct {
	BaseURL  string           `koanf:"baseURL"`
	Timeout  time.Duration    `koanf:"timeout"`
	Language string           `koanf:"language"`
	Email    string           `koanf:"email"`
	Password string           `koanf:"password"`
	Firebase ClientAuthConfig `koanf:"firebase"`
	Log      ClientLogConfig  `koanf:"log"`
	Ticket   TicketConfig     `koanf:"ticket"`
}

// ClientAuthConfig points the CLI at Firebase Authentication.
// Requests carry X-User-Email instead of a token when APIKey is empty.
type ClientAuthConfig struct {
	APIKey   string `koanf:"apiKey"`
	Endpoint string `koanf:"endpoint"`
}

// ClientLogConfig contains CLI logger settings.
type ClientLogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// TicketConfig controls QR rendering of footprint tickets.
type TicketConfig struct {
	Size  int    `koanf:"size"`
	Level string `koanf:"level"`
}

// DefaultClientConfig returns the settings used for keys nobody sets.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:  "http://localhost:8080",
		Timeout:  15 * time.Second,
		Language: os.Getenv("LANG"),
		Log:      ClientLogConfig{Level: "warn", Pretty: true},
		Ticket:   TicketConfig{Size: 256, Level: "M"},
	}
}

// LoadClient reads the YAML file at path, when given, then applies BLUESWITCH_* overrides.
// BLUESWITCH_FIREBASE_APIKEY sets firebase.apiKey, matching is case-insensitive.
func LoadClient(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	// Env keys take the tag casing so they replace file keys instead of sitting next to them.
	canonical := koanfKeys(reflect.TypeOf(cfg), "", map[string]string{})
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, v string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			key = strings.ReplaceAll(key, "_", ".")
			if c, ok := canonical[key]; ok {
				key = c
			}
			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal client config")
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, errors.New("baseURL is required")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Ticket.Size <= 0 {
		return nil, errors.Errorf("ticket.size must be positive, got %d", cfg.Ticket.Size)
	}

	return &cfg, nil
}

// koanfKeys maps the lowercased dotted path of every koanf tag in t to its tagged spelling.
func koanfKeys(t reflect.Type, prefix string, out map[string]string) map[string]string {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("koanf")
		if tag == "" || tag == "-" {
			continue
		}
		path := prefix + tag
		out[strings.ToLower(path)] = path
		if f.Type.Kind() == reflect.Struct && f.Type != reflect.TypeOf(time.Time{}) {
			koanfKeys(f.Type, path+".", out)
		}
	}
	return out
}
