package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "BENGLISH"

const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

type Config struct {
	APIKey           string        `mapstructure:"api_key"`
	Listen           string        `mapstructure:"listen"`
	Backend          string        `mapstructure:"backend"`
	BaseURL          string        `mapstructure:"base_url"`
	ConvertModel     string        `mapstructure:"convert_model"`
	GrammarModel     string        `mapstructure:"grammar_model"`
	Temperature      float32       `mapstructure:"temperature"`
	ConvertMaxTokens int32         `mapstructure:"convert_max_tokens"`
	GrammarMaxTokens int32         `mapstructure:"grammar_max_tokens"`
	PingInterval     time.Duration `mapstructure:"ping_interval"`
	LogLevel         string        `mapstructure:"log_level"`
	Debug            bool          `mapstructure:"debug"`
}

var (
	current atomic.Pointer[Config]

	callbackMu sync.Mutex
	callbacks  []func()
)

func init() {
	cfg := Default()
	current.Store(&cfg)
}

func Default() Config {
	return Config{
		Listen:           ":7458",
		Backend:          BackendREST,
		BaseURL:          "https://generativelanguage.googleapis.com",
		ConvertModel:     "gemini-1.5-flash",
		GrammarModel:     "gemini-2.0-flash-exp",
		Temperature:      0.3,
		ConvertMaxTokens: 1024,
		GrammarMaxTokens: 2048,
		PingInterval:     30 * time.Second,
		LogLevel:         "info",
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	def := Default()
	v.SetDefault("api_key", def.APIKey)
	v.SetDefault("listen", def.Listen)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("convert_model", def.ConvertModel)
	v.SetDefault("grammar_model", def.GrammarModel)
	v.SetDefault("temperature", def.Temperature)
	v.SetDefault("convert_max_tokens", def.ConvertMaxTokens)
	v.SetDefault("grammar_max_tokens", def.GrammarMaxTokens)
	v.SetDefault("ping_interval", def.PingInterval)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("debug", def.Debug)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// the edge functions used GEMINI_API_KEY, keep accepting it
	_ = v.BindEnv("api_key", "GEMINI_API_KEY", envPrefix+"_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendREST, BackendSDK:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ConvertMaxTokens <= 0 || c.GrammarMaxTokens <= 0 {
		return fmt.Errorf("config: max tokens must be greater than 0")
	}
	return nil
}

func read(path string) (*viper.Viper, *Config, error) {
	v := newViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

// Load reads defaults, the optional config file at path and environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	_, cfg, err := read(path)
	return cfg, err
}

// Init loads .env and the config, publishes it and, when a file is given,
// watches it for changes.
func Init(path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to load .env: %s", err)
	}
	v, cfg, err := read(path)
	if err != nil {
		return err
	}
	current.Store(cfg)

	if path != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			log.Infof("config file changed: %s (%s)", e.Name, e.Op)
			cfg, err := decode(v)
			if err != nil {
				log.Errorf("ignore invalid config: %s", err)
				return
			}
			current.Store(cfg)
			notify()
		})
		v.WatchConfig()
	}
	return nil
}

func ReadConfig() *Config {
	return current.Load()
}

func GetLogLevel() log.Level {
	lvl, err := log.ParseLevel(ReadConfig().LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func GetIsDebug() bool {
	return ReadConfig().Debug
}

func AddConfigChangeCallback(fn func()) {
	callbackMu.Lock()
	defer callbackMu.Unlock()
	callbacks = append(callbacks, fn)
}

func notify() {
	callbackMu.Lock()
	fns := make([]func(), len(callbacks))
	copy(fns, callbacks)
	callbackMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
