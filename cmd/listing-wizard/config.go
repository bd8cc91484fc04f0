package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	listingwizard "github.com/goliatone/go-listingwizard"
	"github.com/goliatone/go-listingwizard/internal/logging"
	"github.com/goliatone/go-listingwizard/pkg/catalog"
	"github.com/goliatone/go-listingwizard/pkg/i18n"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
	"github.com/goliatone/go-listingwizard/pkg/theme"
)

const (
	configName  = "listing-wizard"
	envPrefix   = "LISTING_WIZARD"
	httpTimeout = 15 * time.Second
)

// Config holds the CLI settings. Values come from flags, LISTING_WIZARD_*
// environment variables and listing-wizard.yaml, in that order.
type Config struct {
	Locale       string `mapstructure:"locale"`
	Renderer     string `mapstructure:"renderer"`
	Theme        string `mapstructure:"theme"`
	Variant      string `mapstructure:"variant"`
	Translations string `mapstructure:"translations"`
	Profiles     string `mapstructure:"profiles"`
	Themes       string `mapstructure:"themes"`
	LogLevel     string `mapstructure:"log_level"`
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"locale":       "locale",
	"renderer":     "renderer",
	"theme":        "theme",
	"variant":      "variant",
	"translations": "translations",
	"profiles":     "profiles",
	"themes":       "themes",
	"log-level":    "log_level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}

func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	v.SetDefault("locale", "en")
	v.SetDefault("renderer", "tui")
	v.SetDefault("log_level", logging.LevelWarn)

	v.SetConfigType("yaml")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// generatorOptions turns cfg into orchestrator options: translations layered
// over the embedded catalog, an optional profile catalog and theme manifests.
func generatorOptions(cfg Config) ([]orchestrator.Option, error) {
	translator := i18n.Default()
	if cfg.Translations != "" {
		dir, name := splitPath(cfg.Translations)
		if err := translator.LoadFS(os.DirFS(dir), name); err != nil {
			return nil, err
		}
	}

	opts := []orchestrator.Option{
		orchestrator.WithTranslator(translator),
		orchestrator.WithLogger(logging.Logr()),
		orchestrator.WithLoader(listingwizard.NewLoader(pkgopenapi.WithHTTPFallback(httpTimeout))),
	}
	if cfg.Renderer != "" {
		opts = append(opts, orchestrator.WithDefaultRenderer(cfg.Renderer))
	}

	if cfg.Profiles != "" {
		dir, name := splitPath(cfg.Profiles)
		profiles, err := catalog.LoadProfiles(os.DirFS(dir), name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithProfiles(profiles))
	}

	if cfg.Themes != "" {
		dir, name := splitPath(cfg.Themes)
		manifests, err := theme.LoadManifests(os.DirFS(dir), name)
		if err != nil {
			return nil, err
		}
		selector, err := theme.NewManifestSelector(cfg.Theme, cfg.Variant, manifests...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithThemeSelector(selector))
	}

	return opts, nil
}

func splitPath(path string) (string, string) {
	return filepath.Dir(path), filepath.ToSlash(filepath.Base(path))
}
