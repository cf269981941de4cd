// Package config is responsible for finding, parsing and merging the Grimoire user
// configuration with the defaults. Values are taken from (in order of importance)
// command line flags, GRIMOIRE_ environment variables, the JSON config file and
// finally the built-in defaults.
//
// The user configuration is in $HOME/.grimoire/config.json unless another file is
// given with the --config flag. When missing it is created with the default values.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigName is the name of the configuration file in the user directory.
	ConfigName = "config.json"

	// EnvPrefix is the prefix of the environment variables which override the
	// configuration. "browser.cookie" becomes GRIMOIRE_BROWSER_COOKIE for example.
	EnvPrefix = "GRIMOIRE"
)

// Config is the configuration of the Grimoire daemon. It should contain a
// representation for everything in config.json.
type Config struct {
	Listen         string        `mapstructure:"listen"`
	CatalogURL     string        `mapstructure:"catalog_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Throttle       time.Duration `mapstructure:"throttle"`
	CacheCapacity  int           `mapstructure:"cache_capacity"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFile        string        `mapstructure:"log_file"`
	ThumbnailWidth int           `mapstructure:"thumbnail_width"`

	Browser       Browser       `mapstructure:"browser"`
	CoverFallback CoverFallback `mapstructure:"cover_fallback"`
}

// Browser configures the browser driven catalog client.
type Browser struct {
	Enabled     bool          `mapstructure:"enabled"`
	ExecPath    string        `mapstructure:"exec_path"`
	Headless    bool          `mapstructure:"headless"`
	WaitTimeout time.Duration `mapstructure:"wait_timeout"`
	CookieName  string        `mapstructure:"cookie_name"`
	Cookie      string        `mapstructure:"cookie"`
}

// CoverFallback configures looking for covers in the Cover Art Archive when the
// catalog does not have one.
type CoverFallback struct {
	Enabled   bool   `mapstructure:"enabled"`
	UserAgent string `mapstructure:"user_agent"`
}

// defaultConfig is written as the user configuration when there is none.
const defaultConfig = `{
    "listen": "127.0.0.1:9997",
    "catalog_url": "https://www.metal-archives.com",
    "user_agent": "Grimoire/1.0 (+https://github.com/ironsmile/grimoire)",
    "request_timeout": "10s",
    "throttle": "1s",
    "cache_capacity": 0,
    "log_level": "info",
    "log_file": "",
    "thumbnail_width": 300,
    "browser": {
        "enabled": false,
        "exec_path": "",
        "headless": true,
        "wait_timeout": "15s",
        "cookie_name": "cf_clearance",
        "cookie": ""
    },
    "cover_fallback": {
        "enabled": true,
        "user_agent": "Grimoire/1.0 ( https://github.com/ironsmile/grimoire )"
    }
}
`

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"listen":       "listen",
	"catalog-url":  "catalog_url",
	"log-level":    "log_level",
	"log-file":     "log_file",
	"browser":      "browser.enabled",
	"browser-exec": "browser.exec_path",
	"cookie":       "browser.cookie",
}

// NewFlagSet returns the command line flags understood by Load. The caller is
// expected to parse them.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flags.StringP("config", "c", "", "Path to a configuration file. "+
		"By default $HOME/"+filepath.Join(".grimoire", ConfigName)+" is used.")
	flags.String("listen", "", "Address on which the HTTP server listens.")
	flags.String("catalog-url", "", "Base URL of the metal catalog.")
	flags.String("log-level", "", "Logging level: debug, info, warning or error.")
	flags.String("log-file", "", "Write logs into this file instead of stderr.")
	flags.Bool("browser", false, "Enable the browser backed catalog client.")
	flags.String("browser-exec", "", "Path to the Chrome or Chromium executable.")
	flags.String("cookie", "", "Value of the anti-bot cookie used by the browser.")
	flags.String("pidfile", "", "Write the process ID into this file.")
	flags.BoolP("version", "v", false, "Show version and build information.")

	return flags
}

// Load finds the configuration file, parses it and merges it on top of the
// defaults. Environment variables and the already parsed flags are merged on top
// of that. When flags has no "config" value the file is ConfigName in userPath
// and it is created with the defaults when missing.
func Load(fs afero.Fs, flags *pflag.FlagSet, userPath string) (Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("json")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("binding flag %s: %w", flagName, err)
			}
		}
	}

	configFile, err := findConfigFile(fs, flags, userPath)
	if err != nil {
		return Config{}, err
	}

	log.Debugf("Reading configuration from %s", configFile)
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", configFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", configFile, err)
	}

	return cfg, nil
}

// findConfigFile returns the path to the configuration file which should be used.
// The default user configuration is created if it does not exist.
func findConfigFile(fs afero.Fs, flags *pflag.FlagSet, userPath string) (string, error) {
	if flags != nil {
		if path, _ := flags.GetString("config"); path != "" {
			return path, nil
		}
	}

	if userPath == "" || !filepath.IsAbs(userPath) {
		return "", fmt.Errorf("user path `%s` is not an absolute path", userPath)
	}

	userConfig := filepath.Join(userPath, ConfigName)
	exists, err := afero.Exists(fs, userConfig)
	if err != nil {
		return "", fmt.Errorf("checking for %s: %w", userConfig, err)
	}
	if exists {
		return userConfig, nil
	}

	log.Printf("Creating default configuration in %s", userConfig)
	if err := fs.MkdirAll(userPath, 0700); err != nil {
		return "", fmt.Errorf("creating user directory: %w", err)
	}
	if err := afero.WriteFile(fs, userConfig, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("writing default configuration: %w", err)
	}

	return userConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "127.0.0.1:9997")
	v.SetDefault("catalog_url", "https://www.metal-archives.com")
	v.SetDefault("user_agent", "Grimoire/1.0 (+https://github.com/ironsmile/grimoire)")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("throttle", time.Second)
	v.SetDefault("cache_capacity", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("thumbnail_width", 300)

	v.SetDefault("browser.enabled", false)
	v.SetDefault("browser.exec_path", "")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.wait_timeout", 15*time.Second)
	v.SetDefault("browser.cookie_name", "cf_clearance")
	v.SetDefault("browser.cookie", "")

	v.SetDefault("cover_fallback.enabled", true)
	v.SetDefault("cover_fallback.user_agent",
		"Grimoire/1.0 ( https://github.com/ironsmile/grimoire )")
}

// Validate returns an error when the configuration could not possibly work.
func (cfg Config) Validate() error {
	catalog, err := url.Parse(cfg.CatalogURL)
	if err != nil {
		return fmt.Errorf("catalog_url: %w", err)
	}
	if !catalog.IsAbs() || catalog.Host == "" {
		return fmt.Errorf("catalog_url `%s` is not an absolute URL", cfg.CatalogURL)
	}

	if cfg.Listen == "" {
		return errors.New("listen address is empty")
	}

	if cfg.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}

	if cfg.Throttle < 0 {
		return errors.New("throttle cannot be negative")
	}

	if cfg.CacheCapacity < 0 {
		return errors.New("cache_capacity cannot be negative")
	}

	if cfg.ThumbnailWidth <= 0 {
		return errors.New("thumbnail_width must be positive")
	}

	if cfg.Browser.Enabled && cfg.Browser.WaitTimeout <= 0 {
		return errors.New("browser.wait_timeout must be positive")
	}

	return nil
}
