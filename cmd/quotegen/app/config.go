package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

// EnvPrefix is prepended to every environment variable quotegen reads,
// e.g. QUOTEGEN_REMOTE_URL.
const EnvPrefix = "QUOTEGEN"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Storage
	Storage string
	DataDir string

	// Remote source
	RemoteURL      string
	RemoteToken    string
	RemoteAuth     string
	RemoteCategory string
	RemoteLimit    int

	// Sync behavior
	SyncInterval time.Duration
	AutoSync     bool
	PushOnAdd    bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (QUOTEGEN_*)
// 3. .env files
// 4. Config file (~/.quotegen.yaml or ./.quotegen.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file, which must
// exist. An empty path searches the standard locations.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".quotegen")
	}

	// A missing default config file is fine; a broken or missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &errors.ConfigError{Component: "config file", Message: err.Error(), Err: err}
		}
	}

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no_color"),
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),

		Storage: v.GetString("storage"),
		DataDir: v.GetString("data_dir"),

		RemoteURL:      v.GetString("remote_url"),
		RemoteToken:    v.GetString("remote_token"),
		RemoteAuth:     v.GetString("remote_auth"),
		RemoteCategory: v.GetString("remote_category"),
		RemoteLimit:    v.GetInt("remote_limit"),

		SyncInterval: v.GetDuration("sync_interval"),
		AutoSync:     v.GetBool("auto_sync"),
		PushOnAdd:    v.GetBool("push_on_add"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage", string(storage.KindFiles))
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("remote_url", constants.DefaultRemoteURL)
	v.SetDefault("remote_category", constants.DefaultRemoteCategory)
	v.SetDefault("remote_limit", constants.DefaultRemoteLimit)
	v.SetDefault("sync_interval", constants.DefaultSyncInterval)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// defaultDataDir is the per-user directory quotes are persisted under.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".quotegen"
	}
	return filepath.Join(dir, "quotegen")
}

// UpdateFromFlags updates config values from parsed command flags so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose || c.Verbose
	c.Quiet = quiet || c.Quiet
	c.NoColor = noColor || c.NoColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first since godotenv never overrides a set variable.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
