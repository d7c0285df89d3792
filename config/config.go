package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultConfigName  = "config"
	defaultProvider    = ProviderSQLite
	defaultSQLitePath  = "bookseed.db"
	defaultLogLevel    = "info"
	defaultServiceName = "bookseed"
)

// Supported database providers.
const (
	ProviderPostgres = "postgres"
	ProviderMySQL    = "mysql"
	ProviderSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Database *DatabaseConfig `json:"database" yaml:"database" mapstructure:"database"`

	Faker *FakerConfig `json:"faker" yaml:"faker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig describes the store the generators write into.
type DatabaseConfig struct {
	// Provider is one of postgres, mysql or sqlite.
	Provider string `json:"provider" yaml:"provider"`

	// DSN overrides every connection field below when set.
	DSN string `json:"dsn" yaml:"dsn"`

	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	// Path is the database file for the sqlite provider.
	Path string `json:"path" yaml:"path"`

	// Replicas are read-only DSNs used for reporting queries.
	Replicas []string `json:"replicas" yaml:"replicas"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// FakerConfig controls the random data synthesiser.
type FakerConfig struct {
	// Seed makes runs reproducible; zero picks a random seed.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// Options are the command line overrides applied on top of the loaded file.
type Options struct {
	// Dir is an extra directory searched for config.yaml.
	Dir string
	// Seed overrides faker.seed when SeedSet is true.
	Seed    uint64
	SeedSet bool
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	searchPaths = append(searchPaths, defaultPath)

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	// A missing file is fine for a seed tool: defaults plus env vars are enough.
	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATABASE_SSLMODE -> database.sslMode, aligned with the yaml keys.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env files, then config.yaml and the environment, and applies defaults.
func New(opts Options) (*Config, error) {
	loadDotEnv(opts.Dir)

	paths := []string{"config", "../config", "../../config"}
	if opts.Dir != "" {
		paths = append([]string{opts.Dir}, paths...)
	}

	cfg, err := LoadWithEnv[Config](defaultConfigName, paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if opts.SeedSet {
		cfg.Faker.Seed = opts.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports configuration the store layer cannot work with.
func (c *Config) Validate() error {
	switch c.Database.Provider {
	case ProviderPostgres, ProviderMySQL:
		if c.Database.DSN == "" && c.Database.Host == "" {
			return errors.Errorf("database.host or database.dsn is required for provider %s", c.Database.Provider)
		}
	case ProviderSQLite:
	default:
		return errors.Errorf("unsupported database provider: %s", c.Database.Provider)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = defaultServiceName
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = defaultLogLevel
	}
	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	c.Database.Provider = normalizeProvider(c.Database.Provider)
	if c.Database.Provider == ProviderSQLite && c.Database.Path == "" && c.Database.DSN == "" {
		c.Database.Path = defaultSQLitePath
	}
	if c.Faker == nil {
		c.Faker = &FakerConfig{}
	}
}

func normalizeProvider(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "":
		return defaultProvider
	case "postgres", "postgresql", "pg":
		return ProviderPostgres
	case "sqlite", "sqlite3":
		return ProviderSQLite
	default:
		return strings.ToLower(strings.TrimSpace(provider))
	}
}

// loadDotEnv reads .env and .env.local without overriding variables already set.
func loadDotEnv(dir string) {
	candidates := []string{".env", ".env.local"}
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, ".env"))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		_ = godotenv.Load(candidate)
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
