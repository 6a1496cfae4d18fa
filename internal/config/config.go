package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
	"meowshunt/internal/logging"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "MEOWSHUNT"

var ErrValidation = errors.New("config validation failed")

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Energy   EnergyConfig   `mapstructure:"energy"`
	Hunt     HuntConfig     `mapstructure:"hunt"`
	Rank     RankConfig     `mapstructure:"rank"`
	Log      logging.Config `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr        string   `mapstructure:"addr" validate:"required"`
	HuntRate    float64  `mapstructure:"hunt_rate" validate:"gt=0"`
	HuntBurst   int      `mapstructure:"hunt_burst" validate:"gte=1"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Driver        string `mapstructure:"driver" validate:"oneof=postgres memory"`
	DSN           string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
	MigrationsDir string `mapstructure:"migrations_dir"`
	// CatalogFile seeds the in-memory driver on start-up and defines the
	// starter kit for both drivers. Empty means the embedded catalog.
	CatalogFile     string        `mapstructure:"catalog_file"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=16"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

type EnergyConfig struct {
	Interval    time.Duration `mapstructure:"interval" validate:"gt=0"`
	PerInterval int           `mapstructure:"per_interval" validate:"gte=1"`
	Max         int           `mapstructure:"max" validate:"gte=1"`
}

func (e EnergyConfig) Policy() energy.Policy {
	return energy.Policy{Interval: e.Interval, PerInterval: e.PerInterval, Max: e.Max}
}

type HuntConfig struct {
	BaseChance        float64 `mapstructure:"base_chance" validate:"gte=0,lte=1"`
	PowerWeight       float64 `mapstructure:"power_weight" validate:"gte=0"`
	AttractionWeight  float64 `mapstructure:"attraction_weight" validate:"gte=0"`
	AttractionHalf    float64 `mapstructure:"attraction_half" validate:"gt=0"`
	DifficultyPenalty float64 `mapstructure:"difficulty_penalty" validate:"gte=0"`
	MinChance         float64 `mapstructure:"min_chance" validate:"gte=0,lte=1"`
	MaxChance         float64 `mapstructure:"max_chance" validate:"gte=0,lte=1,gtefield=MinChance"`
}

func (h HuntConfig) CatchPolicy() hunting.CatchPolicy {
	return hunting.CatchPolicy{
		Base:              h.BaseChance,
		PowerWeight:       h.PowerWeight,
		AttractionWeight:  h.AttractionWeight,
		AttractionHalf:    h.AttractionHalf,
		DifficultyPenalty: h.DifficultyPenalty,
		MinChance:         h.MinChance,
		MaxChance:         h.MaxChance,
	}
}

type RankConfig struct {
	PoolSize int           `mapstructure:"pool_size" validate:"gte=1"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	catch := hunting.DefaultCatchPolicy()
	policy := energy.DefaultPolicy()
	logCfg := logging.DefaultConfig()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.hunt_rate", 2.0)
	v.SetDefault("http.hunt_burst", 4)
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.migrations_dir", "")
	v.SetDefault("database.catalog_file", "")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")

	v.SetDefault("energy.interval", policy.Interval)
	v.SetDefault("energy.per_interval", policy.PerInterval)
	v.SetDefault("energy.max", policy.Max)

	v.SetDefault("hunt.base_chance", catch.Base)
	v.SetDefault("hunt.power_weight", catch.PowerWeight)
	v.SetDefault("hunt.attraction_weight", catch.AttractionWeight)
	v.SetDefault("hunt.attraction_half", catch.AttractionHalf)
	v.SetDefault("hunt.difficulty_penalty", catch.DifficultyPenalty)
	v.SetDefault("hunt.min_chance", catch.MinChance)
	v.SetDefault("hunt.max_chance", catch.MaxChance)

	v.SetDefault("rank.pool_size", 8)
	v.SetDefault("rank.timeout", 5*time.Second)

	v.SetDefault("log.level", logCfg.Level)
	v.SetDefault("log.format", logCfg.Format)
	v.SetDefault("log.file", logCfg.File)
	v.SetDefault("log.rotate.max_size_mb", logCfg.Rotate.MaxSizeMB)
	v.SetDefault("log.rotate.max_backups", logCfg.Rotate.MaxBackups)
	v.SetDefault("log.rotate.max_age_days", logCfg.Rotate.MaxAgeDays)
	v.SetDefault("log.rotate.compress", logCfg.Rotate.Compress)
}

// Load reads defaults, then the optional file, then MEOWSHUNT_* environment
// variables, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
