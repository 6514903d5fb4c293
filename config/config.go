package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Directory DirectoryConfig
	UserDB    UserDBConfig
	Redis     RedisConfig
	JWT       JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DirectoryConfig struct {
	Path      string
	SeedCount int
	Seed      uint64
}

type UserDBConfig struct {
	Path string
}

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	SearchCacheTTL time.Duration
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine when everything comes from the environment
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("SEARCH_CACHE_TTL"))
	if err != nil {
		cacheTTL = 10 * time.Minute
	}

	seedCount := viper.GetInt("SEED_COUNT")
	if seedCount <= 0 {
		seedCount = 1000
	}

	directoryPath := viper.GetString("DIRECTORY_DB_PATH")
	if directoryPath == "" {
		directoryPath = "doctors.db"
	}

	userDBPath := viper.GetString("USER_DB_PATH")
	if userDBPath == "" {
		userDBPath = "user_profiles.db"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Directory: DirectoryConfig{
			Path:      directoryPath,
			SeedCount: seedCount,
			Seed:      viper.GetUint64("SEED"),
		},
		UserDB: UserDBConfig{
			Path: userDBPath,
		},
		Redis: RedisConfig{
			Addr:           viper.GetString("REDIS_ADDR"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			SearchCacheTTL: cacheTTL,
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	return config, nil
}
