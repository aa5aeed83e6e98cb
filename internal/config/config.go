package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultEnv      = EnvLocal
	defaultLogLevel = "info"
	defaultDataDir  = ".aarnote"
	defaultDBFile   = "aarnote.db"
	defaultLocale   = "en"
)

type Config struct {
	Env        string
	DataDir    string
	DBPath     string
	LogLevel   string
	BcryptCost int
	Locale     string
}

// Load reads .env (when present) and the environment, fills defaults,
// and makes sure the data directory exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_DIR", "")
	viper.SetDefault("BCRYPT_COST", 0) // 0 = library default
	viper.SetDefault("LOCALE", defaultLocale)

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDir = filepath.Join(home, defaultDataDir)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Config{
		Env:        viper.GetString("APP_ENV"),
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, defaultDBFile),
		LogLevel:   viper.GetString("LOG_LEVEL"),
		BcryptCost: viper.GetInt("BCRYPT_COST"),
		Locale:     viper.GetString("LOCALE"),
	}, nil
}
