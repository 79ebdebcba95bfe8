// internal/config/config.go

// Package config reads UNOFLIP_* settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/jason-s-yu/unoflip/engine"
	"github.com/jason-s-yu/unoflip/internal/history"
	"github.com/jason-s-yu/unoflip/internal/persist"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store backends accepted in UNOFLIP_STORE.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds every setting the session layer and the simulator need.
type Config struct {
	TargetScore   int           // UNOFLIP_TARGET_SCORE
	HandSize      int           // UNOFLIP_HAND_SIZE
	TurnTimeLimit time.Duration // UNOFLIP_TURN_TIME_LIMIT, 0 = untimed
	HistoryDepth  int           // UNOFLIP_HISTORY_DEPTH
	Seed          uint64        // UNOFLIP_SEED, 0 = time based

	Store         string // UNOFLIP_STORE
	SaveDir       string // UNOFLIP_SAVE_DIR
	SQLitePath    string // UNOFLIP_SQLITE_PATH
	RedisAddr     string // UNOFLIP_REDIS_ADDR
	RedisPassword string // UNOFLIP_REDIS_PASSWORD
	RedisDB       int    // UNOFLIP_REDIS_DB
	PostgresDSN   string // UNOFLIP_POSTGRES_DSN

	LogLevel logrus.Level // UNOFLIP_LOG_LEVEL
}

// Default returns the built-in settings.
func Default() *Config {
	r := engine.DefaultRules()
	return &Config{
		TargetScore:   r.TargetScore,
		HandSize:      r.HandSize,
		TurnTimeLimit: r.TurnTimeLimit,
		HistoryDepth:  history.DefaultDepth,
		Store:         StoreFile,
		SaveDir:       "saves",
		SQLitePath:    "unoflip.db",
		RedisAddr:     "localhost:6379",
		LogLevel:      logrus.InfoLevel,
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then builds a Config from UNOFLIP_*
// variables on top of Default. An empty envFile skips the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	c := Default()
	var err error
	if c.TargetScore, err = envInt("UNOFLIP_TARGET_SCORE", c.TargetScore); err != nil {
		return nil, err
	}
	if c.HandSize, err = envInt("UNOFLIP_HAND_SIZE", c.HandSize); err != nil {
		return nil, err
	}
	if c.HistoryDepth, err = envInt("UNOFLIP_HISTORY_DEPTH", c.HistoryDepth); err != nil {
		return nil, err
	}
	if c.RedisDB, err = envInt("UNOFLIP_REDIS_DB", c.RedisDB); err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv("UNOFLIP_TURN_TIME_LIMIT"); ok && v != "" {
		if c.TurnTimeLimit, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("UNOFLIP_TURN_TIME_LIMIT: %w", err)
		}
	}
	if v, ok := os.LookupEnv("UNOFLIP_SEED"); ok && v != "" {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, fmt.Errorf("UNOFLIP_SEED: %w", err)
		}
	}
	if v, ok := os.LookupEnv("UNOFLIP_LOG_LEVEL"); ok && v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			logrus.Warnf("Unknown UNOFLIP_LOG_LEVEL %q, using %s.", v, c.LogLevel)
		} else {
			c.LogLevel = lvl
		}
	}

	c.Store = envString("UNOFLIP_STORE", c.Store)
	c.SaveDir = envString("UNOFLIP_SAVE_DIR", c.SaveDir)
	c.SQLitePath = envString("UNOFLIP_SQLITE_PATH", c.SQLitePath)
	c.RedisAddr = envString("UNOFLIP_REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = envString("UNOFLIP_REDIS_PASSWORD", c.RedisPassword)
	c.PostgresDSN = envString("UNOFLIP_POSTGRES_DSN", c.PostgresDSN)

	switch c.Store {
	case StoreFile, StoreSQLite, StoreRedis, StorePostgres:
	default:
		return nil, fmt.Errorf("UNOFLIP_STORE: unknown backend %q", c.Store)
	}
	return c, nil
}

// Rules maps the settings onto engine rules.
func (c *Config) Rules() engine.Rules {
	return engine.Rules{
		TargetScore:   c.TargetScore,
		HandSize:      c.HandSize,
		TurnTimeLimit: c.TurnTimeLimit,
	}
}

// GameSeed returns Seed, or a time-derived seed when Seed is zero.
func (c *Config) GameSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// NewStore opens the configured save backend.
func (c *Config) NewStore(ctx context.Context, log *logrus.Entry) (persist.Store, error) {
	switch c.Store {
	case StoreSQLite:
		st, err := persist.OpenSQLite(ctx, c.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	case StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		st, err := persist.NewRedisStore(ctx, rdb, "", log)
		if err != nil {
			rdb.Close()
			return nil, err
		}
		return st, nil
	case StorePostgres:
		if c.PostgresDSN == "" {
			return nil, errors.New("UNOFLIP_POSTGRES_DSN is required for the postgres store")
		}
		st, err := persist.OpenPostgres(ctx, c.PostgresDSN, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		st, err := persist.NewFileStore(c.SaveDir, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
