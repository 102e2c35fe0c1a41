package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"anota/internal/classify"
	"anota/internal/remote"
	"anota/internal/router"
	"anota/internal/rules"
	"anota/internal/storage"

	"github.com/spf13/viper"
)

// initStorage opens and migrates the SQLite store at the configured path.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "anota", "anota.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}

// remoteConfig reads the remote tier's settings. The api_key and test_mode
// knobs are independent: a present credential with test_mode on still means
// heuristics only.
func remoteConfig() remote.Config {
	timeout := viper.GetDuration("remote.timeout")
	if timeout <= 0 {
		timeout = remote.DefaultTimeout
	}
	return remote.Config{
		APIKey:   viper.GetString("remote.api_key"),
		Model:    viper.GetString("remote.model"),
		BaseURL:  viper.GetString("remote.base_url"),
		Timeout:  timeout,
		TestMode: viper.GetBool("remote.test_mode"),
	}
}

// buildRouter wires the classifier tiers by policy.
func buildRouter(logger *slog.Logger) *router.Router {
	var remoteTier classify.Classifier

	cfg := remoteConfig()
	if remote.Enabled(cfg) {
		client, err := remote.NewClient(cfg)
		if err != nil {
			logger.Warn("remote classifier unavailable, using heuristics only", "error", err)
		} else {
			remoteTier = client
		}
	}

	return router.New(remoteTier, classify.NewHeuristic(logger), logger)
}

// snapshotEngine reads the rule and category sets wholesale and builds the
// read-only engine used for one classification or one bulk pass.
func snapshotEngine(ctx context.Context, store *storage.SQLiteStorage) (*rules.Engine, error) {
	ruleSet, categories, err := store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule snapshot: %w", err)
	}
	return rules.NewEngine(ruleSet, categories), nil
}
