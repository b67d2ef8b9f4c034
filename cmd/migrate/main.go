// migrate applies the versioned SQL files under migrations/ through the
// atlas CLI. Connection settings come from the same DB_* variables the
// server reads.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"raffle-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir      string
		url      string
		atlasBin string
		status   bool
		dryRun   bool
		timeout  time.Duration
	)

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	flagSet.StringVar(&url, "url", "", "target database URL (default: built from DB_* variables)")
	flagSet.StringVar(&atlasBin, "atlas", "atlas", "path to the atlas binary")
	flagSet.BoolVar(&status, "status", false, "report pending migrations without applying them")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print the statements apply would run")
	flagSet.DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if url == "" {
		dbURL, err := urlFromEnv()
		if err != nil {
			return err
		}
		url = dbURL
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	dirURL := "file://" + absDir

	if status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: dirURL,
		})
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		logger.Info("migration status",
			"status", st.Status,
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: dirURL,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, f := range res.Applied {
		logger.Info("applied migration", "version", f.Version, "name", f.Name)
	}
	logger.Info("migrations up to date", "current", res.Current, "target", res.Target, "dry_run", dryRun)
	return nil
}

func urlFromEnv() (string, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return "", fmt.Errorf("failed to process env config: %w", err)
	}
	if dbCfg.User == "" || dbCfg.DBName == "" {
		return "", fmt.Errorf("DB_USER and DB_NAME are required, or pass --url")
	}
	return dbCfg.BuildDSN(), nil
}
