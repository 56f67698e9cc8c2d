package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/2beens/gearfitness/internal/config"
	"github.com/2beens/gearfitness/internal/db"
	"github.com/2beens/gearfitness/internal/logging"
	"github.com/2beens/gearfitness/internal/stats"
	"github.com/2beens/gearfitness/internal/workouts"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
	userIDRaw  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "gearstats",
	Short: "Workout statistics straight from the gear database",
	Long: `gearstats prints the same training volume and personal record aggregates
the service exposes over HTTP, computed against the configured postgres database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		logging.Setup(logging.LoggerSetupParams{
			LogToStdout: false,
			LogLevel:    "error",
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "config environment [dev | prod]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVarP(&userIDRaw, "user", "u", "", "user id (required)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	_ = rootCmd.MarkPersistentFlagRequired("user")

	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(recordsCmd)
}

// analyzerEnv is what every subcommand needs: a parsed user id and an analyzer backed by postgres.
type analyzerEnv struct {
	userID   uuid.UUID
	analyzer *stats.Analyzer
	pool     *pgxpool.Pool
}

func (e *analyzerEnv) Close() {
	e.pool.Close()
}

func newAnalyzerEnv(ctx context.Context) (*analyzerEnv, error) {
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid user id [%s]: %w", userIDRaw, err)
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, err
	}
	weekStart, err := stats.ParseWeekday(cfg.WeekStartDay)
	if err != nil {
		return nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GEAR_DB_USER"),
		DBPassword: os.Getenv("GEAR_DB_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		return nil, err
	}

	return &analyzerEnv{
		userID:   userID,
		analyzer: stats.NewAnalyzer(workouts.NewRepo(pool), stats.NewRepo(pool), cfg.TrackedLifts, weekStart),
		pool:     pool,
	}, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
