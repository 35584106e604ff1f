package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/VijeshVS/LocalHire-sub001/internal/app"
	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/config"
	"github.com/VijeshVS/LocalHire-sub001/internal/database"
	"github.com/VijeshVS/LocalHire-sub001/internal/repository/postgres"
	"github.com/VijeshVS/LocalHire-sub001/internal/security"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "localhire",
		Short: "Operational tooling for the LocalHire backend",
	}
	rootCmd.AddCommand(recomputeRatingsCmd())
	rootCmd.AddCommand(mintTokenCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func recomputeRatingsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "recompute-ratings [worker-id...]",
		Short: "Recalculate stored worker ratings from their rated applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("pass worker ids or --all")
			}
			cfg := config.Load()
			db := database.NewPostgres(database.PostgresConfig{
				DSN:             cfg.PostgresDSN,
				MaxOpenConns:    cfg.DBMaxOpenConns,
				MaxIdleConns:    cfg.DBMaxIdleConns,
				ConnMaxIdle:     cfg.DBConnMaxIdle,
				ConnMaxLifetime: cfg.DBConnMaxLife,
			})
			defer db.Close()

			applicationRepo := postgres.NewApplicationRepository(db)
			workerRepo := postgres.NewWorkerRepository(db)
			employerRepo := postgres.NewEmployerRepository(db)
			ratings := app.NewRatingService(applicationRepo, workerRepo, employerRepo)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			ids := make([]common.UUID, 0, len(args))
			for _, raw := range args {
				id, err := common.ParseUUID(raw)
				if err != nil {
					return fmt.Errorf("invalid worker id %q: %w", raw, err)
				}
				ids = append(ids, id)
			}
			if all {
				workers, err := workerRepo.ListActive(ctx)
				if err != nil {
					return err
				}
				ids = ids[:0]
				for _, w := range workers {
					ids = append(ids, w.ID)
				}
			}

			for _, id := range ids {
				rating, err := ratings.RecomputeWorker(ctx, id)
				if err != nil {
					return fmt.Errorf("recompute %s: %w", id, err)
				}
				fmt.Printf("%s -> %.1f\n", id, rating)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "recompute every active worker")
	return cmd
}

func mintTokenCmd() *cobra.Command {
	var role string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "mint-token <user-id>",
		Short: "Issue a development bearer token for the given user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := common.ParseUUID(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			cfg := config.Load()
			provider := security.NewJWTProvider(cfg.JWTSecret)
			token, expiresAt, err := provider.Generate(userID, role, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			fmt.Printf("expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "worker", "role claim (worker or employer)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
