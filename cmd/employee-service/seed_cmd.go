package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/repository"
	"github.com/suteetoe/employee-service/internal/seed"
	"github.com/suteetoe/employee-service/pkg/database"
)

func newSeedCmd() *cobra.Command {
	var (
		randomSeed uint64
		fixedDates bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample employees into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, log, db, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer database.Close(db)

			if !cmd.Flags().Changed("random") {
				randomSeed = uint64(appConfig.Seed.RandomSeed)
			}
			var rng *rand.Rand
			if !fixedDates {
				rng = rand.New(rand.NewPCG(randomSeed, randomSeed))
			}

			n, err := seed.Employees(cmd.Context(), repository.NewEmployeeRepository(db, nil), rng, time.Now())
			if err != nil {
				return err
			}
			log.Info("Seed finished", zap.Int("inserted", n), zap.Uint64("random_seed", randomSeed))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&randomSeed, "random", 42, "Seed for the join date generator (defaults to SEED_RANDOM)")
	cmd.Flags().BoolVar(&fixedDates, "fixed-dates", false, "Use the listed join dates instead of random ones")
	return cmd
}
