package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/database"
	"finn-budget/internal/models"
	"finn-budget/internal/services"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "finn",
		Short:         "Finn budget planning tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newAnalyzeCmd(), newSampleCmd(), newMigrateCmd())
	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		income string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <statement_file>",
		Short: "Analyze a bank statement and print its expense metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read statement: %w", err)
			}

			var profile *models.Profile
			if income != "" {
				amount, err := decimal.NewFromString(income)
				if err != nil || amount.IsNegative() {
					return fmt.Errorf("invalid --income %q", income)
				}
				profile = &models.Profile{MonthlyIncome: amount}
			}

			result, err := services.NewExpensePipeline(nil).AnalyzeLocal(string(content), profile)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				encoder.SetIndent("", "  ")
			}
			return encoder.Encode(result.Metadata)
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "monthly income used for savings-rate and lifestyle signals")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var (
		months int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a synthetic CSV statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 1 || months > services.MaxSampleMonths {
				return fmt.Errorf("--months must be between 1 and %d", services.MaxSampleMonths)
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			now := time.Now().UTC()
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

			generator := services.NewStatementGenerator(seed)
			_, err := fmt.Fprint(cmd.OutOrStdout(), generator.Render(generator.Generate(start, months)))
			return err
		},
	}

	cmd.Flags().IntVar(&months, "months", 3, "number of months to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed; 0 picks one from the clock")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var (
		down     int
		seedDemo bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()

			db, err := sql.Open("postgres", cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			runner := database.NewMigrationRunner(db)
			if err := runner.WaitForDatabase(cmd.Context()); err != nil {
				return err
			}

			if down > 0 {
				return runner.RollbackMigrations(down)
			}

			if err := runner.RunMigrations(); err != nil {
				return err
			}

			if !seedDemo {
				return nil
			}

			gormDB, err := database.New(&cfg.Database)
			if err != nil {
				return err
			}
			defer gormDB.Close()

			profile, err := gormDB.SeedDemoProfile("Demo", decimal.NewFromInt(5200), "Portland")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo profile %s\n", profile.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying")
	cmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "create the demo profile after migrating")
	return cmd
}
