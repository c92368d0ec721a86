package main

import (
	"context"
	"domainchecker/internal/checker"
	"domainchecker/internal/config"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/logger"
	"domainchecker/pkg/storage"
	"domainchecker/pkg/storage/memory"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	storeMemory   = "memory"
	storePostgres = "postgres"
)

type checkOutput struct {
	Summary *domain.BatchSummary `json:"summary"`
	Results []domain.CheckResult `json:"results"`
}

// checkCommand constructs the 'check' subcommand that runs one batch in the
// foreground and prints its summary and results as JSON.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks availability of domains across TLDs and prints the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			domains, _ := cmd.Flags().GetStringSlice("domains")
			tlds, _ := cmd.Flags().GetStringSlice("tlds")
			group, _ := cmd.Flags().GetString("group")
			owner, _ := cmd.Flags().GetString("owner")
			batch, _ := cmd.Flags().GetString("batch")
			store, _ := cmd.Flags().GetString("store")

			ownerID := uuid.New()
			if owner != "" {
				var err error
				if ownerID, err = uuid.Parse(owner); err != nil {
					return fmt.Errorf("invalid owner id: %w", err)
				}
			}

			var strg storage.Storage
			switch store {
			case storeMemory:
				strg = memory.New()
			case storePostgres:
				pgsql, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg = pgsql
			default:
				return fmt.Errorf("unknown store %q, expected %s or %s", store, storeMemory, storePostgres)
			}

			chkr := checker.New(strg, newWhoisClient(cfg), checker.NewOptions(cfg))

			summary, err := chkr.Run(ctx, domain.CheckRequest{
				OwnerID: domain.OwnerID(ownerID),
				GroupID: group,
				Domains: domains,
				TLDs:    tlds,
				BatchID: domain.BatchID(batch),
			})
			if summary == nil {
				return fmt.Errorf("could not run batch: %w", err)
			}
			if err != nil {
				logger.Warn(ctx, "batch interrupted", zap.Error(err))
			}

			results, err := chkr.BatchResults(context.WithoutCancel(ctx), domain.OwnerID(ownerID), summary.BatchID)
			if err != nil {
				logger.Warn(ctx, "could not load batch results", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(checkOutput{Summary: summary, Results: results})
		},
	}

	cmd.Flags().StringSlice("domains", nil, "Domain names to check, without TLD")
	cmd.Flags().StringSlice("tlds", []string{".com"}, "TLD extensions to check")
	cmd.Flags().String("group", "default", "Group the domains are stored under")
	cmd.Flags().String("owner", "", "Owner UUID, a random one is used when empty")
	cmd.Flags().String("batch", "", "Batch ID, generated when empty")
	cmd.Flags().String("store", storeMemory, "Result store: memory or postgres")
	_ = cmd.MarkFlagRequired("domains")

	return cmd
}
