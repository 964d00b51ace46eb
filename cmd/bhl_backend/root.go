package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/boarding_house_ledger/internal/adapters/events/kafka"
	"github.com/SscSPs/boarding_house_ledger/internal/adapters/events/noop"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/core/services"
	"github.com/SscSPs/boarding_house_ledger/internal/platform/config"
	"github.com/SscSPs/boarding_house_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/boarding_house_ledger/internal/repositories/memory"
	"github.com/SscSPs/boarding_house_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var flagActor string

var rootCmd = &cobra.Command{
	Use:           "bhl_backend",
	Short:         "Boarding house ledger and account balance engine",
	Long:          "Double-entry ledger for boarding houses: invoicing, payables, petty cash approvals and balance projection.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagActor, "actor", "system:cli", "User id recorded as the actor of CLI writes")
}

// app bundles what every command needs. close releases the store and the publisher.
type app struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	close    func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var store portsrepo.Store
	closers := []func(){}
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		slog.Warn("Using the in-memory store; data is lost on exit")
		store = memory.NewStore()
	default:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		closers = append(closers, func() { database.ClosePgxPool(pool) })
		store = pgsql.NewStore(pool)
	}

	var publisher events.Publisher = noop.Publisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		slog.Info("Publishing ledger events to Kafka", slog.String("topic", cfg.KafkaTopic))
	}
	closers = append(closers, func() {
		if err := publisher.Close(); err != nil {
			slog.Error("Failed to close event publisher", slog.String("error", err.Error()))
		}
	})

	return &app{
		cfg:      cfg,
		services: services.NewServiceContainer(cfg, store, publisher),
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		},
	}, nil
}

func cliActor() (domain.Actor, error) {
	return domain.NewActor(flagActor)
}
