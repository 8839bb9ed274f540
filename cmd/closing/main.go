package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/app"
	"lyberate-settlement/internal/config"
	"lyberate-settlement/internal/domain"
	"lyberate-settlement/internal/gateway"
	"lyberate-settlement/internal/logger"
	"lyberate-settlement/internal/usecase"
)

func main() {
	weekID := flag.String("week", domain.WeekID(0), "Week to close, as week-N (week-0 is the current week)")
	generate := flag.Bool("generate", false, "Generate or refresh the weekly tickets of the week")
	salesFile := flag.String("import-sales", "", "Path to a sales CSV file to record before closing")
	paymentFilesStr := flag.String("import-payments", "", "Comma-separated list of payment CSV files to submit before closing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()
	store, closeStore, err := gateway.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("could not open store")
	}
	defer closeStore()

	a := app.New(store, func() time.Time { return time.Now().In(cfg.Location) }, usecase.NewUUID, cfg.WeekCount, log)
	importer := gateway.NewCSVImporter()

	if *salesFile != "" {
		if err := importSales(ctx, a, importer, *salesFile, log); err != nil {
			log.Fatal().Err(err).Msg("sales import failed")
		}
	}
	if *paymentFilesStr != "" {
		if err := importPayments(ctx, a, importer, strings.Split(*paymentFilesStr, ","), log); err != nil {
			log.Fatal().Err(err).Msg("payment import failed")
		}
	}
	if *generate {
		tickets, err := a.Tickets.GenerateWeekTickets(ctx, *weekID)
		if err != nil {
			log.Fatal().Err(err).Msg("ticket generation failed")
		}
		log.Info().Int("tickets", len(tickets)).Str("week_id", *weekID).Msg("weekly tickets generated")
	}

	report, err := a.Closing.WeeklyClosing(ctx, *weekID)
	if err != nil {
		log.Fatal().Err(err).Msg("weekly closing failed")
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("could not encode report")
	}
	fmt.Println(string(output))
}

func importSales(ctx context.Context, a *app.App, importer *gateway.CSVImporter, path string, log zerolog.Logger) error {
	inputs, err := importer.ReadSales(ctx, path)
	if err != nil {
		return err
	}
	for i, in := range inputs {
		if _, err := a.Sales.RecordSale(ctx, in); err != nil {
			return fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
	}
	log.Info().Int("sales", len(inputs)).Str("file", path).Msg("sales imported")
	return nil
}

// importPayments submits every payment and then applies the review recorded in the file.
func importPayments(ctx context.Context, a *app.App, importer *gateway.CSVImporter, paths []string, log zerolog.Logger) error {
	imported, err := importer.ReadPayments(ctx, paths)
	if err != nil {
		return err
	}
	for _, p := range imported {
		payment, err := a.Payments.SubmitPayment(ctx, p.Input)
		if err != nil {
			return fmt.Errorf("payment %s: %w", p.Input.Reference, err)
		}
		switch p.Status {
		case domain.PaymentApproved:
			_, err = a.Payments.ApprovePayment(ctx, payment.ID)
		case domain.PaymentRejected:
			_, err = a.Payments.RejectPayment(ctx, payment.ID, "")
		}
		if err != nil {
			return fmt.Errorf("payment %s: %w", p.Input.Reference, err)
		}
	}
	log.Info().Int("payments", len(imported)).Msg("payments imported")
	return nil
}
