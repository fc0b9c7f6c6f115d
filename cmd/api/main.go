package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ledgerline/ledgerline/internal/calendar"
	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/database"
	ledgerHttp "github.com/ledgerline/ledgerline/internal/http"
	calendarHandler "github.com/ledgerline/ledgerline/internal/http/calendar"
	incomeHandler "github.com/ledgerline/ledgerline/internal/http/income"
	savingsHandler "github.com/ledgerline/ledgerline/internal/http/savings"
	snapshotHandler "github.com/ledgerline/ledgerline/internal/http/snapshot"
	"github.com/ledgerline/ledgerline/internal/income"
	incomeStore "github.com/ledgerline/ledgerline/internal/income/store"
	"github.com/ledgerline/ledgerline/internal/savings"
	savingsStore "github.com/ledgerline/ledgerline/internal/savings/store"
	"github.com/ledgerline/ledgerline/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		incomeService   = income.NewService(incomeStore.New(db))
		savingsService  = savings.NewService(savingsStore.New(db))
		calendarService = calendar.NewService(incomeService, cfg.StartOfWeek())
		snapshotService = snapshot.NewService(incomeService, savingsService)
	)

	var (
		incomeH   = incomeHandler.NewHandler(incomeService)
		calendarH = calendarHandler.NewHandler(calendarService)
		savingsH  = savingsHandler.NewHandler(savingsService)
		snapshotH = snapshotHandler.NewHandler(snapshotService)
	)

	router := ledgerHttp.New(incomeH, calendarH, savingsH, snapshotH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
