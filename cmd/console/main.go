package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aakritipkh/hotel-booking/internal/adapter/console"
	"github.com/aakritipkh/hotel-booking/internal/adapter/repository/csvfile"
	"github.com/aakritipkh/hotel-booking/internal/core/services"
	"github.com/aakritipkh/hotel-booking/internal/platform/config"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	catalogue, err := csvfile.NewRoomRepository(cfg.RoomsFile)
	if err != nil {
		logger.Fatalf("Failed to load room catalogue: %v", err)
	}

	ledger := csvfile.NewReservationRepository(cfg.ReservationsFile)
	if err := ledger.EnsureStore(); err != nil {
		logger.Fatalf("Failed to prepare reservation store: %v", err)
	}

	bookingService := services.NewBookingService(catalogue, ledger, logger)

	shell := console.New(bookingService, os.Stdin, os.Stdout, logger)
	shell.Run(context.Background())
}
