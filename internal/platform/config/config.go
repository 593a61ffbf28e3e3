package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need at startup: the two flat
// store paths and the log level.
type Config struct {
	RoomsFile        string
	ReservationsFile string
	LogLevel         string
}

// Load reads an optional .env file, then the environment, falling back
// to the defaults the original data files shipped under. A missing .env
// is not an error; the process environment simply wins.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		RoomsFile:        getenv("HOTEL_ROOMS_FILE", "hotel_room.csv"),
		ReservationsFile: getenv("HOTEL_RESERVATIONS_FILE", "reservations.csv"),
		LogLevel:         getenv("HOTEL_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
