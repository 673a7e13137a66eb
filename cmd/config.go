package cmd

import "time"

// Config carries the environment-driven settings for the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleOrderMaxAge is how long a pending order may sit unconfirmed
	// before the background sweep cancels it.
	StaleOrderMaxAge time.Duration

	// StaleOrderSchedule is the cron expression for the sweep.
	StaleOrderSchedule string
}
