// Package config handles bot configuration
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Region        string  // capture rectangle "x1,y1,x2,y2"
	Columns       int     // lanes in the map
	Threshold     int     // grayscale binarization cutoff
	PollWaitMS    int     // per-iteration wait, milliseconds
	StartDelaySec float64 // grace before the first frame, seconds
	QuitKey       string  // key that stops the bot
	HoldWarnSec   float64 // watchdog stuck-lane threshold, seconds
	MonitorAddr   string  // status server address; empty disables it
}

func Load() *Config {
	return &Config{
		Region:        getEnv("LANEBOT_REGION", "250,574,510,575"),
		Columns:       getEnvInt("LANEBOT_COLUMNS", 4),
		Threshold:     getEnvInt("LANEBOT_THRESHOLD", 40),
		PollWaitMS:    getEnvInt("LANEBOT_POLL_WAIT_MS", 3),
		StartDelaySec: getEnvFloat("LANEBOT_START_DELAY", 2.0),
		QuitKey:       getEnv("LANEBOT_QUIT_KEY", "q"),
		HoldWarnSec:   getEnvFloat("LANEBOT_HOLD_WARN", 10.0),
		MonitorAddr:   getEnv("LANEBOT_MONITOR_ADDR", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
