// Package config loads CLI defaults from environment variables and an
// optional timetable.yaml, the way pkg/config loads service settings in
// the broader school-administration examples this CLI was built beside.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds CLI-level defaults. Nothing here reaches the scheduler
// core, which only ever sees a fully-resolved Problem.
type Config struct {
	TeacherMaxDailyLoad int
	Seed                int64
	LogLevel            string
	LogFormat           string
	ReportInterval      time.Duration
	MetricsAddr         string
}

// Load reads timetable.yaml (if present) and TIMETABLE_-prefixed
// environment variables, falling back to built-in defaults. Command
// flags take precedence over everything here; Load never fails on a
// missing config file, only on a malformed one.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("timetable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		TeacherMaxDailyLoad: v.GetInt("teacher_max_daily_load"),
		Seed:                v.GetInt64("seed"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
		ReportInterval:      v.GetDuration("report_interval"),
		MetricsAddr:         v.GetString("metrics_addr"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("teacher_max_daily_load", 5)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("report_interval", time.Minute)
	v.SetDefault("metrics_addr", ":9090")
}
