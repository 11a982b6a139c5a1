package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	RunAddr     string
	LogLevel    string
	MetricsPath string

	// OTLPEndpoint is host:port of an OTLP/HTTP collector; empty disables span export.
	OTLPEndpoint string
}

// parseFlags читает флаги, переменные окружения имеют приоритет над ними.
func parseFlags(args []string) (config, error) {
	fs := pflag.NewFlagSet("skill", pflag.ContinueOnError)
	runAddr := fs.StringP("address", "a", ":8080", "address and port")
	logLevel := fs.StringP("log-level", "l", "debug", "log level")
	metricsPath := fs.String("metrics-path", "/metrics", "metrics endpoint path")
	otlpEndpoint := fs.String("otlp-endpoint", "", "OTLP/HTTP trace collector host:port")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetDefault("run_addr", *runAddr)
	v.SetDefault("log_level", *logLevel)
	v.SetDefault("metrics_path", *metricsPath)
	v.SetDefault("otlp_endpoint", *otlpEndpoint)

	for key, env := range map[string]string{
		"run_addr":      "RUN_ADDR",
		"log_level":     "LOG_LEVEL",
		"metrics_path":  "METRICS_PATH",
		"otlp_endpoint": "OTLP_ENDPOINT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return config{}, err
		}
	}

	return config{
		RunAddr:      v.GetString("run_addr"),
		LogLevel:     v.GetString("log_level"),
		MetricsPath:  v.GetString("metrics_path"),
		OTLPEndpoint: v.GetString("otlp_endpoint"),
	}, nil
}
