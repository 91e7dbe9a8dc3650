package config

import (
	"github.com/spf13/pflag"
)

// parseFlags overlays command-line flags on top of the environment values.
// Only flags explicitly present in args change cfg.
func parseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("bond-portal", pflag.ContinueOnError)

	port := fs.IntP("port", "p", cfg.Port, "HTTP listen port")
	mode := fs.String("mode", string(cfg.Mode), "run mode: mock or live")
	fixtures := fs.String("fixtures", cfg.FixturesPath, "JSONC fixtures file for mock mode")
	bypass := fs.Bool("allow-dev-bypass", cfg.AllowDevBypass, "accept the development OTP bypass code (ignored in production builds)")
	auditSink := fs.String("audit-sink", cfg.AuditSink, "audit sink: memory, dynamodb or kafka")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.Changed("port") {
		cfg.Port = *port
	}
	if fs.Changed("mode") {
		cfg.Mode = Mode(*mode)
		if !fs.Changed("allow-dev-bypass") && !envSet("ALLOW_DEV_BYPASS") {
			cfg.AllowDevBypass = cfg.Mode == ModeMock
		}
	}
	if fs.Changed("fixtures") {
		cfg.FixturesPath = *fixtures
	}
	if fs.Changed("allow-dev-bypass") {
		cfg.AllowDevBypass = *bypass
	}
	if fs.Changed("audit-sink") {
		cfg.AuditSink = *auditSink
	}
	return nil
}
