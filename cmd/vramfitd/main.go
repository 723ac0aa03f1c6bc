package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"vramfit/internal/config"
	"vramfit/internal/estimate"
	"vramfit/internal/httpapi"
	"vramfit/internal/registry"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("VRAMFITD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultEndpoint := registry.DefaultEndpoint
	if v := os.Getenv("VRAMFIT_HUB_ENDPOINT"); v != "" {
		defaultEndpoint = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml); flags override it")
	hubEndpoint := flag.String("hub-endpoint", defaultEndpoint, "Model hub base URL")
	hubToken := flag.String("hub-token", os.Getenv("VRAMFIT_HUB_TOKEN"), "Bearer token for gated or private hub repos")
	hubTimeout := flag.Int("hub-timeout", 30, "Hub request timeout in seconds")
	defaultPrecision := flag.String("default-precision", "all", "Precision used when requests omit it: all|auto|32|16|8|4")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated origins to allow (empty disables CORS)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	flag.Parse()

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	passed := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { passed[f.Name] = true })
	applyFlagOverrides(&cfg, passed, *addr, *hubEndpoint, *hubToken, *hubTimeout, *defaultPrecision, *corsOrigins, *logLevel)

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "vramfitd").Logger()
	httpapi.SetLogger(logger)
	httpapi.SetDefaultPrecision(cfg.DefaultPrecision)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins)

	hub := registry.NewHubClient(cfg.HubEndpoint, cfg.HubToken, time.Duration(cfg.HubTimeoutSeconds)*time.Second)
	svc := estimate.New(hub)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("hub", cfg.HubEndpoint).Msg("vramfitd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

// applyFlagOverrides merges flag values into cfg. Explicitly passed flags win
// over the config file; flag defaults only fill fields the file left empty.
func applyFlagOverrides(cfg *config.Config, passed map[string]bool, addr, hubEndpoint, hubToken string, hubTimeout int, defaultPrecision, corsOrigins, logLevel string) {
	if passed["addr"] || cfg.Addr == "" {
		cfg.Addr = addr
	}
	if passed["hub-endpoint"] || cfg.HubEndpoint == "" {
		cfg.HubEndpoint = hubEndpoint
	}
	if passed["hub-token"] || cfg.HubToken == "" {
		cfg.HubToken = hubToken
	}
	if passed["hub-timeout"] || cfg.HubTimeoutSeconds == 0 {
		cfg.HubTimeoutSeconds = hubTimeout
	}
	if passed["default-precision"] || cfg.DefaultPrecision == "" {
		cfg.DefaultPrecision = defaultPrecision
	}
	if origins := splitCSV(corsOrigins); len(origins) > 0 {
		cfg.CORSEnabled = true
		cfg.CORSOrigins = origins
	}
	if passed["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
