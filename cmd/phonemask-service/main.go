// sentiric-phonemask-service/cmd/phonemask-service/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sentiric/sentiric-phonemask-service/internal/app"
	"github.com/sentiric/sentiric-phonemask-service/internal/config"
	"github.com/sentiric/sentiric-phonemask-service/internal/logger"
)

var (
	ServiceVersion string
	GitCommit      string
	BuildDate      string
)

const serviceName = "phonemask-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Konfigürasyon yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(serviceName, cfg.Env, cfg.LogLevel)

	log.Info().
		Str("version", ServiceVersion).
		Str("commit", GitCommit).
		Str("build_date", BuildDate).
		Str("profile", cfg.Env).
		Str("default_country", cfg.PhoneMask.DefaultCountry).
		Msg("🚀 phonemask-service başlatılıyor...")

	app.NewApp(cfg, log).Run()
}
