// sentiric-phonemask-service/internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/sentiric/sentiric-phonemask-service/internal/cache"
	"github.com/sentiric/sentiric-phonemask-service/internal/config"
	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/database"
	"github.com/sentiric/sentiric-phonemask-service/internal/metrics"
	"github.com/sentiric/sentiric-phonemask-service/internal/repository/postgres"
	"github.com/sentiric/sentiric-phonemask-service/internal/server"
	grpchandler "github.com/sentiric/sentiric-phonemask-service/internal/server/grpc"
	"github.com/sentiric/sentiric-phonemask-service/internal/service/mask"
)

type App struct {
	Cfg *config.Config
	Log zerolog.Logger
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	return &App{Cfg: cfg, Log: log}
}

func (a *App) Run() {
	ctx := context.Background()

	// 1. Altyapı Bağlantıları (ikisi de opsiyonel)
	var repo mask.Repository
	var store *postgres.Repository
	if a.Cfg.DatabaseURL != "" {
		dbPool, err := database.NewConnection(ctx, a.Cfg.DatabaseURL)
		if err != nil {
			a.Log.Fatal().Err(err).Msg("Veritabanı bağlantısı kurulamadı")
		}
		defer dbPool.Close()
		a.Log.Info().Msg("✅ Veritabanı bağlantısı sağlandı")
		store = postgres.NewRepository(dbPool, a.Log)
		repo = store
	} else {
		a.Log.Warn().Msg("POSTGRES_URL tanımlı değil, yalnızca yerleşik ülke tablosu kullanılacak")
	}

	var resultCache mask.ResultCache
	if redisClient := a.setupRedis(); redisClient != nil {
		defer redisClient.Close()
		resultCache = cache.NewFormatCache(redisClient, a.Cfg.PhoneMask.ResultCacheTTL, a.Log)
	}

	// 2. Bağımlılıkların Oluşturulması (Dependency Injection)
	svc := mask.NewService(repo, resultCache, mask.SettingsFromConfig(a.Cfg.PhoneMask), a.Log)
	if err := metrics.RegisterGuesser(prometheus.DefaultRegisterer, svc.Guesser()); err != nil {
		a.Log.Error().Err(err).Msg("Guesser metrikleri kaydedilemedi")
	}
	if store != nil {
		if err := Bootstrap(ctx, store, svc, a.Log); err != nil {
			a.Log.Error().Err(err).Msg("Ülke tablosu veritabanından yüklenemedi, yerleşik tablo ile devam ediliyor")
		}
	}

	// 3. gRPC Sunucusu
	grpcServer, err := server.NewGRPCServer(*a.Cfg, a.Log)
	if err != nil {
		a.Log.Fatal().Err(err).Msg("gRPC sunucusu oluşturulamadı")
	}
	grpchandler.RegisterPhoneMaskServer(grpcServer, grpchandler.NewHandler(svc, a.Log))

	// 4. Sunucuları Başlat
	httpServer := a.startHttpServer(server.NewHTTPHandler(svc, a.Log).Router())
	a.startGRPCServer(grpcServer)

	// 5. Graceful Shutdown
	a.waitForShutdown(grpcServer, httpServer)
}

// CountryStore, Bootstrap'ın veritabanından beklediği işlemlerdir.
type CountryStore interface {
	EnsureSchema(ctx context.Context) error
	CountCountries(ctx context.Context) (int, error)
	UpsertCountries(ctx context.Context, countries []country.Country) (int64, error)
}

type Reloader interface {
	ReloadCountries(ctx context.Context) (int, error)
}

// Bootstrap, countries tablosunu oluşturur, boşsa yerleşik kayıtlarla doldurur
// ve servisin tablosunu veritabanından yeniden yükler.
func Bootstrap(ctx context.Context, store CountryStore, svc Reloader, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("şema oluşturulamadı: %w", err)
	}
	n, err := store.CountCountries(ctx)
	if err != nil {
		return fmt.Errorf("ülke sayısı okunamadı: %w", err)
	}
	if n == 0 {
		seeded, err := store.UpsertCountries(ctx, country.Builtin().Countries())
		if err != nil {
			return fmt.Errorf("yerleşik ülkeler yazılamadı: %w", err)
		}
		log.Info().Int64("count", seeded).Msg("🌱 countries tablosu yerleşik kayıtlarla dolduruldu")
	}
	if _, err := svc.ReloadCountries(ctx); err != nil {
		return err
	}
	return nil
}

func (a *App) setupRedis() *redis.Client {
	if a.Cfg.RedisURL == "" {
		a.Log.Warn().Msg("REDIS_URL tanımlı değil, sonuç cache'i devre dışı")
		return nil
	}
	redisOpts, err := redis.ParseURL(a.Cfg.RedisURL)
	if err != nil {
		a.Log.Fatal().Err(err).Msg("Geçersiz Redis URL")
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		a.Log.Error().Err(err).Msg("Redis bağlantısı başarısız, cache devre dışı kalabilir")
	} else {
		a.Log.Info().Str("addr", redisOpts.Addr).Msg("✅ Redis bağlantısı sağlandı")
	}
	return redisClient
}

func (a *App) startHttpServer(handler http.Handler) *http.Server {
	addr := fmt.Sprintf(":%s", a.Cfg.Server.HttpPort)
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.Log.Info().Str("port", a.Cfg.Server.HttpPort).Msg("HTTP sunucusu (api, health & metrics) dinleniyor...")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatal().Err(err).Msg("HTTP sunucusu başlatılamadı")
		}
	}()
	return srv
}

func (a *App) startGRPCServer(srv *grpc.Server) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", a.Cfg.Server.GRPCPort))
	if err != nil {
		a.Log.Fatal().Err(err).Msg("gRPC portu dinlenemedi")
	}

	go func() {
		a.Log.Info().Str("port", a.Cfg.Server.GRPCPort).Msg("gRPC sunucusu dinleniyor")
		if err := srv.Serve(lis); err != nil {
			a.Log.Fatal().Err(err).Msg("gRPC sunucusu başlatılamadı")
		}
	}()
}

func (a *App) waitForShutdown(grpcSrv *grpc.Server, httpSrv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Log.Warn().Msg("Kapatma sinyali alındı, servisler durduruluyor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.Log.Info().Msg("gRPC sunucusu durduruluyor...")
	grpcSrv.GracefulStop()
	a.Log.Info().Msg("gRPC sunucusu durduruldu.")

	a.Log.Info().Msg("HTTP sunucusu durduruluyor...")
	if err := httpSrv.Shutdown(ctx); err != nil {
		a.Log.Error().Err(err).Msg("HTTP sunucusu düzgün kapatılamadı.")
	} else {
		a.Log.Info().Msg("HTTP sunucusu durduruldu.")
	}

	a.Log.Info().Msg("Servis başarıyla durduruldu.")
}

var _ CountryStore = (*postgres.Repository)(nil)
