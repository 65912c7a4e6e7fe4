// sentiric-phonemask-service/internal/service/mask/service.go
package mask

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/sentiric/sentiric-phonemask-service/internal/config"
	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/metrics"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
)

// Settings, Formatter'a uygulanacak ve tablo değişse de sabit kalan ayarlardır.
type Settings struct {
	DefaultCountry string
	GuessCacheSize int
	Render         phonemask.RenderOptions
}

func SettingsFromConfig(cfg config.PhoneMaskConfig) Settings {
	return Settings{
		DefaultCountry: cfg.DefaultCountry,
		GuessCacheSize: cfg.GuessCacheSize,
		Render: phonemask.RenderOptions{
			DisableCountryCode: cfg.DisableCountryCode,
			DisableAutoFormat:  cfg.DisableAutoFormat,
			EnableLongNumbers:  cfg.EnableLongNumbers,
		},
	}
}

// Service struct'ı, tüm bağımlılıkları tutar. Aktif Formatter atomik olarak
// değiştirilir; devam eden çağrılar eski tabloyla tamamlanır.
type Service struct {
	// Repository nil olabilir: bu durumda yalnızca yerleşik tablo kullanılır.
	repo Repository
	// Cache nil olabilir.
	cache     ResultCache
	guesser   *phonemask.Guesser
	validator *country.Validator
	settings  Settings
	formatter atomic.Pointer[phonemask.Formatter]
	log       zerolog.Logger
}

func NewService(repo Repository, cache ResultCache, settings Settings, log zerolog.Logger) *Service {
	s := &Service{
		repo:      repo,
		cache:     cache,
		guesser:   phonemask.NewGuesser(settings.GuessCacheSize),
		validator: country.NewValidator(),
		settings:  settings,
		log:       log,
	}
	s.install(country.Builtin())
	return s
}

func (s *Service) install(table *country.Table) {
	s.formatter.Store(phonemask.NewFormatter(table,
		phonemask.WithGuesser(s.guesser),
		phonemask.WithDefaultCountry(s.settings.DefaultCountry),
		phonemask.WithRenderOptions(s.settings.Render),
	))
	metrics.CountryTableSize.Set(float64(table.Len()))
}

func (s *Service) Guesser() *phonemask.Guesser {
	return s.guesser
}

func (s *Service) Formatter() *phonemask.Formatter {
	return s.formatter.Load()
}

// logger, context'e bağlı bir istek logger'ı varsa onu, yoksa servis logger'ını döndürür.
func (s *Service) logger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return s.log
}

// -----------------------------------------------------------
// CORE LOGIC: FORMAT PHONE
// -----------------------------------------------------------

func (s *Service) FormatPhone(ctx context.Context, raw string) (phonemask.Result, error) {
	if err := ctx.Err(); err != nil {
		return phonemask.Result{}, err
	}
	l := s.logger(ctx)
	f := s.formatter.Load()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, f.Fingerprint(), raw)
		switch {
		case err != nil:
			metrics.ResultCacheLookups.WithLabelValues("error").Inc()
			l.Warn().Err(err).Msg("Sonuç cache'i okunamadı, hesaplamaya devam ediliyor")
		case cached != nil:
			metrics.ResultCacheLookups.WithLabelValues("hit").Inc()
			metrics.FormatRequests.WithLabelValues(cached.Guess.Kind.String()).Inc()
			return *cached, nil
		default:
			metrics.ResultCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	res := f.Format(raw)
	metrics.FormatRequests.WithLabelValues(res.Guess.Kind.String()).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, f.Fingerprint(), raw, res); err != nil {
			l.Warn().Err(err).Msg("Sonuç cache'e yazılamadı")
		}
	}

	l.Debug().
		Str("guess", res.Guess.Kind.String()).
		Str("country", res.Guess.Country.ISO2).
		Str("formatted", res.Formatted).
		Msg("Numara formatlandı")
	return res, nil
}

// GuessCountry, girişteki ilk haneler için ülke tahmini yapar.
func (s *Service) GuessCountry(ctx context.Context, raw string) (phonemask.Guess, error) {
	if err := ctx.Err(); err != nil {
		return phonemask.Guess{}, err
	}
	return s.formatter.Load().Guess(raw), nil
}

func (s *Service) ListCountries(ctx context.Context) ([]country.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.formatter.Load().Table().Countries(), nil
}

// -----------------------------------------------------------
// COUNTRY TABLE RELOAD
// -----------------------------------------------------------

// ReloadCountries, ülke tablosunu repository'den yeniden yükler. Hata durumunda
// mevcut tablo korunur.
func (s *Service) ReloadCountries(ctx context.Context) (int, error) {
	l := s.logger(ctx)
	if s.repo == nil {
		return 0, ErrNoRepository
	}

	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		metrics.CountryTableReloads.WithLabelValues("error").Inc()
		l.Error().Err(err).Msg("Ülke tablosu okunamadı, mevcut tablo korunuyor")
		return 0, err
	}
	if len(countries) == 0 {
		metrics.CountryTableReloads.WithLabelValues("empty").Inc()
		l.Warn().Msg("Ülke tablosu boş, mevcut tablo korunuyor")
		return 0, ErrEmptyTable
	}
	if err := s.validator.Validate(countries); err != nil {
		metrics.CountryTableReloads.WithLabelValues("invalid").Inc()
		var verrs country.ValidationErrors
		if errors.As(err, &verrs) {
			l.Error().Int("errors", len(verrs)).Str("first", verrs[0].Error()).Msg("Ülke tablosu geçersiz, mevcut tablo korunuyor")
		}
		return 0, fmt.Errorf("ülke tablosu doğrulanamadı: %w", err)
	}

	table := country.NewTable(countries)
	s.install(table)
	s.guesser.Reset()
	metrics.CountryTableReloads.WithLabelValues("ok").Inc()

	l.Info().
		Int("countries", table.Len()).
		Str("fingerprint", fmt.Sprintf("%016x", table.Fingerprint())).
		Msg("✅ Ülke tablosu yüklendi")
	return table.Len(), nil
}
