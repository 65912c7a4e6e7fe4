// sentiric-phonemask-service/internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// ServerConfig, HTTP ve gRPC sunucu portlarını tutar.
type ServerConfig struct {
	HttpPort string
	GRPCPort string
}

// TLSConfig, mTLS için sertifika yollarını tutar. Üç alan da boşsa gRPC TLS'siz açılır.
type TLSConfig struct {
	CertPath string
	KeyPath  string
	CaPath   string
}

func (t TLSConfig) Enabled() bool {
	return t.CertPath != "" || t.KeyPath != "" || t.CaPath != ""
}

// PhoneMaskConfig, formatlama davranışını belirler.
type PhoneMaskConfig struct {
	DefaultCountry     string
	GuessCacheSize     int
	ResultCacheTTL     time.Duration
	DisableCountryCode bool
	DisableAutoFormat  bool
	EnableLongNumbers  bool
}

// Config, uygulamanın tüm yapılandırmasını içerir.
type Config struct {
	Env         string
	LogLevel    string
	DatabaseURL string // boşsa yerleşik ülke tablosu kullanılır
	RedisURL    string // boşsa sonuç cache'i devre dışı
	Server      ServerConfig
	TLS         TLSConfig
	PhoneMask   PhoneMaskConfig
}

// Load, .env dosyasını ve ortam değişkenlerini okuyarak yapılandırmayı oluşturur.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}
	return FromEnv()
}

// FromEnv, yalnızca ortam değişkenlerinden yapılandırma üretir.
func FromEnv() (*Config, error) {
	guessCacheSize, err := getEnvInt("PHONEMASK_GUESS_CACHE_SIZE", 4096)
	if err != nil {
		return nil, err
	}
	resultTTL, err := getEnvDuration("PHONEMASK_RESULT_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	disableCC, err := getEnvBool("PHONEMASK_DISABLE_COUNTRY_CODE", false)
	if err != nil {
		return nil, err
	}
	disableAuto, err := getEnvBool("PHONEMASK_DISABLE_AUTO_FORMAT", false)
	if err != nil {
		return nil, err
	}
	longNumbers, err := getEnvBool("PHONEMASK_ENABLE_LONG_NUMBERS", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:         getEnv("ENV", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: getEnv("POSTGRES_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		Server: ServerConfig{
			HttpPort: getEnv("PHONEMASK_SERVICE_HTTP_PORT", "12060"),
			GRPCPort: getEnv("PHONEMASK_SERVICE_GRPC_PORT", "12061"),
		},
		TLS: TLSConfig{
			CertPath: getEnv("PHONEMASK_SERVICE_CERT_PATH", ""),
			KeyPath:  getEnv("PHONEMASK_SERVICE_KEY_PATH", ""),
			CaPath:   getEnv("GRPC_TLS_CA_PATH", ""),
		},
		PhoneMask: PhoneMaskConfig{
			DefaultCountry:     getEnv("PHONEMASK_DEFAULT_COUNTRY", ""),
			GuessCacheSize:     guessCacheSize,
			ResultCacheTTL:     resultTTL,
			DisableCountryCode: disableCC,
			DisableAutoFormat:  disableAuto,
			EnableLongNumbers:  longNumbers,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate, birbiriyle çelişen veya eksik değerleri yakalar.
func (c *Config) Validate() error {
	if c.TLS.Enabled() && (c.TLS.CertPath == "" || c.TLS.KeyPath == "" || c.TLS.CaPath == "") {
		return fmt.Errorf("TLS için PHONEMASK_SERVICE_CERT_PATH, PHONEMASK_SERVICE_KEY_PATH ve GRPC_TLS_CA_PATH birlikte tanımlanmalı")
	}
	if c.PhoneMask.GuessCacheSize < 0 {
		return fmt.Errorf("PHONEMASK_GUESS_CACHE_SIZE negatif olamaz: %d", c.PhoneMask.GuessCacheSize)
	}
	if c.PhoneMask.ResultCacheTTL < 0 {
		return fmt.Errorf("PHONEMASK_RESULT_CACHE_TTL negatif olamaz: %s", c.PhoneMask.ResultCacheTTL)
	}
	if dc := c.PhoneMask.DefaultCountry; dc != "" && len(dc) != 2 {
		return fmt.Errorf("PHONEMASK_DEFAULT_COUNTRY iki harfli ISO kodu olmalı: %q", dc)
	}
	return nil
}

// getEnv, belirtilen anahtarla bir ortam değişkenini okur, bulunamazsa varsayılan değeri döndürür.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s geçerli bir tam sayı değil: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s geçerli bir bool değil: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s geçerli bir süre değil: %w", key, err)
	}
	return d, nil
}
