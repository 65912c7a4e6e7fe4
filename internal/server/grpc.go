// sentiric-phonemask-service/internal/server/grpc.go
package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	"github.com/sentiric/sentiric-phonemask-service/internal/config"
)

// NewGRPCServer, TLS yapılandırılmışsa mTLS ile, değilse düz bağlantıyla
// bir gRPC sunucusu oluşturur.
func NewGRPCServer(cfg config.Config, log zerolog.Logger, opts ...grpc.ServerOption) (*grpc.Server, error) {
	opts = append(opts, grpc.ChainUnaryInterceptor(LoggingInterceptor(log)))

	if !cfg.TLS.Enabled() {
		log.Warn().Msg("TLS yapılandırılmamış, gRPC sunucusu şifresiz çalışıyor")
		return grpc.NewServer(opts...), nil
	}

	tlsCfg, err := ServerTLSConfig(cfg.TLS)
	if err != nil {
		return nil, err
	}
	opts = append(opts, grpc.Creds(credentials.NewTLS(tlsCfg)))
	return grpc.NewServer(opts...), nil
}

// ServerTLSConfig, istemci sertifikası doğrulayan bir tls.Config oluşturur.
func ServerTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	certificate, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("sunucu sertifikası yüklenemedi: %w", err)
	}

	caCert, err := os.ReadFile(cfg.CaPath)
	if err != nil {
		return nil, fmt.Errorf("CA sertifikası okunamadı: %w", err)
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("CA sertifikası havuza eklenemedi")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    caPool,
	}, nil
}

// LoggingInterceptor her unary çağrıyı süresi ve durum koduyla loglar.
func LoggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		ev := log.Debug()
		if err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Str("grpc_method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("gRPC çağrısı tamamlandı")
		return resp, err
	}
}
