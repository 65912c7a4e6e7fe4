// sentiric-phonemask-service/internal/client/phonemask_client.go
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/sentiric/sentiric-phonemask-service/internal/config"
	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	grpchelper "github.com/sentiric/sentiric-phonemask-service/internal/grpc"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
	grpchandler "github.com/sentiric/sentiric-phonemask-service/internal/server/grpc"
)

// Client, phonemask-service'in gRPC istemcisidir.
type Client struct {
	conn    grpc.ClientConnInterface
	closer  func() error
	Timeout time.Duration
}

// New, hedefe bağlanır. cfg.TLS tanımlıysa mTLS, değilse şifresiz bağlantı kullanır.
func New(targetURL string, cfg config.Config) (*Client, error) {
	cleanTarget := targetURL
	if _, after, ok := strings.Cut(targetURL, "://"); ok {
		cleanTarget = after
	}

	creds := insecure.NewCredentials()
	if cfg.TLS.Enabled() {
		tlsCfg, err := clientTLSConfig(cfg.TLS, strings.Split(cleanTarget, ":")[0])
		if err != nil {
			return nil, err
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(cleanTarget, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("phonemask-service'e bağlanılamadı: %w", err)
	}
	c := NewFromConn(conn)
	c.closer = conn.Close
	return c, nil
}

func clientTLSConfig(cfg config.TLSConfig, serverName string) (*tls.Config, error) {
	clientCert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("istemci sertifikası yüklenemedi: %w", err)
	}
	caCert, err := os.ReadFile(cfg.CaPath)
	if err != nil {
		return nil, fmt.Errorf("CA sertifikası okunamadı: %w", err)
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("CA sertifikası havuza eklenemedi")
	}
	return &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      caCertPool,
		ServerName:   serverName,
	}, nil
}

// NewFromConn wraps an existing connection. Close is a no-op on such a client.
func NewFromConn(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn, Timeout: grpchelper.DefaultTimeout}
}

func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func (c *Client) FormatPhone(ctx context.Context, raw string, opts ...grpc.CallOption) (phonemask.Result, error) {
	out, err := grpchelper.CallWithTimeout(ctx, c.Timeout, func(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
		out := new(structpb.Struct)
		return out, c.conn.Invoke(ctx, grpchandler.FormatPhoneMethod, wrapperspb.String(raw), out, opts...)
	}, opts...)
	if err != nil {
		return phonemask.Result{}, err
	}
	return grpchandler.StructToResult(out)
}

func (c *Client) GuessCountry(ctx context.Context, raw string, opts ...grpc.CallOption) (phonemask.Guess, error) {
	out, err := grpchelper.CallWithTimeout(ctx, c.Timeout, func(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
		out := new(structpb.Struct)
		return out, c.conn.Invoke(ctx, grpchandler.GuessCountryMethod, wrapperspb.String(raw), out, opts...)
	}, opts...)
	if err != nil {
		return phonemask.Guess{}, err
	}
	return grpchandler.StructToGuess(out)
}

func (c *Client) ListCountries(ctx context.Context, opts ...grpc.CallOption) ([]country.Country, error) {
	out, err := grpchelper.CallWithTimeout(ctx, c.Timeout, func(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
		out := new(structpb.ListValue)
		return out, c.conn.Invoke(ctx, grpchandler.ListCountriesMethod, &emptypb.Empty{}, out, opts...)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return grpchandler.ListToCountries(out), nil
}

func (c *Client) ReloadCountries(ctx context.Context, opts ...grpc.CallOption) (int, error) {
	out, err := grpchelper.CallWithTimeout(ctx, c.Timeout, func(ctx context.Context, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
		out := new(wrapperspb.Int32Value)
		return out, c.conn.Invoke(ctx, grpchandler.ReloadCountriesMethod, &emptypb.Empty{}, out, opts...)
	}, opts...)
	if err != nil {
		return 0, err
	}
	return int(out.GetValue()), nil
}
