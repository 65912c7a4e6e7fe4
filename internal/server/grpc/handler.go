// sentiric-phonemask-service/internal/server/grpc/handler.go
package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/logger"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
	"github.com/sentiric/sentiric-phonemask-service/internal/service/mask"
	"github.com/sentiric/sentiric-phonemask-service/internal/tracing"
)

// Service arayüzü, handler'ın service katmanından ne beklediğini tanımlar.
type Service interface {
	FormatPhone(ctx context.Context, raw string) (phonemask.Result, error)
	GuessCountry(ctx context.Context, raw string) (phonemask.Guess, error)
	ListCountries(ctx context.Context) ([]country.Country, error)
	ReloadCountries(ctx context.Context) (int, error)
}

type Handler struct {
	svc Service
	log zerolog.Logger
}

var _ PhoneMaskServer = (*Handler)(nil)

func NewHandler(svc Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) FormatPhone(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx, l := h.propagateTrace(ctx, "FormatPhone")
	res, err := h.svc.FormatPhone(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(l, err)
	}
	out, err := ResultToStruct(res)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Sonuç serileştirilemedi: %v", err)
	}
	return out, nil
}

func (h *Handler) GuessCountry(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx, l := h.propagateTrace(ctx, "GuessCountry")
	g, err := h.svc.GuessCountry(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(l, err)
	}
	out, err := GuessToStruct(g)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Tahmin serileştirilemedi: %v", err)
	}
	return out, nil
}

func (h *Handler) ListCountries(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	ctx, l := h.propagateTrace(ctx, "ListCountries")
	countries, err := h.svc.ListCountries(ctx)
	if err != nil {
		return nil, toStatus(l, err)
	}
	out, err := CountriesToList(countries)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Ülke listesi serileştirilemedi: %v", err)
	}
	return out, nil
}

func (h *Handler) ReloadCountries(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	ctx, l := h.propagateTrace(ctx, "ReloadCountries")
	l.Info().Msg("gRPC isteği alındı.")
	n, err := h.svc.ReloadCountries(ctx)
	if err != nil {
		return nil, toStatus(l, err)
	}
	return wrapperspb.Int32(int32(n)), nil
}

// propagateTrace, trace kimliğini çözer, yanıt header'ına yazar ve isteğe özel
// logger'ı context'e bağlar.
func (h *Handler) propagateTrace(ctx context.Context, method string) (context.Context, zerolog.Logger) {
	md, ok := metadata.FromIncomingContext(ctx)
	incoming := ""
	if ok {
		if vals := md.Get(tracing.MetadataKey); len(vals) > 0 {
			incoming = vals[0]
		}
	} else {
		md = metadata.MD{}
	}
	traceID := tracing.TraceID(ctx, incoming)

	md = md.Copy()
	md.Set(tracing.MetadataKey, traceID)
	ctx = metadata.NewIncomingContext(ctx, md)
	_ = grpc.SetHeader(ctx, metadata.Pairs(tracing.MetadataKey, traceID))

	l := logger.WithTrace(h.log, traceID, method)
	return l.WithContext(ctx), l
}

func toStatus(l zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, mask.ErrNoRepository):
		return status.Error(codes.FailedPrecondition, "Ülke veritabanı yapılandırılmamış")
	case errors.Is(err, mask.ErrEmptyTable), errors.Is(err, country.ErrInvalidCountry):
		l.Warn().Err(err).Msg("Ülke tablosu reddedildi")
		return status.Errorf(codes.FailedPrecondition, "Ülke tablosu kullanılamaz: %v", err)
	case errors.Is(err, mask.ErrTableMissing):
		l.Error().Err(err).Msg("countries tablosu bulunamadı")
		return status.Errorf(codes.Unavailable, "Ülke tablosu bulunamadı: %v", err)
	default:
		l.Error().Err(err).Msg("İstek başarısız")
		return status.Errorf(codes.Internal, "İstek başarısız: %v", err)
	}
}
