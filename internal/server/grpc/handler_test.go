package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
	"github.com/sentiric/sentiric-phonemask-service/internal/service/mask"
	"github.com/sentiric/sentiric-phonemask-service/internal/tracing"
)

func dial(t *testing.T, svc Service) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterPhoneMaskServer(srv, NewHandler(svc, zerolog.New(io.Discard)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func builtinService() *mask.Service {
	return mask.NewService(nil, nil, mask.Settings{GuessCacheSize: 32}, zerolog.New(io.Discard))
}

func TestHandlerFormatPhone(t *testing.T) {
	conn := dial(t, builtinService())

	tests := []struct {
		input    string
		want     string
		wantKind phonemask.GuessKind
	}{
		{input: "", want: "", wantKind: phonemask.NoInferenceAttempted},
		{input: "12025550123", want: "+1 (202) 555-0123", wantKind: phonemask.Matched},
		{input: "1202", want: "+1 (202)", wantKind: phonemask.Matched},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := new(structpb.Struct)
			if err := conn.Invoke(context.Background(), FormatPhoneMethod, wrapperspb.String(tt.input), out); err != nil {
				t.Fatalf("FormatPhone(%q) error = %v", tt.input, err)
			}
			res, err := StructToResult(out)
			if err != nil {
				t.Fatalf("StructToResult() error = %v", err)
			}
			if res.Formatted != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, res.Formatted, tt.want)
			}
			if res.Guess.Kind != tt.wantKind {
				t.Errorf("FormatPhone(%q).Guess.Kind = %v, want %v", tt.input, res.Guess.Kind, tt.wantKind)
			}
		})
	}
}

func TestHandlerGuessCountry(t *testing.T) {
	conn := dial(t, builtinService())

	out := new(structpb.Struct)
	if err := conn.Invoke(context.Background(), GuessCountryMethod, wrapperspb.String("+90 532"), out); err != nil {
		t.Fatalf("GuessCountry() error = %v", err)
	}
	g, err := StructToGuess(out)
	if err != nil {
		t.Fatalf("StructToGuess() error = %v", err)
	}
	if !g.Matched() || g.Country.ISO2 != "TR" || g.Country.DialCode != "90" {
		t.Errorf("GuessCountry(+90 532) = %+v, want TR/90", g)
	}
}

func TestHandlerListCountries(t *testing.T) {
	conn := dial(t, builtinService())

	out := new(structpb.ListValue)
	if err := conn.Invoke(context.Background(), ListCountriesMethod, &emptypb.Empty{}, out); err != nil {
		t.Fatalf("ListCountries() error = %v", err)
	}
	got := ListToCountries(out)
	if len(got) != country.Builtin().Len() {
		t.Fatalf("ListCountries() returned %d records, want %d", len(got), country.Builtin().Len())
	}
	if want, _ := country.Builtin().Lookup(got[0].ISO2); got[0] != want {
		t.Errorf("countries[0] = %+v, want %+v", got[0], want)
	}
}

func TestHandlerReloadWithoutRepository(t *testing.T) {
	conn := dial(t, builtinService())

	err := conn.Invoke(context.Background(), ReloadCountriesMethod, &emptypb.Empty{}, new(wrapperspb.Int32Value))
	if got := status.Code(err); got != codes.FailedPrecondition {
		t.Errorf("ReloadCountries() code = %v, want %v", got, codes.FailedPrecondition)
	}
}

func TestHandlerEchoesTraceID(t *testing.T) {
	conn := dial(t, builtinService())

	ctx := metadata.AppendToOutgoingContext(context.Background(), tracing.MetadataKey, "trace-123")
	var header metadata.MD
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, FormatPhoneMethod, wrapperspb.String("1"), out, grpc.Header(&header)); err != nil {
		t.Fatalf("FormatPhone() error = %v", err)
	}
	if got := header.Get(tracing.MetadataKey); len(got) != 1 || got[0] != "trace-123" {
		t.Errorf("trace header = %v, want [trace-123]", got)
	}

	header = nil
	if err := conn.Invoke(context.Background(), FormatPhoneMethod, wrapperspb.String("1"), out, grpc.Header(&header)); err != nil {
		t.Fatalf("FormatPhone() error = %v", err)
	}
	if got := header.Get(tracing.MetadataKey); len(got) != 1 || got[0] == "" {
		t.Errorf("generated trace header = %v, want one id", got)
	}
}

func TestToStatus(t *testing.T) {
	l := zerolog.New(io.Discard)
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "canceled", err: context.Canceled, want: codes.Canceled},
		{name: "deadline", err: fmt.Errorf("reload: %w", context.DeadlineExceeded), want: codes.DeadlineExceeded},
		{name: "no repository", err: mask.ErrNoRepository, want: codes.FailedPrecondition},
		{name: "empty table", err: mask.ErrEmptyTable, want: codes.FailedPrecondition},
		{name: "invalid country", err: country.ValidationErrors{{Index: 0, ISO2: "US", Field: "DialCode", Message: "must be digits"}}, want: codes.FailedPrecondition},
		{name: "table missing", err: fmt.Errorf("%w: countries", mask.ErrTableMissing), want: codes.Unavailable},
		{name: "other", err: errors.New("boom"), want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(toStatus(l, tt.err)); got != tt.want {
				t.Errorf("toStatus(%v) code = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
