// sentiric-phonemask-service/internal/service/mask/repository.go
package mask

import (
	"context"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
)

// Repository, ülke referans tablosunun kalıcı kaynağını tanımlayan arayüzdür.
type Repository interface {
	ListCountries(ctx context.Context) ([]country.Country, error)
}

// ResultCache, format sonuçlarının paylaşılan cache'ini tanımlar.
// Get, cache miss durumunda (nil, nil) döner.
type ResultCache interface {
	Get(ctx context.Context, fingerprint uint64, raw string) (*phonemask.Result, error)
	Set(ctx context.Context, fingerprint uint64, raw string, res phonemask.Result) error
}
