// sentiric-phonemask-service/internal/metrics/metrics.go
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
)

const namespace = "phonemask"

var (
	// FormatRequests, formatlama çağrılarını tahmin sonucuna göre sayar.
	FormatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "format_requests_total",
		Help:      "Format calls by country guess outcome.",
	}, []string{"guess"})

	ResultCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "result_cache_lookups_total",
		Help:      "Result cache lookups by outcome (hit, miss, error).",
	}, []string{"result"})

	CountryTableSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "country_table_size",
		Help:      "Number of records in the active country table.",
	})

	CountryTableReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "country_table_reloads_total",
		Help:      "Country table reload attempts by status.",
	}, []string{"status"})
)

// RegisterGuesser, Guesser istatistiklerini Prometheus'a CounterFunc olarak bağlar.
// Aynı isimle ikinci kayıt denemesi sessizce yok sayılır.
func RegisterGuesser(reg prometheus.Registerer, g *phonemask.Guesser) error {
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guess_cache_hits_total",
			Help:      "Country guess memo hits.",
		}, func() float64 { return float64(g.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guess_cache_misses_total",
			Help:      "Country guess memo misses.",
		}, func() float64 { return float64(g.Stats().Misses) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guess_cache_resets_total",
			Help:      "Times the country guess memo was cleared after reaching capacity.",
		}, func() float64 { return float64(g.Stats().Evictions) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guess_cache_entries",
			Help:      "Current number of memoized country guesses.",
		}, func() float64 { return float64(g.Len()) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
