// sentiric-phonemask-service/internal/country/country.go
package country

import (
	"iter"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Country, ülke referans tablosundaki tek bir kaydı temsil eder.
// Sıfır değerli Country, "gerçek bir ülke eşleşmedi" anlamına gelen sentinel kayıttır.
type Country struct {
	ISO2     string `json:"iso2" validate:"required,len=2,alpha"`
	DialCode string `json:"dial_code" validate:"required,number,max=4"`
	Name     string `json:"name" validate:"required,max=128"`
	// Priority küçük olan kazanır (aynı dial code paylaşan ülkeler için).
	Priority int `json:"priority" validate:"gte=0,lte=10000"`
	// Format boşsa numara maske uygulanmadan geçirilir.
	Format string `json:"format,omitempty" validate:"max=64"`
}

// IsZero, kaydın sentinel (eşleşme yok) kaydı olup olmadığını söyler.
func (c Country) IsZero() bool {
	return c.Name == ""
}

// Table is an immutable, read-only list of countries. The zero value and a nil
// *Table both behave as an empty table.
type Table struct {
	countries   []Country
	byISO2      map[string]int
	fingerprint uint64
}

// NewTable copies the given records. When several records share an ISO2 code
// the first one is used for lookups.
func NewTable(countries []Country) *Table {
	t := &Table{
		countries: make([]Country, len(countries)),
		byISO2:    make(map[string]int, len(countries)),
	}
	copy(t.countries, countries)

	d := xxhash.New()
	for i, c := range t.countries {
		if _, exists := t.byISO2[c.ISO2]; !exists && c.ISO2 != "" {
			t.byISO2[c.ISO2] = i
		}
		// 0x1f alanları, 0x1e kayıtları ayırır; böylece "1"+"23" ile "12"+"3" çakışmaz.
		_, _ = d.WriteString(c.ISO2)
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(c.DialCode)
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(c.Name)
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(strconv.Itoa(c.Priority))
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(c.Format)
		_, _ = d.Write([]byte{0x1e})
	}
	t.fingerprint = d.Sum64()
	return t
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.countries)
}

// All yields the records in table order.
func (t *Table) All() iter.Seq[Country] {
	return func(yield func(Country) bool) {
		if t == nil {
			return
		}
		for _, c := range t.countries {
			if !yield(c) {
				return
			}
		}
	}
}

// Countries returns a copy of the records.
func (t *Table) Countries() []Country {
	if t == nil {
		return nil
	}
	out := make([]Country, len(t.countries))
	copy(out, t.countries)
	return out
}

// Lookup finds a record by ISO2 code. An empty code never matches.
func (t *Table) Lookup(iso2 string) (Country, bool) {
	if t == nil || iso2 == "" {
		return Country{}, false
	}
	i, ok := t.byISO2[iso2]
	if !ok {
		return Country{}, false
	}
	return t.countries[i], true
}

// Fingerprint is a content hash of the table. Tables with identical records in
// identical order share a fingerprint, so it can stand in for table identity
// in cache keys.
func (t *Table) Fingerprint() uint64 {
	if t == nil {
		return xxhash.Sum64(nil)
	}
	return t.fingerprint
}
