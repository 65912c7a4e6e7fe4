package phonemask

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
)

// Result is the outcome of formatting one raw input.
type Result struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
	Guess     Guess  `json:"guess"`
}

// Formatter ties country inference and pattern rendering together for one
// country table. It holds no per-call state and is safe for concurrent use.
type Formatter struct {
	table          *country.Table
	guesser        *Guesser
	defaultCountry string
	render         RenderOptions
	fingerprint    uint64
}

type Option func(*Formatter)

// WithDefaultCountry sets the ISO2 code used when no dial code matches.
// The default is "", meaning no fallback.
func WithDefaultCountry(iso2 string) Option {
	return func(f *Formatter) { f.defaultCountry = iso2 }
}

func WithRenderOptions(opts RenderOptions) Option {
	return func(f *Formatter) { f.render = opts }
}

// WithGuesser shares a memoizing Guesser. Without it every call scans the table.
func WithGuesser(g *Guesser) Option {
	return func(f *Formatter) { f.guesser = g }
}

func NewFormatter(table *country.Table, opts ...Option) *Formatter {
	f := &Formatter{table: table}
	for _, opt := range opts {
		opt(f)
	}
	f.fingerprint = f.computeFingerprint()
	return f
}

func (f *Formatter) computeFingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(strconv.FormatUint(f.table.Fingerprint(), 16))
	_, _ = d.WriteString("|" + f.defaultCountry + "|")
	for _, on := range []bool{f.render.DisableCountryCode, f.render.DisableAutoFormat, f.render.EnableLongNumbers} {
		_, _ = d.WriteString(strconv.FormatBool(on))
	}
	return d.Sum64()
}

func (f *Formatter) Table() *country.Table {
	return f.table
}

func (f *Formatter) DefaultCountry() string {
	return f.defaultCountry
}

// Fingerprint changes whenever the table or any option that affects output
// changes. Two formatters with equal fingerprints format identically.
func (f *Formatter) Fingerprint() uint64 {
	return f.fingerprint
}

// Guess runs country inference over the digits of raw. Unlike Format it does
// not apply the input length gate.
func (f *Formatter) Guess(raw string) Guess {
	return guessFrom(f.guesser.Guess(guessPrefix(Digits(raw)), f.table, f.defaultCountry))
}

// Format masks raw and reports the inferred country.
func (f *Formatter) Format(raw string) Result {
	allDigits := Digits(raw)
	inputLen := utf8.RuneCountInString(raw)

	guess := notAttempted()
	if inputLen > 1 {
		guess = guessFrom(f.guesser.Guess(guessPrefix(allDigits), f.table, f.defaultCountry))
	}

	// Tek haneli girişte tahmin edilen dial code henüz yazılmadıysa başa eklenir.
	working := allDigits
	if inputLen < 2 && guess.Matched() && !strings.HasPrefix(allDigits, guess.Country.DialCode) {
		working = guess.Country.DialCode + allDigits
	}

	if raw == "" && !guess.Attempted() {
		return Result{Guess: guess}
	}

	var pattern string
	if guess.Matched() {
		pattern = guess.Country.Format
	}
	return Result{
		Input:     raw,
		Formatted: Render(working, pattern, f.render),
		Guess:     guess,
	}
}

func (f *Formatter) FormatPhone(raw string) string {
	return f.Format(raw).Formatted
}

var builtinFormatter = sync.OnceValue(func() *Formatter {
	return NewFormatter(country.Builtin(), WithGuesser(NewGuesser(DefaultGuessCacheSize)))
})

// FormatPhone masks raw against the built-in country table with default options.
func FormatPhone(raw string) string {
	return builtinFormatter().FormatPhone(raw)
}
