package phonemask

import (
	"fmt"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
)

// GuessKind describes how a country guess came about.
type GuessKind int

const (
	// NoInferenceAttempted: the input was too short to try.
	NoInferenceAttempted GuessKind = iota
	// NoMatchFound: inference ran but no dial code prefixed the digits and
	// there was no default country to fall back to.
	NoMatchFound
	// Matched: Country holds a real record.
	Matched
)

var guessKindNames = map[GuessKind]string{
	NoInferenceAttempted: "no_inference_attempted",
	NoMatchFound:         "no_match_found",
	Matched:              "matched",
}

func (k GuessKind) String() string {
	if name, ok := guessKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GuessKind(%d)", int(k))
}

func (k GuessKind) MarshalText() ([]byte, error) {
	name, ok := guessKindNames[k]
	if !ok {
		return nil, fmt.Errorf("phonemask: unknown guess kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *GuessKind) UnmarshalText(text []byte) error {
	for kind, name := range guessKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("phonemask: unknown guess kind %q", string(text))
}

// Guess is the outcome of country inference. Country is the zero record unless
// Kind is Matched.
type Guess struct {
	Kind    GuessKind       `json:"kind"`
	Country country.Country `json:"country"`
}

func notAttempted() Guess {
	return Guess{Kind: NoInferenceAttempted}
}

// guessFrom, CountryGuesser sonucunu etiketli değere çevirir.
func guessFrom(c country.Country) Guess {
	if c.IsZero() {
		return Guess{Kind: NoMatchFound}
	}
	return Guess{Kind: Matched, Country: c}
}

func (g Guess) Attempted() bool {
	return g.Kind != NoInferenceAttempted
}

func (g Guess) Matched() bool {
	return g.Kind == Matched
}
