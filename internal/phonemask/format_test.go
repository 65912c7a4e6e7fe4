package phonemask

import (
	"encoding/json"
	"testing"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
)

func TestFormatterFormatPhone(t *testing.T) {
	f := NewFormatter(fixtureTable())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "single digit", input: "1", want: "+1"},
		{name: "single plus", input: "+", want: "+"},
		{name: "single letter", input: "a", want: "+"},
		{name: "us full number", input: "12025550123", want: "+1 (202) 555-0123"},
		{name: "us with punctuation", input: "+1 (202) 555-0123", want: "+1 (202) 555-0123"},
		{name: "us partial stops at digits", input: "120255501", want: "+1 (202) 555-01"},
		{name: "us area code closes paren", input: "1202", want: "+1 (202)"},
		{name: "us partial area code", input: "+12", want: "+1 (2)"},
		{name: "us overflow dropped", input: "1202555012399", want: "+1 (202) 555-0123"},
		{name: "gb pattern", input: "447911123456", want: "44 7911 123456"},
		{name: "two digit dial code only", input: "44", want: "44"},
		{name: "unknown dial code passes through", input: "+99 123", want: "+99123"},
		{name: "punctuation only", input: "()--", want: "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatPhone(tt.input)
			if got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterGuessKinds(t *testing.T) {
	f := NewFormatter(fixtureTable())

	tests := []struct {
		name     string
		input    string
		wantKind GuessKind
		wantISO2 string
	}{
		{name: "empty", input: "", wantKind: NoInferenceAttempted},
		{name: "one character", input: "4", wantKind: NoInferenceAttempted},
		{name: "matched", input: "14165550000", wantKind: Matched, wantISO2: "US"},
		{name: "no match", input: "99", wantKind: NoMatchFound},
		{name: "no digits", input: "ab", wantKind: NoMatchFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(tt.input).Guess
			if got.Kind != tt.wantKind {
				t.Errorf("Format(%q).Guess.Kind = %v, want %v", tt.input, got.Kind, tt.wantKind)
			}
			if got.Country.ISO2 != tt.wantISO2 {
				t.Errorf("Format(%q).Guess.Country.ISO2 = %q, want %q", tt.input, got.Country.ISO2, tt.wantISO2)
			}
		})
	}
}

func TestFormatterDefaultCountry(t *testing.T) {
	f := NewFormatter(fixtureTable(), WithDefaultCountry("US"))

	res := f.Format("99123")
	if !res.Guess.Matched() || res.Guess.Country.ISO2 != "US" {
		t.Fatalf("Format(99123).Guess = %+v, want default US", res.Guess)
	}
	if res.Formatted != "+9 (912) 3" {
		t.Errorf("Format(99123).Formatted = %q, want %q", res.Formatted, "+9 (912) 3")
	}

	// Tek karakterde tahmin yapılmaz; default ülke de devreye girmez.
	if got := f.FormatPhone("9"); got != "+9" {
		t.Errorf("FormatPhone(9) = %q, want %q", got, "+9")
	}
}

func TestFormatterRenderOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  RenderOptions
		input string
		want  string
	}{
		{name: "no country code, unformatted", opts: RenderOptions{DisableCountryCode: true}, input: "1", want: "1"},
		{name: "no country code, empty digits", opts: RenderOptions{DisableCountryCode: true}, input: "+-", want: ""},
		{name: "auto format off", opts: RenderOptions{DisableAutoFormat: true}, input: "12025550123", want: "+12025550123"},
		{name: "long numbers", opts: RenderOptions{EnableLongNumbers: true}, input: "1202555012399", want: "+1 (202) 555-012399"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(fixtureTable(), WithRenderOptions(tt.opts))
			if got := f.FormatPhone(tt.input); got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterStableOverDigitEquivalentInputs(t *testing.T) {
	f := NewFormatter(fixtureTable(), WithGuesser(NewGuesser(64)))
	inputs := []string{"12025550123", "120255501", "1202", "447911123456", "4479", "99887766", "1202555012399"}

	for _, in := range inputs {
		first := Digits(f.FormatPhone(in))
		again := f.FormatPhone(first)
		if again != f.FormatPhone(in) {
			t.Errorf("FormatPhone(Digits(FormatPhone(%q))) = %q, want %q", in, again, f.FormatPhone(in))
		}
	}
}

func TestFormatterFingerprint(t *testing.T) {
	base := NewFormatter(fixtureTable())
	same := NewFormatter(fixtureTable())
	if base.Fingerprint() != same.Fingerprint() {
		t.Error("equal formatters should share a fingerprint")
	}

	others := []*Formatter{
		NewFormatter(fixtureTable(), WithDefaultCountry("US")),
		NewFormatter(fixtureTable(), WithRenderOptions(RenderOptions{EnableLongNumbers: true})),
		NewFormatter(country.Builtin()),
	}
	for i, o := range others {
		if o.Fingerprint() == base.Fingerprint() {
			t.Errorf("others[%d] should have a different fingerprint", i)
		}
	}
}

func TestFormatterGuessIgnoresLengthGate(t *testing.T) {
	f := NewFormatter(fixtureTable())
	if g := f.Guess("4"); g.Kind != NoMatchFound {
		t.Errorf("Guess(4).Kind = %v, want %v", g.Kind, NoMatchFound)
	}
	if g := f.Guess("+44 79"); !g.Matched() || g.Country.ISO2 != "GB" {
		t.Errorf("Guess(+44 79) = %+v, want GB", g)
	}
}

func TestPackageFormatPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "1", want: "+1"},
		{input: "12025550123", want: "+1 (202) 555-0123"},
		{input: "905321234567", want: "+90 532 123 45 67"},
		{input: "447911123456", want: "+44 7911 123456"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatPhone(tt.input); got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGuessKindText(t *testing.T) {
	for _, kind := range []GuessKind{NoInferenceAttempted, NoMatchFound, Matched} {
		b, err := json.Marshal(kind)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", kind, err)
		}
		var back GuessKind
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if back != kind {
			t.Errorf("round trip of %v gave %v", kind, back)
		}
	}

	var k GuessKind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
	if got := GuessKind(42).String(); got != "GuessKind(42)" {
		t.Errorf("String() = %q", got)
	}
}
