package grpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
)

func countryMap(c country.Country) map[string]any {
	return map[string]any{
		"iso2":      c.ISO2,
		"dial_code": c.DialCode,
		"name":      c.Name,
		"priority":  c.Priority,
		"format":    c.Format,
	}
}

func guessMap(g phonemask.Guess) map[string]any {
	return map[string]any{
		"kind":    g.Kind.String(),
		"country": countryMap(g.Country),
	}
}

func ResultToStruct(res phonemask.Result) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"input":     res.Input,
		"formatted": res.Formatted,
		"guess":     guessMap(res.Guess),
	})
}

func GuessToStruct(g phonemask.Guess) (*structpb.Struct, error) {
	return structpb.NewStruct(guessMap(g))
}

func CountriesToList(countries []country.Country) (*structpb.ListValue, error) {
	values := make([]any, len(countries))
	for i, c := range countries {
		values[i] = countryMap(c)
	}
	return structpb.NewList(values)
}

func StructToCountry(s *structpb.Struct) country.Country {
	f := s.GetFields()
	return country.Country{
		ISO2:     f["iso2"].GetStringValue(),
		DialCode: f["dial_code"].GetStringValue(),
		Name:     f["name"].GetStringValue(),
		Priority: int(f["priority"].GetNumberValue()),
		Format:   f["format"].GetStringValue(),
	}
}

func StructToGuess(s *structpb.Struct) (phonemask.Guess, error) {
	f := s.GetFields()
	var g phonemask.Guess
	if err := g.Kind.UnmarshalText([]byte(f["kind"].GetStringValue())); err != nil {
		return phonemask.Guess{}, err
	}
	g.Country = StructToCountry(f["country"].GetStructValue())
	return g, nil
}

func StructToResult(s *structpb.Struct) (phonemask.Result, error) {
	f := s.GetFields()
	guess := f["guess"].GetStructValue()
	if guess == nil {
		return phonemask.Result{}, fmt.Errorf("phonemask: response has no guess")
	}
	g, err := StructToGuess(guess)
	if err != nil {
		return phonemask.Result{}, err
	}
	return phonemask.Result{
		Input:     f["input"].GetStringValue(),
		Formatted: f["formatted"].GetStringValue(),
		Guess:     g,
	}, nil
}

func ListToCountries(l *structpb.ListValue) []country.Country {
	out := make([]country.Country, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		out = append(out, StructToCountry(v.GetStructValue()))
	}
	return out
}
