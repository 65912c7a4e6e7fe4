package phonemask

import "testing"

const usFormat = "+. (...) ...-...."

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		digits  string
		pattern string
		opts    RenderOptions
		want    string
	}{
		{name: "empty digits", digits: "", pattern: usFormat, want: "+"},
		{name: "empty digits without country code", digits: "", pattern: usFormat, opts: RenderOptions{DisableCountryCode: true}, want: ""},
		{name: "single digit passes through", digits: "1", pattern: usFormat, want: "+1"},
		{name: "single digit without country code", digits: "1", pattern: usFormat, opts: RenderOptions{DisableCountryCode: true}, want: "1"},
		{name: "no pattern passes through", digits: "4915112345678", pattern: "", want: "+4915112345678"},
		{name: "auto format disabled", digits: "12025550123", pattern: usFormat, opts: RenderOptions{DisableAutoFormat: true}, want: "+12025550123"},
		{name: "exact fill", digits: "12025550123", pattern: usFormat, want: "+1 (202) 555-0123"},
		{name: "exact fill without plus option keeps pattern literals", digits: "12025550123", pattern: usFormat, opts: RenderOptions{DisableCountryCode: true}, want: "+1 (202) 555-0123"},
		{name: "stops before trailing literals", digits: "120255501", pattern: usFormat, want: "+1 (202) 555-01"},
		{name: "stops right after a full group", digits: "1202555", pattern: usFormat, want: "+1 (202) 555"},
		{name: "open paren is closed", digits: "120", pattern: usFormat, want: "+1 (20)"},
		{name: "full area code gets closing paren once", digits: "1202", pattern: usFormat, want: "+1 (202)"},
		{name: "overflow dropped", digits: "120255501239999", pattern: usFormat, want: "+1 (202) 555-0123"},
		{name: "overflow kept with long numbers", digits: "120255501239999", pattern: usFormat, opts: RenderOptions{EnableLongNumbers: true}, want: "+1 (202) 555-01239999"},
		{name: "pattern without plus", digits: "447911123456", pattern: ".. .... ......", want: "44 7911 123456"},
		{name: "leading literals emitted while digits remain", digits: "44", pattern: "+.. .... ......", want: "+44"},
		{name: "unicode literals", digits: "9055", pattern: "+.. ‒ ..", want: "+90 ‒ 55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.digits, tt.pattern, tt.opts)
			if got != tt.want {
				t.Errorf("Render(%q, %q, %+v) = %q, want %q", tt.digits, tt.pattern, tt.opts, got, tt.want)
			}
		})
	}
}
