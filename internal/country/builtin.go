package country

import (
	"strconv"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

type builtinEntry struct {
	iso2     string
	name     string
	priority int
	format   string
}

// Dial code'lar libphonenumber metadata'sından türetilir, burada tutulmaz.
// Aynı dial code'u paylaşan ülkelerde priority 0 varsayılan ülkedir.
var builtinEntries = []builtinEntry{
	{"AE", "United Arab Emirates", 0, "+... .. ... ...."},
	{"AR", "Argentina", 0, "+.. (..) ........"},
	{"AT", "Austria", 0, ""},
	{"AU", "Australia", 0, "+.. ... ... ..."},
	{"AZ", "Azerbaijan", 0, "+... (..) ... .. .."},
	{"BE", "Belgium", 0, "+.. ... .. .. .."},
	{"BR", "Brazil", 0, "+.. (..) ........."},
	{"CA", "Canada", 1, "+. (...) ...-...."},
	{"CH", "Switzerland", 0, "+.. .. ... .. .."},
	{"CN", "China", 0, "+.. ..-........."},
	{"DE", "Germany", 0, "+.. .... ........"},
	{"DK", "Denmark", 0, "+.. .. .. .. .."},
	{"DO", "Dominican Republic", 2, "+. (...) ...-...."},
	{"EG", "Egypt", 0, "+.. ... ... ...."},
	{"ES", "Spain", 0, "+.. ... ... ..."},
	{"FI", "Finland", 0, "+... .. ... .. .."},
	{"FR", "France", 0, "+.. . .. .. .. .."},
	{"GB", "United Kingdom", 0, "+.. .... ......"},
	{"GG", "Guernsey", 1, "+.. .... ......"},
	{"GR", "Greece", 0, ""},
	{"IE", "Ireland", 0, "+... .. ......."},
	{"IL", "Israel", 0, "+... ... ... ...."},
	{"IM", "Isle of Man", 2, "+.. .... ......"},
	{"IN", "India", 0, "+.. .....-....."},
	{"IT", "Italy", 0, "+.. ... ......."},
	{"JE", "Jersey", 3, "+.. .... ......"},
	{"JP", "Japan", 0, "+.. .. .... ...."},
	{"KR", "South Korea", 0, "+.. ... .... ...."},
	{"KZ", "Kazakhstan", 1, "+. ... ...-..-.."},
	{"MX", "Mexico", 0, "+.. ... ... ...."},
	{"NG", "Nigeria", 0, "+... .. ... ...."},
	{"NL", "Netherlands", 0, "+.. .. ........"},
	{"NO", "Norway", 0, "+.. ... .. ..."},
	{"NZ", "New Zealand", 0, "+.. ...-...-...."},
	{"PK", "Pakistan", 0, "+.. ...-......."},
	{"PL", "Poland", 0, "+.. ...-...-..."},
	{"PR", "Puerto Rico", 3, "+. (...) ...-...."},
	{"PT", "Portugal", 0, ""},
	{"RU", "Russia", 0, "+. (...) ...-..-.."},
	{"SA", "Saudi Arabia", 0, "+... .. ... ...."},
	{"SE", "Sweden", 0, "+.. (...) ...-..."},
	{"SG", "Singapore", 0, "+.. ....-...."},
	{"TR", "Turkey", 0, "+.. ... ... .. .."},
	{"UA", "Ukraine", 0, "+... (..) ... .. .."},
	{"US", "United States", 0, "+. (...) ...-...."},
	{"UZ", "Uzbekistan", 0, "+... .. ... .. .."},
	{"VA", "Vatican City", 1, "+.. .. .... ...."},
	{"ZA", "South Africa", 0, "+.. .. ... ...."},
}

var builtin = sync.OnceValue(func() *Table {
	countries := make([]Country, 0, len(builtinEntries))
	for _, e := range builtinEntries {
		code := phonenumbers.GetCountryCodeForRegion(e.iso2)
		if code == 0 {
			continue
		}
		countries = append(countries, Country{
			ISO2:     e.iso2,
			DialCode: strconv.Itoa(code),
			Name:     e.name,
			Priority: e.priority,
			Format:   e.format,
		})
	}
	return NewTable(countries)
})

// Builtin returns the process-wide reference table shipped with the service.
// It is used when no database table is configured or a reload fails.
func Builtin() *Table {
	return builtin()
}
