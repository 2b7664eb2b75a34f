package language

import (
	"strings"

	"moviedb/internal/textutil"
)

type entry struct {
	code2   string // ISO 639-1
	code3   string // ISO 639-2/T
	alt3    string // ISO 639-2/B when it differs
	display string
}

var languages = []entry{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"fr", "fra", "fre", "French"},
	{"de", "deu", "ger", "German"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ja", "jpn", "", "Japanese"},
	{"ko", "kor", "", "Korean"},
	{"zh", "zho", "chi", "Chinese"},
	{"ru", "rus", "", "Russian"},
	{"ar", "ara", "", "Arabic"},
	{"hi", "hin", "", "Hindi"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"da", "dan", "", "Danish"},
	{"no", "nor", "", "Norwegian"},
	{"fi", "fin", "", "Finnish"},
	{"fa", "fas", "per", "Persian"},
	{"tr", "tur", "", "Turkish"},
}

var index map[string]*entry

func init() {
	index = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		index[e.code2] = e
		index[e.code3] = e
		if e.alt3 != "" {
			index[e.alt3] = e
		}
		index[textutil.Fold(e.display)] = e
	}
}

func lookup(input string) *entry {
	key := textutil.Fold(strings.TrimSpace(input))
	if key == "" {
		return nil
	}
	return index[key]
}

// Resolve returns the display name for a code or name ("fr" -> "French").
// Unknown input is returned trimmed, with ok false.
func Resolve(input string) (name string, ok bool) {
	if e := lookup(input); e != nil {
		return e.display, true
	}
	return strings.TrimSpace(input), false
}

// ISO2 returns the two-letter code for a recognized code or name, or "".
func ISO2(input string) string {
	if e := lookup(input); e != nil {
		return e.code2
	}
	return ""
}

// Known lists the display names in table order.
func Known() []string {
	names := make([]string, len(languages))
	for i, e := range languages {
		names[i] = e.display
	}
	return names
}
