package locale

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/renato0307/tempo/internal/ports"
)

// dateOrder is the position of the day, month and year in a short date
type dateOrder int

const (
	dayFirst dateOrder = iota
	monthFirst
	yearFirst
)

// Formatter implements ports.DateFormatter for a language tag.
// Month names stay English; only the field order follows the region.
type Formatter struct {
	order dateOrder
	tag   language.Tag
}

var _ ports.DateFormatter = (*Formatter)(nil)

// regionOrder lists regions that do not write the day first
var regionOrder = map[string]dateOrder{
	"AS": monthFirst,
	"FM": monthFirst,
	"GU": monthFirst,
	"MH": monthFirst,
	"MP": monthFirst,
	"PH": monthFirst,
	"PR": monthFirst,
	"PW": monthFirst,
	"UM": monthFirst,
	"US": monthFirst,
	"VI": monthFirst,

	"CN": yearFirst,
	"HU": yearFirst,
	"JP": yearFirst,
	"KR": yearFirst,
	"LT": yearFirst,
	"MN": yearFirst,
	"TW": yearFirst,
}

// NewFormatter builds a formatter for a BCP 47 tag or POSIX locale name such
// as "en_US.UTF-8". An empty or unknown value falls back to en-US.
func NewFormatter(name string) *Formatter {
	tag, err := language.Parse(normalize(name))
	if err != nil || tag == language.Und {
		tag = language.AmericanEnglish
	}
	region, _ := tag.Region()
	return &Formatter{
		order: regionOrder[region.String()],
		tag:   tag,
	}
}

// FromEnvironment picks the locale from LC_ALL, LC_TIME or LANG
func FromEnvironment() *Formatter {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return NewFormatter(v)
		}
	}
	return NewFormatter("")
}

// Tag returns the resolved language tag
func (f *Formatter) Tag() language.Tag { return f.tag }

// ShortDate implements ports.DateFormatter
func (f *Formatter) ShortDate(t time.Time, withYear bool) string {
	var layout string
	switch f.order {
	case monthFirst:
		layout = "Jan 2"
		if withYear {
			layout += ", 2006"
		}
	case yearFirst:
		layout = "Jan 2"
		if withYear {
			layout = "2006 Jan 2"
		}
	default:
		layout = "2 Jan"
		if withYear {
			layout += " 2006"
		}
	}
	return t.Local().Format(layout)
}

// TimeOfDay implements ports.DateFormatter
func (f *Formatter) TimeOfDay(t time.Time) string {
	return t.Local().Format("03:04 PM")
}

// normalize turns "en_US.UTF-8@euro" into "en-US"
func normalize(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}
