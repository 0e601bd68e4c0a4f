package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Platform language codes and their BCP 47 tags, kept as parallel slices so
// a matcher index maps straight back to the platform code.
var (
	supportedTags = []language.Tag{
		language.English,
		language.Telugu,
		language.Hindi,
		language.Tamil,
		language.Kannada,
		language.Malayalam,
	}
	supportedCodes = []string{
		"english",
		"telugu",
		"hindi",
		"tamil",
		"kannada",
		"malayalam",
	}
	tagMatcher = language.NewMatcher(supportedTags)
)

// NegotiateLanguage picks the language the public page should render in.
// Order: an explicit ?lang value when it names an enabled language, then the
// guest browser's Accept-Language preferences matched against the enabled
// set, then the profile's default language, then the first enabled language.
// Total: any input combination yields a supported code.
func NegotiateLanguage(queryLang, acceptHeader, defaultLang string, enabled []string) string {
	ordered := make([]string, 0, len(enabled))
	enabledSet := make(map[string]bool, len(enabled))
	for _, code := range enabled {
		code = strings.ToLower(strings.TrimSpace(code))
		if KnownLanguage(code) && !enabledSet[code] {
			enabledSet[code] = true
			ordered = append(ordered, code)
		}
	}
	if len(enabledSet) == 0 {
		if KnownLanguage(defaultLang) {
			return strings.ToLower(defaultLang)
		}
		return DefaultLanguage
	}

	if q := strings.ToLower(strings.TrimSpace(queryLang)); q != "" && enabledSet[q] {
		return q
	}

	if accept := strings.TrimSpace(acceptHeader); accept != "" {
		if desired, _, err := language.ParseAcceptLanguage(accept); err == nil {
			// desired is already sorted by quality; take the first
			// preference that maps onto an enabled language.
			for _, want := range desired {
				_, idx, conf := tagMatcher.Match(want)
				if conf == language.No {
					continue
				}
				if code := supportedCodes[idx]; enabledSet[code] {
					return code
				}
			}
		}
	}

	if d := strings.ToLower(strings.TrimSpace(defaultLang)); enabledSet[d] {
		return d
	}
	return ordered[0]
}
