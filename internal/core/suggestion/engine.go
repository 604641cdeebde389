// Package suggestion ranks search suggestions from history and a fixed list
// of well-known cities, and tracks keyboard navigation over them.
package suggestion

import "strings"

// CurrentLocation is the sentinel suggestion that triggers geolocation
const CurrentLocation = "Use Current Location"

// MaxSuggestions bounds the visible suggestion list
const MaxSuggestions = 8

// Kind tells what selecting a suggestion does and where it came from
type Kind int

const (
	KindCurrentLocation Kind = iota
	KindHistory
	KindPopular
	KindFreeText
)

func (k Kind) String() string {
	switch k {
	case KindCurrentLocation:
		return "current_location"
	case KindHistory:
		return "history"
	case KindPopular:
		return "popular"
	default:
		return "free_text"
	}
}

// MarshalText renders the kind by name in JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Suggestion is one entry of the ranked list
type Suggestion struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// IsCurrentLocation reports whether selecting s requests geolocation
func (s Suggestion) IsCurrentLocation() bool {
	return s.Kind == KindCurrentLocation
}

// PopularCities is the fixed reference list, in display order
var PopularCities = []string{
	"London",
	"New York",
	"Tokyo",
	"Paris",
	"Sydney",
	"Berlin",
	"Toronto",
	"Singapore",
	"Dubai",
	"Barcelona",
	"Amsterdam",
	"Rome",
	"Los Angeles",
	"Chicago",
	"Hong Kong",
	"Istanbul",
	"Mumbai",
	"Seoul",
	"Mexico City",
	"Cape Town",
	"Kyiv",
	"Lisbon",
}

type Engine struct {
	popular []string
}

// NewEngine builds an engine over popular; nil uses PopularCities
func NewEngine(popular []string) *Engine {
	if popular == nil {
		popular = PopularCities
	}
	return &Engine{popular: append([]string(nil), popular...)}
}

// Suggest ranks candidates for query given the user's history (most recent
// first). A blank query browses the pool. Otherwise prefix matches come
// before substring matches, each in pool order, and an unmatched query is
// offered back as free text. The sentinel is always first.
func (e *Engine) Suggest(query string, history []string) []Suggestion {
	pool := e.pool(history)
	query = strings.TrimSpace(query)

	if query == "" {
		return truncate(pool)
	}

	needle := strings.ToLower(query)
	result := []Suggestion{pool[0]}
	var prefix, substring []Suggestion
	for _, candidate := range pool[1:] {
		text := strings.ToLower(candidate.Text)
		switch {
		case strings.HasPrefix(text, needle):
			prefix = append(prefix, candidate)
		case strings.Contains(text, needle):
			substring = append(substring, candidate)
		}
	}

	result = append(result, prefix...)
	result = append(result, substring...)
	if len(prefix) == 0 && len(substring) == 0 {
		result = append(result, Suggestion{Text: query, Kind: KindFreeText})
	}
	return truncate(result)
}

// pool is sentinel, then history, then popular cities, with case-insensitive
// duplicates removed keeping the first occurrence.
func (e *Engine) pool(history []string) []Suggestion {
	pool := make([]Suggestion, 0, 1+len(history)+len(e.popular))
	seen := make(map[string]struct{}, cap(pool))

	add := func(text string, kind Kind) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		pool = append(pool, Suggestion{Text: text, Kind: kind})
	}

	add(CurrentLocation, KindCurrentLocation)
	for _, h := range history {
		add(h, KindHistory)
	}
	for _, p := range e.popular {
		add(p, KindPopular)
	}
	return pool
}

func truncate(list []Suggestion) []Suggestion {
	if len(list) > MaxSuggestions {
		return list[:MaxSuggestions]
	}
	return list
}

// Texts returns the display text of each suggestion
func Texts(list []Suggestion) []string {
	texts := make([]string, len(list))
	for i, s := range list {
		texts[i] = s.Text
	}
	return texts
}
