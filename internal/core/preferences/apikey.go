package preferences

import "strings"

// KeySource tells where a resolved API key came from
type KeySource int

const (
	KeySourceNone KeySource = iota
	KeySourceSession
	KeySourcePreference
	KeySourceScratch
	KeySourceEnvironment
)

func (s KeySource) String() string {
	switch s {
	case KeySourceSession:
		return "session"
	case KeySourcePreference:
		return "preference"
	case KeySourceScratch:
		return "scratch"
	case KeySourceEnvironment:
		return "environment"
	default:
		return "none"
	}
}

// APIKeySources are the candidate API keys, highest priority first
type APIKeySources struct {
	Session     string
	Preference  string
	Scratch     string
	Environment string
}

// Resolve returns the first non-blank key in the order session, persisted
// preference, local scratch, environment default. KeySourceNone means no
// key is available and fetching must not be attempted.
func (s APIKeySources) Resolve() (string, KeySource) {
	candidates := []struct {
		key    string
		source KeySource
	}{
		{s.Session, KeySourceSession},
		{s.Preference, KeySourcePreference},
		{s.Scratch, KeySourceScratch},
		{s.Environment, KeySourceEnvironment},
	}
	for _, c := range candidates {
		if key := strings.TrimSpace(c.key); key != "" {
			return key, c.source
		}
	}
	return "", KeySourceNone
}
