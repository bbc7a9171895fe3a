package model

// Settings is the external settings-storage collaborator (spec §1, §6's
// "Persisted state"): the core only reads and writes through this key/value
// interface. internal/config.Store implements it; tests may use a bare map.
type Settings interface {
	GetBool(key string) bool
	GetInt(key string) int
	GetString(key string) string
	SetBool(key string, value bool)
	SetInt(key string, value int)
	SetString(key string, value string)
}

// Well-known namespaced setting keys (spec §6: "System.*, Target.*,
// Thread.*, Breakpoint.*").
const (
	SettingPauseOnAttach  = "System.pause-on-attach"
	SettingSuspendTimeout = "System.suspend-timeout-ms"
	SettingStopOnNoSymbols = "Thread.stop-on-no-symbols"
)

// MapSettings is an in-memory Settings implementation, adequate for tests
// and as the zero-config default.
type MapSettings struct {
	bools   map[string]bool
	ints    map[string]int
	strings map[string]string
}

// NewMapSettings creates an empty MapSettings with spec-reasonable defaults.
func NewMapSettings() *MapSettings {
	return &MapSettings{
		bools:   map[string]bool{SettingPauseOnAttach: false, SettingStopOnNoSymbols: false},
		ints:    map[string]int{SettingSuspendTimeout: 1000},
		strings: map[string]string{},
	}
}

func (s *MapSettings) GetBool(key string) bool     { return s.bools[key] }
func (s *MapSettings) GetInt(key string) int        { return s.ints[key] }
func (s *MapSettings) GetString(key string) string  { return s.strings[key] }
func (s *MapSettings) SetBool(key string, v bool)   { s.bools[key] = v }
func (s *MapSettings) SetInt(key string, v int)     { s.ints[key] = v }
func (s *MapSettings) SetString(key string, v string) { s.strings[key] = v }

var _ Settings = (*MapSettings)(nil)
