package types

import "errors"

// Config holds backend selection and parameters for opening a host store.
type Config struct {
	// Backend selects the host store implementation.
	Backend string `json:"backend" yaml:"backend"`

	// DataDir is where file and sqlite backends keep their data. Ignored by
	// the memory backend.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Quota caps the total stored bytes for the memory backend; zero means
	// unlimited. Other backends ignore it.
	Quota int64 `json:"quota" yaml:"quota"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrQuotaNegative  = errors.New("quota must not be negative")
)

// knownBackends is the set of backends Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Quota < 0 {
		return ErrQuotaNegative
	}
	return nil
}
