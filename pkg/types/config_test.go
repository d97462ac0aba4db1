package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "memory backend",
			config: Config{Backend: BackendMemory},
		},
		{
			name:   "file backend with data dir",
			config: Config{Backend: BackendFile, DataDir: "/tmp/ticklist"},
		},
		{
			name:   "sqlite backend",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/ticklist"},
		},
		{
			name:   "memory backend with quota",
			config: Config{Backend: BackendMemory, Quota: 1 << 20},
		},
		{
			name:    "empty backend rejected",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "redis"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative quota rejected",
			config:  Config{Backend: BackendMemory, Quota: -1},
			wantErr: ErrQuotaNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
