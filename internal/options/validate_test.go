package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/oaserrors"
)

func TestRequireOne(t *testing.T) {
	src := func(file, reader, bytes bool) []Source {
		return []Source{{"WithFilePath", file}, {"WithReader", reader}, {"WithBytes", bytes}}
	}

	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{"none", src(false, false, false), "none given (use WithFilePath, WithReader or WithBytes)"},
		{"one", src(false, true, false), ""},
		{"two", src(true, false, true), "got WithFilePath and WithBytes"},
		{"all", src(true, true, true), "got WithFilePath and WithReader and WithBytes"},
		{"no sources at all", nil, "use an input option"},
		{"single candidate", []Source{{"content", false}}, "use content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOne(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
