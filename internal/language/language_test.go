package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", Default, false},
		{"en", English, false},
		{"PT", Portuguese, false},
		{"german", German, false},
		{" es ", Spanish, false},
		{"klingon", Language{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Lookup(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	langs := All()
	require.Len(t, langs, 6)
	langs[0].Name = "changed"
	assert.Equal(t, "English", All()[0].Name)
}

func TestPortugueseUsesBrazilianVoice(t *testing.T) {
	assert.Equal(t, "pt-br", Portuguese.TTSCode)
}
