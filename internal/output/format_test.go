package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{Format("dir"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		valid bool
	}{
		{"yaml", FormatYAML, true},
		{"YML", FormatYAML, true},
		{"json", FormatJSON, true},
		{"Table", FormatTable, true},
		{"xml", Format("xml"), false},
		{"", Format(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"yaml", "json", "table"}, ValidFormats())
}

type encodeSample struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func TestEncode(t *testing.T) {
	v := encodeSample{Name: "my-api", Enabled: true}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, v, FormatJSON))
		assert.JSONEq(t, `{"name":"my-api","enabled":true}`, buf.String())
	})

	t.Run("yaml uses json tags", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, v, FormatYAML))
		assert.YAMLEq(t, "name: my-api\nenabled: true\n", buf.String())
	})

	t.Run("table is not encodable", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Encode(&buf, v, FormatTable))
	})
}
