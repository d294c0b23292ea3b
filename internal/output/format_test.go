package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"xml", OutputFormat("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputFormat(tt.in))
		})
	}

	assert.False(t, ParseOutputFormat("xml").IsValid())
}

func TestWriteStructured(t *testing.T) {
	v := struct {
		SourceDir string `json:"sourceDir"`
	}{SourceDir: "src"}

	var yamlBuf, jsonBuf bytes.Buffer
	require.NoError(t, WriteStructured(&yamlBuf, FormatYAML, v))
	require.NoError(t, WriteStructured(&jsonBuf, FormatJSON, v))

	assert.Equal(t, "sourceDir: src\n", yamlBuf.String())
	assert.JSONEq(t, `{"sourceDir":"src"}`, jsonBuf.String())

	assert.Error(t, WriteStructured(&jsonBuf, FormatTable, v))
}
