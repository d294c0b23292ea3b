package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantOK  bool
	}{
		{name: "absent file is missing", content: nil, wantOK: false},
		{name: "invalid json is missing", content: strPtr("{not json"), wantOK: false},
		{name: "json array is missing", content: strPtr("[1, 2]"), wantOK: false},
		{name: "empty object is present", content: strPtr("{}"), wantOK: true},
		{name: "full manifest is present", content: strPtr(`{"name":"app","version":"1.0.0"}`), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				writeManifest(t, dir, *tt.content)
			}

			m, ok := Read(dir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.NotNil(t, m)
			} else {
				assert.Nil(t, m)
			}
		})
	}
}

func TestRead_Fields(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
  "name": "web",
  "version": "0.3.1",
  "packageManager": "pnpm@9.1.0",
  "dependencies": {"react": "^18.2.0", "react-router-dom": "^6.22.0"},
  "devDependencies": {"typescript": "^5.4.0"},
  "scripts": {"build": "babel src --out-dir dist", "dev": "vite"}
}`)

	m, ok := Read(dir)
	require.True(t, ok)

	assert.Equal(t, "web", m.Name)
	assert.Equal(t, "0.3.1", m.Version)
	assert.Equal(t, "pnpm@9.1.0", m.PackageManager)
	assert.True(t, m.HasDependency("react-router-dom"))
	assert.True(t, m.HasDependency("typescript"), "devDependencies count as dependencies")
	assert.True(t, m.HasDevDependency("typescript"))
	assert.False(t, m.HasDevDependency("react"))
	assert.Equal(t, []string{"babel src --out-dir dist", "vite"}, m.ScriptValues())
}

func TestNilManifest(t *testing.T) {
	var m *Manifest
	assert.False(t, m.HasDependency("react-router-dom"))
	assert.False(t, m.HasDevDependency("typescript"))
	assert.Nil(t, m.ScriptValues())
}

func strPtr(s string) *string { return &s }
