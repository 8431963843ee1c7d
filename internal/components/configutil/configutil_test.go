package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Lang    string `json:"lang"`
	Verbose bool   `json:"verbose"`
	Limit   int    `json:"limit"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err)
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "playstore.local.json5", LocalPath("playstore.json5"))
	require.Equal(t, "dir/config.local.json5", LocalPath("dir/config.json5"))
	require.Equal(t, "noext.local", LocalPath("noext"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "playstore.json5")

	_, err := ReadConfig[testConfig](name)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, name, `{
		// comments are allowed
		lang: "en",
		limit: 2,
	}`)
	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Lang: "en", Limit: 2}, cfg)

	writeFile(t, filepath.Join(dir, "playstore.local.json5"), `{ lang: "ja", verbose: true }`)
	cfg, err = ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Lang: "ja", Verbose: true, Limit: 2}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "broken.json5")
	writeFile(t, name, `{ lang: `)

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}
