package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/runargs/pkg/adapters/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`#Written by the runtime
#Mon Jun 17 10:00:00 CEST 2024
asset_index=17
assets_root=C\:\\Users\\dev\\.gradle\\caches\\assets
unrelated=${not.expanded}
`)
	meta, err := assets.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "17", meta.AssetIndex)
	assert.Equal(t, `C:\Users\dev\.gradle\caches\assets`, meta.AssetsRoot)
}

func TestParse_MissingKeysAreEmpty(t *testing.T) {
	meta, err := assets.Parse([]byte("asset_index=5\n"))
	require.NoError(t, err)
	assert.Equal(t, "5", meta.AssetIndex)
	assert.Empty(t, meta.AssetsRoot)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minecraft_assets.properties")
	require.NoError(t, os.WriteFile(path, []byte("assets_root=/home/dev/assets\nasset_index=17\n"), 0644))

	meta, err := assets.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/assets", meta.AssetsRoot)
	assert.Equal(t, "17", meta.AssetIndex)

	_, err = assets.Load(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	meta, err := assets.Decode(map[string]string{"assets_root": "/a", "asset_index": "1", "extra": "x"})
	require.NoError(t, err)
	assert.Equal(t, "/a", meta.AssetsRoot)
	assert.Equal(t, "1", meta.AssetIndex)
}
