package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyTimezone, "UTC")
	require.NoError(t, err)

	val, ok := store.Get(KeyTimezone)
	assert.True(t, ok)
	assert.Equal(t, "UTC", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyDefaultFormat, "YYYY-MM-DD")
	require.NoError(t, err)

	assert.Equal(t, "YYYY-MM-DD", store.GetString(KeyDefaultFormat))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyTimezone, "Europe/Berlin")
	require.NoError(t, err)

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", reopened.GetString(KeyTimezone))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyWatchExtensions, []string{".html", ".xhtml"})
	require.NoError(t, err)

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{".html", ".xhtml"}, reopened.GetStringSlice(KeyWatchExtensions))
}

func TestConfigStore_Settings_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	settings := store.Settings()

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestConfigStore_Settings_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyTimezone, "UTC"))
	require.NoError(t, store.Set(KeyDefaultFormat, "YYYY-MM-DD"))
	require.NoError(t, store.Set(KeyWatchExtensions, []string{".xhtml"}))

	settings := store.Settings()

	assert.Equal(t, "UTC", settings.Timezone)
	assert.Equal(t, "YYYY-MM-DD", settings.DefaultFormat)
	assert.Equal(t, []string{".xhtml"}, settings.Extensions)
}

func TestConfigStore_Load_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	content := "[watch]\ndebounce_ms = 200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// Nested tables flatten to dot-notation keys.
	val, ok := store.Get("watch.debounce_ms")
	assert.True(t, ok)
	assert.EqualValues(t, 200, val)
}
