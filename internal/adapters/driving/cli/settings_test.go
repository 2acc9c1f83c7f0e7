package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

func TestSettingsShowCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	_ = ts.config.Set("walk.exclude", []string{"*.json", "tmp/"})

	out, err := execute(t, "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "extract.tag_set = default")
	assert.Contains(t, out, "walk.exclude = [*.json, tmp/]")
	assert.Contains(t, out, "history.enabled = true")
	assert.Contains(t, out, "paths.data_dir = (default)")
}

func TestSettingsSetCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "walk.include_hidden", "true")
	require.NoError(t, err)

	assert.Contains(t, out, "walk.include_hidden = true")
	assert.True(t, ts.config.GetBool("walk.include_hidden"))
}

func TestSettingsSetCmd_UnknownKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "nope", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "keys: extract.tag_set")
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "walk.exclude")
	assert.Error(t, err)
}

func TestSettingValue(t *testing.T) {
	s := domain.DefaultSettings()
	s.Extract.Tags = []string{"nct_id"}
	s.Paths.DataDir = "/d"

	assert.Equal(t, "[nct_id]", settingValue(&s, "extract.tags"))
	assert.Equal(t, "false", settingValue(&s, "walk.include_hidden"))
	assert.Equal(t, "[]", settingValue(&s, "walk.exclude"))
	assert.Equal(t, "/d", settingValue(&s, "paths.data_dir"))
	assert.Equal(t, "", settingValue(&s, "unknown"))
}
