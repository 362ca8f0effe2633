package chrome

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestOpenRejectsNonHttpURL(t *testing.T) {
	service := New(shell.NewRunner(), "true", "")

	for _, url := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://host", ""} {
		result := service.Open(context.Background(), url, "")

		assert.False(t, result.Success())
		assert.NotEmpty(t, result.Stderr())
	}
}

func TestOpenSpawnFailure(t *testing.T) {
	service := New(shell.NewRunner(), "no-such-browser-binary-42", "")

	result := service.Open(context.Background(), "https://example.com", "Profile 1")

	assert.False(t, result.Success())
	assert.Equal(t, "https://example.com", result.URL)
	assert.Equal(t, "Profile 1", result.Profile)
}

func TestOpenLaunches(t *testing.T) {
	service := New(shell.NewRunner(), "true", "")

	result := service.Open(context.Background(), "http://localhost:8080", "")

	assert.True(t, result.Success())
	assert.Equal(t, 0, result.ReturnCode())
}

func TestProfiles(t *testing.T) {
	dir := t.TempDir()

	state := `{
	  "profile": {
	    "info_cache": {
	      "Default": {"name": "Personal"},
	      "Profile 1": {"name": "Work"},
	      "Profile 2": {}
	    }
	  }
	}`

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Local State"), []byte(state), 0644))

	service := New(shell.NewRunner(), "true", dir)

	profiles, err := service.Profiles()

	assert.NoError(t, err)
	assert.Equal(t, []Profile{
		{ID: "Default", Name: "Personal"},
		{ID: "Profile 1", Name: "Work"},
		{ID: "Profile 2", Name: "Profile 2"},
	}, profiles)
}

func TestProfilesErrors(t *testing.T) {
	_, err := New(shell.NewRunner(), "true", "").Profiles()
	assert.Error(t, err)

	_, err = New(shell.NewRunner(), "true", t.TempDir()).Profiles()
	assert.Error(t, err)

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Local State"), []byte("noise"), 0644))

	_, err = New(shell.NewRunner(), "true", dir).Profiles()
	assert.Error(t, err)
}
