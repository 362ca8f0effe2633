package chrome

import (
	"os"
	"path/filepath"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Profiles reads the browser's Local State file and returns the cached
// profiles sorted by directory name. Entries missing a display name fall
// back to the directory name; a malformed cache entry is skipped, not fatal.
func (s *Service) Profiles() ([]Profile, error) {
	if s.userDataDir == "" {
		return nil, errors.New("chrome user data directory is not configured")
	}

	path := filepath.Join(s.userDataDir, "Local State")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read browser state")
	}

	var state struct {
		Profile struct {
			InfoCache map[string]jsoniter.RawMessage `json:"info_cache"`
		} `json:"profile"`
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "failed to decode browser state")
	}

	profiles := make([]Profile, 0, len(state.Profile.InfoCache))

	for id, raw := range state.Profile.InfoCache {
		var entry struct {
			Name string `json:"name"`
		}

		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}

		if entry.Name == "" {
			entry.Name = id
		}

		profiles = append(profiles, Profile{ID: id, Name: entry.Name})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})

	return profiles, nil
}
