package helpers

import (
	"os"
	"path/filepath"
)

// GetRealHome resolves the home directory the node directory belongs in.
// When the backend is started through sudo the process home is /root, but
// the config tree and browser profiles live with the desktop user, so
// SUDO_USER wins over the effective user.
func GetRealHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err.Error())
	}

	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && home == "/root" {
		home = filepath.Join("/home", sudoUser)
	}

	return home
}
