package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/wojfil/iskierka/pkg"
)

// configName is the file name of the YAML configuration file.
const configName = "config.yaml"

var defaultDirMode os.FileMode = 0o700

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, ".config")
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, pkg.Name)
})

// cacheDir returns the cache directory path used for transient files.
var cacheDir = sync.OnceValue(func() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, ".cache")
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, pkg.Name)
})

// configPath returns the absolute path of the configuration file.
func configPath() string {
	return filepath.Join(configDir(), configName)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
