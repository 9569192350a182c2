// Package where resolves the filesystem locations marquee reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "MARQUEE_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory. It follows XDG_CONFIG_HOME on Linux
// and the user profile equivalents on Darwin and Windows, unless
// MARQUEE_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache is the directory for data that can be thrown away at any time.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}

	return mkdir(filepath.Join(base, constant.App))
}

// Lists is where catalog pages fetched from TMDB are cached.
func Lists() string {
	return mkdir(filepath.Join(Cache(), "lists"))
}

// Logs is the log directory.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Favorites is the file holding the saved favorites.
func Favorites() string {
	return filepath.Join(Config(), "favorites.json")
}

// Queries is the file holding past search queries.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Genres is the file holding the genre id to name tables.
func Genres() string {
	return filepath.Join(Cache(), "genres.json")
}
