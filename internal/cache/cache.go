// Package cache keeps catalog pages on disk so repeated launches do not refetch them.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	"github.com/spf13/viper"
)

// TTL is how long an entry stays valid, from catalog.cache_ttl_hours.
func TTL() time.Duration {
	return time.Duration(viper.GetInt(key.CatalogCacheTTLHours)) * time.Hour
}

// Key derives a file name from the parts identifying a request.
func Key(parts ...string) string {
	normalized := strings.ToLower(strings.Join(parts, "\x00"))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry for key into target. It reports false when the
// entry is missing, expired, or unreadable.
func Read(key string, target any) bool {
	ttl := TTL()
	if ttl <= 0 {
		return false
	}

	path := filepath.Join(where.Lists(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > ttl {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, swapping the file in atomically.
func Write(key string, data any) error {
	if TTL() <= 0 {
		return nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := filepath.Join(where.Lists(), key)
	tmp := path + ".tmp"

	if err := filesystem.API().WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes expired entries. It blocks; callers run it in a goroutine.
func CollectGarbage() {
	ttl := TTL()
	dir := where.Lists()

	_ = filesystem.API().Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if ttl <= 0 || time.Since(info.ModTime()) > ttl {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
}
