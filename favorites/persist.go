package favorites

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

var cacher = sync.OnceValue(func() *gache.Cache[[]*catalog.Item] {
	return gache.New[[]*catalog.Item](&gache.Options{
		Path:       where.Favorites(),
		FileSystem: &filesystem.GacheFs{},
	})
})

var logger = log.For("favorites")

// ErrCorrupt is wrapped by Load when the favorites file was not valid JSON
// and has been moved aside.
var ErrCorrupt = errors.New("favorites file is corrupt")

// checkFile moves a corrupt favorites file to a .corrupt sibling so that
// the next save does not overwrite what the user had.
func checkFile() error {
	path := where.Favorites()

	data, err := filesystem.API().ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(data)) == 0 || gjson.ValidBytes(data) {
		return nil
	}

	backup := path + ".corrupt"
	if err := filesystem.API().Rename(path, backup); err != nil {
		return fmt.Errorf("move corrupt favorites aside: %w", err)
	}

	logger.With(log.Fields{"path": backup}).Warnf("moved corrupt favorites aside")
	return fmt.Errorf("%w, moved to %s", ErrCorrupt, backup)
}

// Load reads the saved favorites into a new store. A corrupt file is moved
// aside and an empty store is returned along with an error wrapping
// ErrCorrupt.
func Load() (*Store, error) {
	if err := checkFile(); err != nil {
		return NewStore(), fmt.Errorf("load favorites: %w", err)
	}

	saved, expired, err := cacher().Get()
	if err != nil {
		return NewStore(), fmt.Errorf("load favorites: %w", err)
	}

	if expired || saved == nil {
		return NewStore(), nil
	}

	return NewStore(saved...), nil
}

// Save writes every favorite of s to disk.
func Save(s *Store) error {
	if err := cacher().Set(s.Items()); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}

	return nil
}

// Persister returns a subscriber that saves s after each change. Failures
// are logged and handed to onError, which may be nil.
func Persister(s *Store, onError func(error)) func(Change) {
	return func(c Change) {
		if err := Save(s); err != nil {
			logger.With(log.Fields{"id": c.Item.ID, "op": c.Op.String()}).Errorf("%v", err)
			if onError != nil {
				onError(err)
			}
			return
		}

		logger.With(log.Fields{"id": c.Item.ID}).Debugf("favorite %s", c.Op)
	}
}

// Open loads the saved favorites and, when favorites.persist is on, keeps
// the file in sync with the returned store. A corrupt file yields an empty
// store along with the error. When the file could not be read, or could not
// be moved aside, the store is not persisted and onError is told so.
func Open(onError func(error)) (*Store, error) {
	if !viper.GetBool(key.FavoritesPersist) {
		return NewStore(), nil
	}

	s, err := Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		if onError != nil {
			onError(fmt.Errorf("%w; changes stay in memory", err))
		}
		return s, err
	}

	s.Subscribe(Persister(s, onError))
	return s, err
}
