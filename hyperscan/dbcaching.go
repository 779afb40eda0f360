//go:build hyperscan

package hyperscan

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strconv"

	hs "github.com/flier/gohs/hyperscan"
	"github.com/rs/zerolog"
)

// DbCache is a cache for pre-built Hyperscan databases, so that large pattern sets only pay the Hyperscan compile cost once per machine.
type DbCache interface {
	cacheID(patterns []*hs.Pattern) string
	loadFromCache(cacheID string) hs.BlockDatabase
	saveToCache(cacheID string, db hs.BlockDatabase)
}

type dbCacheImpl struct {
	fs     CacheFilesystem
	logger zerolog.Logger
}

// NewDbCache creates a DbCache using the given file system interface.
func NewDbCache(logger zerolog.Logger, fs CacheFilesystem) DbCache {
	return &dbCacheImpl{fs: fs, logger: logger}
}

func (c *dbCacheImpl) cacheID(patterns []*hs.Pattern) string {
	hash := sha1.New() // Keep a hash of the current DB that we will use as a cache ID.
	io.WriteString(hash, hs.Version())
	for _, p := range patterns {
		io.WriteString(hash, strconv.Itoa(p.Id))
		io.WriteString(hash, p.String())
		io.WriteString(hash, strconv.Itoa(int(p.Flags)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func (c *dbCacheImpl) loadFromCache(cacheID string) hs.BlockDatabase {
	dir := c.fs.cacheDirectory()
	path := filepath.Join(dir, cacheID)

	if !c.fs.exists(path) {
		return nil
	}

	bb, err := c.fs.readFile(path)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Could not read cached Hyperscan database")
		return nil
	}

	db, err := hs.UnmarshalBlockDatabase(bb)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Cached Hyperscan database is not usable")
		return nil
	}

	c.logger.Debug().Str("path", path).Msg("Loaded Hyperscan database from cache")
	return db
}

func (c *dbCacheImpl) saveToCache(cacheID string, db hs.BlockDatabase) {
	dir := c.fs.cacheDirectory()
	if err := c.fs.mkdirAll(dir); err != nil {
		c.logger.Debug().Err(err).Str("dir", dir).Msg("Could not create Hyperscan cache directory")
		return
	}

	bb, err := db.Marshal()
	if err != nil {
		c.logger.Debug().Err(err).Msg("Could not serialize Hyperscan database")
		return
	}

	path := filepath.Join(dir, cacheID)
	if err := c.fs.writeFile(path, bb, 0644); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Could not write Hyperscan database to cache")
	}
}

// CacheFilesystem is an interface with the functionality the cache needs to persist to a filesystem.
type CacheFilesystem interface {
	readFile(filename string) ([]byte, error)
	writeFile(filename string, data []byte, perm os.FileMode) error
	mkdirAll(dir string) error
	cacheDirectory() string
	exists(filename string) bool
}

type cacheFilesystemImpl struct {
	dir string
}

// NewCacheFileSystem creates a CacheFilesystem that stores databases in dir on the real file system.
// An empty dir means a "rxfacade-hyperscan" directory under the user's cache directory.
func NewCacheFileSystem(dir string) CacheFilesystem {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, "rxfacade-hyperscan")
	}
	return &cacheFilesystemImpl{dir: dir}
}

func (c *cacheFilesystemImpl) readFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (c *cacheFilesystemImpl) writeFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

func (c *cacheFilesystemImpl) mkdirAll(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func (c *cacheFilesystemImpl) cacheDirectory() string {
	return c.dir
}

func (c *cacheFilesystemImpl) exists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}
