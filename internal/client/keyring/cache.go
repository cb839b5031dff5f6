package keyring

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/filex"
	"github.com/fxamacker/cbor/v2"
	bolt "go.etcd.io/bbolt"
)

const keysBucket = "keys"

// CachedKeys is what the CLI remembers about an account between sessions.
// The secret key is only stored sealed under the account password.
type CachedKeys struct {
	UserID          string    `cbor:"uid"`
	DisplayName     string    `cbor:"name"`
	PublicKey       string    `cbor:"pk"`
	SealedSecretKey []byte    `cbor:"sealed"`
	CachedAt        time.Time `cbor:"at"`
}

// Cache is a bbolt file of CachedKeys keyed by normalized email.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens or creates the cache file at path.
func OpenCache(path string) (*Cache, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("open key cache: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open key cache %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(keysBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init key cache: %w", err)
	}

	return &Cache{db: db}, nil
}

func cacheKey(email string) []byte {
	return []byte(strings.ToLower(strings.TrimSpace(email)))
}

func (c *Cache) Put(email string, k *CachedKeys) error {
	if k == nil || len(k.SealedSecretKey) == 0 {
		return fmt.Errorf("%w: nothing to cache", common.ErrorValidation)
	}

	data, err := cbor.Marshal(k)
	if err != nil {
		return fmt.Errorf("encode cached keys: %w", err)
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(keysBucket)).Put(cacheKey(email), data)
	})
}

// Get returns the cached entry for email or common.ErrorNotFound.
func (c *Cache) Get(email string) (*CachedKeys, error) {
	var k CachedKeys
	err := c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(keysBucket)).Get(cacheKey(email))
		if raw == nil {
			return common.ErrorNotFound
		}
		// raw is only valid inside the transaction; Unmarshal copies.
		return cbor.Unmarshal(raw, &k)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("read key cache: %w", err)
	}
	return &k, nil
}

func (c *Cache) Delete(email string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(keysBucket)).Delete(cacheKey(email))
	})
}

func (c *Cache) Close() error {
	return c.db.Close()
}
