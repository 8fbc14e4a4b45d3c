// Package store persists the Tempus state record in a BoltDB file
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tempus/internal/models"
)

const (
	stateBucket = "state"
	metaBucket  = "meta"

	// stateKey is the key of the single persisted record.
	stateKey = "focus-timer-storage"

	// backupPrefix starts the keys of corrupt records kept by Load.
	backupPrefix = stateKey + ".corrupt-"

	versionKey    = "version"
	schemaVersion = "1"
)

var fileMode fs.FileMode = 0o600

type (
	// Client is a BoltDB database client.
	Client struct {
		db     *bolt.DB
		logger *slog.Logger
		loc    *time.Location
		now    func() time.Time
		path   string
	}

	// Option configures a Client.
	Option func(*Client)
)

// WithLocation sets the time zone used to date sessions during repair.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		c.loc = loc
	}
}

// WithClock replaces the clock used to name backups of corrupt records.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// openDB creates or opens a database and locks it.
func openDB(path string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: timeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrTempusRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient opens the database at dbPath and ensures its buckets exist.
func NewClient(dbPath string, opts ...Option) (*Client, error) {
	c := &Client{
		path:   dbPath,
		logger: slog.Default(),
		loc:    time.Local,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(stateBucket))
		if err != nil {
			return err
		}

		meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return err
		}

		return meta.Put([]byte(versionKey), []byte(schemaVersion))
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c.db = db

	return c, nil
}

// IsLocked reports whether another process holds the database at dbPath.
func IsLocked(dbPath string) (bool, error) {
	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, ErrTempusRunning) {
		return true, nil
	}

	return false, err
}

// Load returns the persisted record. A missing record yields the defaults.
// Records whose counters disagree with the session log are repaired and
// written back.
func (c *Client) Load(ctx context.Context) (models.State, error) {
	state := models.State{
		Settings:  models.DefaultSettings(),
		Analytics: models.DefaultAnalytics(),
	}

	if err := ctx.Err(); err != nil {
		return state, err
	}

	if c.db == nil {
		return state, errClosed
	}

	var raw []byte

	err := c.db.View(func(tx *bolt.Tx) error {
		// values are only valid for the life of the transaction
		raw = bytes.Clone(tx.Bucket([]byte(stateBucket)).Get([]byte(stateKey)))
		return nil
	})
	if err != nil {
		return state, err
	}

	if len(raw) == 0 {
		return state, nil
	}

	if err := json.Unmarshal(raw, &state); err != nil {
		defaults := models.State{
			Settings:  models.DefaultSettings(),
			Analytics: models.DefaultAnalytics(),
		}

		key, berr := c.backup(raw)
		if berr != nil {
			return defaults, errBackupState.Fmt(c.path).Wrap(berr)
		}

		return defaults, ErrDecodeState.Fmt(c.path, key).Wrap(err)
	}

	repaired, changed := repair(state, c.loc)
	if changed {
		c.logger.WarnContext(
			ctx,
			"repaired stored analytics",
			slog.Int("sessions", len(repaired.Analytics.Sessions)),
		)

		if err := c.Save(ctx, repaired); err != nil {
			return repaired, err
		}
	}

	return repaired, nil
}

// backup keeps a copy of an undecodable record next to it so that the next
// save cannot destroy it. A record that was already backed up is not copied
// again.
func (c *Client) backup(raw []byte) (string, error) {
	key := fmt.Sprintf("%s%d", backupPrefix, c.now().Unix())

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stateBucket))

		cur := b.Cursor()

		prefix := []byte(backupPrefix)
		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			if bytes.Equal(v, raw) {
				key = string(k)
				return nil
			}
		}

		return b.Put([]byte(key), raw)
	})
	if err != nil {
		return "", err
	}

	c.logger.Warn("kept a copy of the corrupt state record", slog.String("key", key))

	return key, nil
}

// Backups returns the keys of the corrupt records kept by Load, oldest first.
func (c *Client) Backups() ([]string, error) {
	if c.db == nil {
		return nil, errClosed
	}

	var keys []string

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(stateBucket)).Cursor()

		prefix := []byte(backupPrefix)
		for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
			keys = append(keys, string(k))
		}

		return nil
	})

	return keys, err
}

// Save replaces the persisted record in a single transaction.
func (c *Client) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.db == nil {
		return errClosed
	}

	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(stateKey), value)
	})
}

// Path returns the location of the database file.
func (c *Client) Path() string {
	return c.path
}

// Close releases the database file lock.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil

	return err
}
