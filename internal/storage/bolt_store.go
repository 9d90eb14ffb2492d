package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	journalBucket = "published_texts"
	// publishedAt and expiresAt, both UnixNano big-endian.
	recordBytes = 16
)

var errBucketMissing = errors.New("journal bucket missing")

// boltStore keeps text hash -> publish record in a single bbolt bucket.
type boltStore struct {
	db              *bolt.DB
	entryTTL        time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	cleanupMu   sync.Mutex
	lastCleanup atomic.Int64
}

type journalRecord struct {
	publishedAt time.Time
	expiresAt   time.Time
}

func openBolt(path string, opts Options) (*boltStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(journalBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		entryTTL:        opts.EntryTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             time.Now,
	}
	store.lastCleanup.Store(store.now().UnixNano())
	return store, nil
}

func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SeenText reports whether the text hash was published and has not expired.
func (b *boltStore) SeenText(id string) (bool, error) {
	if b == nil || b.db == nil {
		return false, nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return false, err
	}

	var seen bool
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(journalBucket))
		if bucket == nil {
			return errBucketMissing
		}
		rec, ok := decodeRecord(bucket.Get([]byte(id)))
		seen = ok && rec.expiresAt.After(now)
		return nil
	})
	return seen, err
}

// MarkText records the text hash as published now. Marking again extends the TTL.
func (b *boltStore) MarkText(id string) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(journalBucket))
		if bucket == nil {
			return errBucketMissing
		}
		return bucket.Put([]byte(id), encodeRecord(journalRecord{
			publishedAt: now,
			expiresAt:   now.Add(b.entryTTL),
		}))
	})
}

// maybeCleanupExpired sweeps expired or unreadable records at most once per cleanup interval.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if !b.cleanupDue(now) {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	if !b.cleanupDue(now) {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(journalBucket))
		if bucket == nil {
			return errBucketMissing
		}

		var expired [][]byte
		if err := bucket.ForEach(func(k, v []byte) error {
			if rec, ok := decodeRecord(v); !ok || !rec.expiresAt.After(now) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.UnixNano())
	}
	return err
}

func (b *boltStore) cleanupDue(now time.Time) bool {
	return now.Sub(time.Unix(0, b.lastCleanup.Load())) >= b.cleanupInterval
}

// count returns the number of records currently on disk, expired or not.
func (b *boltStore) count() (int, error) {
	var n int
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(journalBucket))
		if bucket == nil {
			return errBucketMissing
		}
		n = bucket.Stats().KeyN
		return nil
	})
	return n, err
}

func encodeRecord(rec journalRecord) []byte {
	buf := make([]byte, recordBytes)
	binary.BigEndian.PutUint64(buf[:8], uint64(rec.publishedAt.UnixNano()))
	binary.BigEndian.PutUint64(buf[8:], uint64(rec.expiresAt.UnixNano()))
	return buf
}

func decodeRecord(value []byte) (journalRecord, bool) {
	if len(value) != recordBytes {
		return journalRecord{}, false
	}
	published := int64(binary.BigEndian.Uint64(value[:8]))
	expires := int64(binary.BigEndian.Uint64(value[8:]))
	if published <= 0 || expires <= 0 {
		return journalRecord{}, false
	}
	return journalRecord{
		publishedAt: time.Unix(0, published),
		expiresAt:   time.Unix(0, expires),
	}, true
}
