package bolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/indexer/search"
)

const (
	releasesBucket   = "releases"
	linkIndexBucket  = "releases.links"
	chatsBucket      = "telegram_chats"
	defaultFileMode  = 0600
	defaultOpenLimit = 5 * time.Second
)

// BoltStorage keeps releases in a bolt database.
// Releases are keyed by an incrementing id, so the newest ones are at the end of the bucket.
// A second bucket maps download links to ids.
type BoltStorage struct {
	Database *bolt.DB
	now      func() time.Time
}

func NewBoltStorage(dbPath string) (*BoltStorage, error) {
	if dbPath == "" {
		dbPath = DefaultBoltPath()
	}
	dbx, err := GetBoltDb(dbPath)
	if err != nil {
		return nil, err
	}
	return &BoltStorage{
		Database: dbx,
		now:      time.Now,
	}, nil
}

// GetBoltDb opens the database, creating the buckets we need.
func GetBoltDb(file string) (*bolt.DB, error) {
	if err := os.MkdirAll(path.Dir(file), os.ModePerm); err != nil {
		return nil, err
	}
	dbx, err := bolt.Open(file, defaultFileMode, &bolt.Options{Timeout: defaultOpenLimit})
	if err != nil {
		return nil, err
	}
	err = dbx.Update(func(tx *bolt.Tx) error {
		return createBuckets(tx)
	})
	if err != nil {
		_ = dbx.Close()
		return nil, err
	}
	return dbx, nil
}

func createBuckets(tx *bolt.Tx) error {
	for _, name := range []string{releasesBucket, linkIndexBucket, chatsBucket} {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return err
		}
	}
	return nil
}

func DefaultBoltPath() string {
	cwd, _ := os.Getwd()
	return path.Join(cwd, "db", "bolt.db")
}

// Add stores a release. If a release with the same link exists it's updated instead.
func (b *BoltStorage) Add(release *search.Release) (bool, error) {
	if release == nil || release.Link == "" {
		return false, errors.New("a release with a link is required")
	}
	isNew := false
	err := b.Database.Update(func(tx *bolt.Tx) error {
		releases := tx.Bucket([]byte(releasesBucket))
		links := tx.Bucket([]byte(linkIndexBucket))
		if releases == nil || links == nil {
			return errors.New("storage isn't initialized")
		}
		now := b.now()
		record := search.NewRecord(release)
		idBytes := links.Get([]byte(release.Link))
		if idBytes != nil {
			existing := search.ReleaseRecord{}
			if err := json.Unmarshal(releases.Get(idBytes), &existing); err != nil {
				return err
			}
			record.Model = existing.Model
			record.UUID = existing.UUID
			record.UpdatedAt = now
		} else {
			nextID, err := releases.NextSequence()
			if err != nil {
				return err
			}
			record.ID = uint32(nextID)
			record.UUID = uuid.New().String()
			record.CreatedAt = now
			record.UpdatedAt = now
			idBytes = itob(nextID)
			if err := links.Put([]byte(release.Link), idBytes); err != nil {
				return err
			}
			isNew = true
		}
		serialized, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return releases.Put(idBytes, serialized)
	})
	return isNew, err
}

// Find gets a release by its download link. It returns nil if there's none.
func (b *BoltStorage) Find(link string) (*search.ReleaseRecord, error) {
	var record *search.ReleaseRecord
	err := b.Database.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket([]byte(linkIndexBucket)).Get([]byte(link))
		if idBytes == nil {
			return nil
		}
		record = &search.ReleaseRecord{}
		return json.Unmarshal(tx.Bucket([]byte(releasesBucket)).Get(idBytes), record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetLatest returns the newest stored releases, newest first.
func (b *BoltStorage) GetLatest(count int) []search.ReleaseRecord {
	var output []search.ReleaseRecord
	_ = b.Database.View(func(tx *bolt.Tx) error {
		walkNewest(tx.Bucket([]byte(releasesBucket)), func(value []byte) bool {
			if len(output) >= count {
				return false
			}
			record := search.ReleaseRecord{}
			if err := json.Unmarshal(value, &record); err != nil {
				log.Warning("Couldn't deserialize release from bolt storage.")
				return true
			}
			output = append(output, record)
			return true
		})
		return nil
	})
	return output
}

func (b *BoltStorage) Size() int64 {
	var count int
	_ = b.Database.View(func(tx *bolt.Tx) error {
		count = tx.Bucket([]byte(releasesBucket)).Stats().KeyN
		return nil
	})
	return int64(count)
}

// Truncate removes everything from the database.
func (b *BoltStorage) Truncate() error {
	return b.Database.Update(func(tx *bolt.Tx) error {
		var names [][]byte
		_ = tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, append([]byte(nil), name...))
			return nil
		})
		for _, name := range names {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		return createBuckets(tx)
	})
}

func (b *BoltStorage) Close() error {
	return b.Database.Close()
}

// itob returns an 8-byte big endian representation of v.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func i64tob(v int64) []byte {
	return itob(uint64(v))
}
