package storage

import (
	"fmt"

	"github.com/sp0x/scenetime/config"
	"github.com/sp0x/scenetime/storage/bolt"
	"github.com/sp0x/scenetime/storage/sqlite"
)

const (
	BoltBacking   = "boltdb"
	SqliteBacking = "sqlite"
)

var storageBackingMap = make(map[string]func(builder *Builder) (ReleaseStorage, error))

func NewBuilder() *Builder {
	b := &Builder{}
	return b.WithDefaultBacking()
}

// NewBuilderFromConfig uses the storage and db settings.
func NewBuilderFromConfig(cfg config.Config) *Builder {
	b := NewBuilder().WithEndpoint(cfg.GetString("db"))
	if backing := cfg.GetString("storage"); backing != "" {
		b.WithBacking(backing)
	}
	return b
}

type Builder struct {
	backingType string
	endpoint    string
	backing     ReleaseStorage
}

func (b *Builder) WithBacking(backingType string) *Builder {
	b.backingType = backingType
	return b
}

// BackedBy uses an existing storage instead of creating one.
func (b *Builder) BackedBy(backing ReleaseStorage) *Builder {
	b.backing = backing
	return b
}

func (b *Builder) WithDefaultBacking() *Builder {
	b.backingType = BoltBacking
	return b
}

// WithEndpoint sets the database file.
func (b *Builder) WithEndpoint(endpoint string) *Builder {
	b.endpoint = endpoint
	return b
}

func (b *Builder) Build() (ReleaseStorage, error) {
	if b.backing != nil {
		return b.backing, nil
	}
	bfn, ok := storageBackingMap[b.backingType]
	if !ok {
		return nil, fmt.Errorf("unsupported storage backing type: %s", b.backingType)
	}
	return bfn(b)
}

func init() {
	storageBackingMap[BoltBacking] = func(builder *Builder) (ReleaseStorage, error) {
		b, err := bolt.NewBoltStorage(builder.endpoint)
		if err != nil {
			return nil, fmt.Errorf("error while constructing boltdb storage: %w", err)
		}
		return b, nil
	}
	storageBackingMap[SqliteBacking] = func(builder *Builder) (ReleaseStorage, error) {
		d, err := sqlite.NewDBStorage(builder.endpoint)
		if err != nil {
			return nil, fmt.Errorf("error while constructing sqlite storage: %w", err)
		}
		return d, nil
	}
}
