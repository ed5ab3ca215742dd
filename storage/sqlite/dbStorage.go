package sqlite

import (
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sp0x/scenetime/indexer/search"
)

// DBStorage keeps releases in a sqlite database.
type DBStorage struct {
	Path string
	db   *gorm.DB
}

// GetOrmDb opens a sqlite database, the default is db/main.db in the working directory.
func GetOrmDb(pth string) (*gorm.DB, error) {
	dbPath := pth
	if dbPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dbPath = path.Join(cwd, "db", "main.db")
	}
	if err := os.MkdirAll(path.Dir(dbPath), os.ModePerm); err != nil {
		return nil, err
	}
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error with db %v: %w", dbPath, err)
	}
	return db, nil
}

func NewDBStorage(pth string) (*DBStorage, error) {
	gdb, err := GetOrmDb(pth)
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&search.ReleaseRecord{}).Error; err != nil {
		_ = gdb.Close()
		return nil, err
	}
	gdb.Model(&search.ReleaseRecord{}).AddUniqueIndex("idx_release_records_link", "link")
	return &DBStorage{Path: pth, db: gdb}, nil
}

// Add stores a release, updating the existing record if the link is already known.
func (d *DBStorage) Add(release *search.Release) (bool, error) {
	if release == nil || release.Link == "" {
		return false, fmt.Errorf("a release with a link is required")
	}
	var existing search.ReleaseRecord
	query := d.db.Where("link = ?", release.Link).First(&existing)
	if query.RecordNotFound() {
		record := search.NewRecord(release)
		record.UUID = uuid.New().String()
		return true, d.db.Create(record).Error
	}
	if query.Error != nil {
		return false, query.Error
	}
	existing.Release = *release
	return false, d.db.Save(&existing).Error
}

// Find a release by its link, nil is returned if it's not stored.
func (d *DBStorage) Find(link string) (*search.ReleaseRecord, error) {
	var record search.ReleaseRecord
	query := d.db.Where("link = ?", link).First(&record)
	if query.RecordNotFound() {
		return nil, nil
	}
	if query.Error != nil {
		return nil, query.Error
	}
	return &record, nil
}

// GetLatest gets the count latest releases.
func (d *DBStorage) GetLatest(count int) []search.ReleaseRecord {
	var records []search.ReleaseRecord
	d.db.Model(&search.ReleaseRecord{}).
		Order("id desc").
		Limit(count).
		Find(&records)
	return records
}

func (d *DBStorage) Size() int64 {
	var result int64
	d.db.Model(&search.ReleaseRecord{}).Count(&result)
	return result
}

func (d *DBStorage) Truncate() error {
	return d.db.Unscoped().Delete(&search.ReleaseRecord{}).Error
}

func (d *DBStorage) Close() error {
	return d.db.Close()
}
