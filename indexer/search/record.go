package search

import (
	"time"
)

type Model struct {
	ID        uint32 `gorm:"primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `sql:"index"`
}

// ReleaseRecord is a release as it's kept in storage.
type ReleaseRecord struct {
	Model
	Release
	UUID string `gorm:"index"`
}

func NewRecord(release *Release) *ReleaseRecord {
	return &ReleaseRecord{Release: *release}
}
