package storage

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// itemRow is the gorm model backing persisted mission items. Items are
// stored flat (no nested structs) so a single row round-trips to a
// mission.Item without a mapping layer beyond field assignment.
type itemRow struct {
	StorageID          string `gorm:"index:idx_storage_seq,priority:1"`
	Seq                int    `gorm:"index:idx_storage_seq,priority:2"`
	Command            int
	Lat                float64
	Lon                float64
	Altitude           float64
	AltitudeIsRelative bool
	AcceptanceRadius   float64
	LoiterRadius       float64
	Param0             float64
	Param1             float64
	Param2             float64
	Param3             float64
	Param4             float64
	Param5             float64
	Param6             float64
}

func (itemRow) TableName() string { return "mission_items" }

// SQLite is a mission.Reader backed by a SQLite database, opened with the
// pure-Go glebarez driver so the CLI has no cgo dependency.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (and migrates) a mission item store at dsn, e.g. a file
// path or "file::memory:?cache=shared" for tests.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open mission store")
	}
	if err := db.AutoMigrate(&itemRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate mission store")
	}
	return &SQLite{db: db}, nil
}

// PutAll replaces every row for storageID with items, in order.
func (s *SQLite) PutAll(ctx context.Context, storageID string, items []mission.Item) error {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Where("storage_id = ?", storageID).Delete(&itemRow{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "clear existing mission items")
	}

	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = toRow(storageID, i, it)
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return errors.Wrap(err, "insert mission items")
		}
	}

	return errors.Wrap(tx.Commit().Error, "commit mission items")
}

func (s *SQLite) ReadAt(ctx context.Context, storageID string, index int) (mission.Item, error) {
	var row itemRow
	err := s.db.WithContext(ctx).
		Where("storage_id = ? AND seq = ?", storageID, index).
		First(&row).Error
	if err != nil {
		return mission.Item{}, errors.Wrap(ErrNotFound, err.Error())
	}
	return fromRow(row), nil
}

func (s *SQLite) Count(ctx context.Context, storageID string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&itemRow{}).
		Where("storage_id = ?", storageID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count mission items")
	}
	return int(count), nil
}

func toRow(storageID string, seq int, it mission.Item) itemRow {
	return itemRow{
		StorageID:          storageID,
		Seq:                seq,
		Command:            int(it.Command),
		Lat:                it.Lat,
		Lon:                it.Lon,
		Altitude:           it.Altitude,
		AltitudeIsRelative: it.AltitudeIsRelative,
		AcceptanceRadius:   it.AcceptanceRadius,
		LoiterRadius:       it.LoiterRadius,
		Param0:             it.Params[0],
		Param1:             it.Params[1],
		Param2:             it.Params[2],
		Param3:             it.Params[3],
		Param4:             it.Params[4],
		Param5:             it.Params[5],
		Param6:             it.Params[6],
	}
}

func fromRow(r itemRow) mission.Item {
	return mission.Item{
		Command:            mission.Command(r.Command),
		Lat:                r.Lat,
		Lon:                r.Lon,
		Altitude:           r.Altitude,
		AltitudeIsRelative: r.AltitudeIsRelative,
		AcceptanceRadius:   r.AcceptanceRadius,
		LoiterRadius:       r.LoiterRadius,
		Params:             [7]float64{r.Param0, r.Param1, r.Param2, r.Param3, r.Param4, r.Param5, r.Param6},
	}
}

var _ mission.Reader = (*SQLite)(nil)
