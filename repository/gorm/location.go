package gorm

import (
	"context"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/utils/validator"
)

var _ repository.LocationRepository = (*locationRepository)(nil)

type locationRepository struct {
	db *gorm.DB
}

func makeLocationRepository(db *gorm.DB) *locationRepository {
	return &locationRepository{db: db}
}

// CreateUserLocation implements LocationRepository interface.
func (r *locationRepository) CreateUserLocation(ctx context.Context, sample model.LocationSample) error {
	if sample.UserID == 0 {
		return repository.ErrNilID
	}
	if err := (vd.Errors{
		"latitude":  vd.Validate(sample.Latitude, validator.LatitudeRule...),
		"longitude": vd.Validate(sample.Longitude, validator.LongitudeRule...),
		"accuracy":  vd.Validate(sample.Accuracy.Ptr(), validator.AccuracyRule...),
	}).Filter(); err != nil {
		return repository.ArgError("sample", err.Error())
	}
	if sample.ObservedAt.IsZero() {
		return repository.ArgError("sample.ObservedAt", "ObservedAt is required")
	}

	loc := &model.UserLocation{
		UserID:    sample.UserID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Accuracy:  sample.Accuracy,
		CreatedAt: sample.ObservedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(loc).Error
}

// GetUserLocationHistory implements LocationRepository interface.
func (r *locationRepository) GetUserLocationHistory(ctx context.Context, userID int64, since time.Time) ([]*model.UserLocation, error) {
	locations := make([]*model.UserLocation, 0)
	if userID == 0 {
		return locations, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since.UTC()).
		Order("created_at DESC").
		Order("id DESC").
		Find(&locations).
		Error
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		l.CreatedAt = l.CreatedAt.UTC()
	}
	return locations, nil
}

// DeleteUserLocationsBefore implements LocationRepository interface.
func (r *locationRepository) DeleteUserLocationsBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", before.UTC()).
		Delete(&model.UserLocation{})
	return result.RowsAffected, result.Error
}
