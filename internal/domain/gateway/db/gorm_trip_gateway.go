package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"packmate-api/internal/domain/entity"
)

const timeLayout = "2006-01-02 15:04:05"

type GormTripGateway struct {
	DB *gorm.DB
}

var _ TripGateway = (*GormTripGateway)(nil)

func NewGormTripGateway(db *gorm.DB) *GormTripGateway {
	return &GormTripGateway{DB: db}
}

func (gateway *GormTripGateway) FindAllByUser(userID string, page int, size int) ([]entity.Trip, error) {
	trips := make([]entity.Trip, 0)
	err := gateway.DB.
		Preload("PackingList").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (gateway *GormTripGateway) CountByUser(userID string) (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Trip{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (gateway *GormTripGateway) FindByIDAndUser(id string, userID string) (*entity.Trip, error) {
	var trip entity.Trip
	err := gateway.DB.
		Preload("PackingList").
		Where("id = ? AND user_id = ?", id, userID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (gateway *GormTripGateway) Create(trip entity.Trip) (*entity.Trip, error) {
	now := time.Now().UTC().Format(timeLayout)
	trip.ID = uuid.New().String()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.PackingList = nil

	if err := gateway.DB.Create(&trip).Error; err != nil {
		return nil, fmt.Errorf("failed to store trip: %w", err)
	}
	return &trip, nil
}

func (gateway *GormTripGateway) CreateWithPackingList(trip entity.Trip, content entity.PackingListContent) (*entity.Trip, error) {
	now := time.Now().UTC().Format(timeLayout)
	trip.ID = uuid.New().String()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.PackingList = &entity.PackingList{
		ID:        uuid.New().String(),
		TripID:    trip.ID,
		UserID:    trip.UserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		packingList := trip.PackingList
		tripOnly := trip
		tripOnly.PackingList = nil

		if err := tx.Create(&tripOnly).Error; err != nil {
			return err
		}
		if err := tx.Create(packingList).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store trip with packing list: %w", err)
	}

	return &trip, nil
}

func (gateway *GormTripGateway) UpdatePackingList(tripID string, userID string, content entity.PackingListContent) (*entity.PackingList, error) {
	var packingList entity.PackingList
	err := gateway.DB.
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&packingList).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	packingList.Content = content
	packingList.UpdatedAt = time.Now().UTC().Format(timeLayout)
	if err := gateway.DB.Save(&packingList).Error; err != nil {
		return nil, err
	}
	return &packingList, nil
}

func (gateway *GormTripGateway) DeleteByIDAndUser(id string, userID string) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ? AND user_id = ?", id, userID).Delete(&entity.PackingList{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Trip{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
