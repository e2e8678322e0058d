package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultOrderStatus is the status assigned to orders created without one
const DefaultOrderStatus = "pending"

// Order represents a placed order. The ID is supplied by the ordering
// system, never generated by the store.
type Order struct {
	ID        string         `json:"id" gorm:"column:id;primaryKey;size:50;autoIncrement:false"`
	UserID    *uuid.UUID     `json:"userId" gorm:"column:user_id;type:uuid" swaggertype:"string" format:"uuid"`
	OrderData datatypes.JSON `json:"orderData" gorm:"column:order_data;not null" swaggertype:"object"`
	Status    string         `json:"status" gorm:"column:status;size:50;not null;default:pending"`
	Priority  bool           `json:"priority" gorm:"column:priority;not null;default:false"`
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;not null;index;autoCreateTime:false"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (Order) TableName() string {
	return "orders"
}

// Touch moves UpdatedAt forward to now, see Pizza.Touch
func (o *Order) Touch(now time.Time) {
	o.UpdatedAt = nextTimestamp(o.UpdatedAt, now)
}

// BeforeCreate stamps both timestamps and applies the default status
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	o.CreatedAt, o.UpdatedAt = creationTimestamps(o.CreatedAt, o.UpdatedAt, tx.NowFunc())
	return nil
}

// nextTimestamp returns now at microsecond precision (the resolution of the
// postgres timestamp columns), bumped past previous if needed.
func nextTimestamp(previous, now time.Time) time.Time {
	next := now.UTC().Truncate(time.Microsecond)
	if !next.After(previous) {
		next = previous.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return next
}

func creationTimestamps(createdAt, updatedAt, now time.Time) (time.Time, time.Time) {
	if createdAt.IsZero() {
		createdAt = now.UTC().Truncate(time.Microsecond)
	}
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}
	return createdAt, updatedAt
}
