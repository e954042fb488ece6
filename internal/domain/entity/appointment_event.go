package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentEvent is one entry in the per-business operational event
// trail, recorded by the change detector.
type AppointmentEvent struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Action        string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata      JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AppointmentEvent) TableName() string {
	return "appointment_events"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Event actions recorded by the change detector
const (
	EventActionAppointmentCreated       = "appointment.created"
	EventActionAppointmentStatusChanged = "appointment.status_changed"
)
