package models

import "time"

// Category groups product and service listings for browsing. Type is
// either "product" or "service".
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Type        string    `json:"type" gorm:"type:varchar(20)" validate:"omitempty,oneof=product service"`
	CreatedAt   time.Time `json:"created_at"`
}
