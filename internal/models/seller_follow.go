package models

import "time"

// SellerFollow is a directed follower -> seller edge with no payload beyond
// its existence. The unique pair index is what makes the follow toggle safe
// against concurrent double-toggles.
type SellerFollow struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FollowerID string    `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair;type:varchar(36)"`
	SellerID   string    `json:"seller_id" gorm:"uniqueIndex:idx_follow_pair;type:varchar(36)"`
	CreatedAt  time.Time `json:"created_at"`
}
