package repositories

// FollowRepository defines the interface for seller-follow edge access.
type FollowRepository interface {
	CreateEdge(followerID, sellerID string) error
	// DeleteEdge removes the edge if present and reports whether a row was
	// actually deleted, so callers can toggle without a separate read.
	DeleteEdge(followerID, sellerID string) (bool, error)
	Exists(followerID, sellerID string) (bool, error)
}
