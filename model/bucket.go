package model

import "time"

// BucketItem is one aspirational list entry. A non-nil CompletedAt locks the
// item: it can be toggled back to incomplete but never deleted while
// completed.
type BucketItem struct {
	ItemID      string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Title       string     `bson:"title" json:"title" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

func (b *BucketItem) Completed() bool {
	return b.CompletedAt != nil
}
