package model

import "time"

type GoalType string

const (
	GoalShortTerm GoalType = "short"
	GoalLongTerm  GoalType = "long"
)

type Goal struct {
	GoalID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Type        GoalType  `bson:"type" json:"type" binding:"required,oneof=short long"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Progress    int       `bson:"progress" json:"progress" binding:"min=0,max=100"`
	Deadline    time.Time `bson:"deadline" json:"deadline" binding:"required"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
