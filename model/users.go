package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username" binding:"required,min=4,max=20"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Password  string    `bson:"password" json:"-" binding:"required,password"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
