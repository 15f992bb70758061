package model

import "time"

// User is the persisted usuário record. Column and JSON names stay in
// Portuguese to match the public wire format of the API.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name aligned with the resource path.
func (User) TableName() string {
	return "usuarios"
}
