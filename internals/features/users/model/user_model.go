package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: users
   ========================= */

// Staff accounts for the admin surface. There is no public signup.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail    string    `json:"user_email" gorm:"column:user_email;type:varchar(255);uniqueIndex;not null"`
	UserPassword string    `json:"-" gorm:"column:user_password;type:varchar(255);not null"` // bcrypt hash

	UserIsStaff  bool `json:"user_is_staff" gorm:"column:user_is_staff;not null;default:false"`
	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
