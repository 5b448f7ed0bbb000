package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Password       string `json:"-" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;size:254;not null"`
	FirstName      string `json:"first_name" gorm:"size:150;default:''"`
	LastName       string `json:"last_name" gorm:"size:150;default:''"`
	Phone          string `json:"phone" gorm:"size:20;default:''"`
	Description    string `json:"description" gorm:"type:text"`
	ProfilePicture string `json:"profile_picture" gorm:"default:''"` // storage reference
}
