package models

import "gorm.io/gorm"

// Course is a teachable unit owned by exactly one teacher
type Course struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Price       int64  `json:"price" gorm:"not null"`
	Image       string `json:"image" gorm:"default:''"` // storage reference
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	Teacher     User   `json:"teacher" gorm:"foreignKey:TeacherID;constraint:OnDelete:RESTRICT"`
}
