package models

import "gorm.io/gorm"

type Bookmark struct {
	gorm.Model
	UserID          uint          `json:"user_id" gorm:"index;not null"`
	User            User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CourseContentID uint          `json:"course_content_id" gorm:"index;not null"`
	CourseContent   CourseContent `json:"-" gorm:"foreignKey:CourseContentID;constraint:OnDelete:CASCADE"`
}
