package models

import (
	"time"

	"gorm.io/gorm"
)

type CourseContent struct {
	gorm.Model
	CourseID       uint       `json:"course_id" gorm:"index;not null"`
	Course         Course     `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Name           string     `json:"name" gorm:"size:200;not null"`
	Description    string     `json:"description" gorm:"type:text"`
	VideoURL       string     `json:"video_url" gorm:"size:200;default:''"`
	FileAttachment string     `json:"file_attachment" gorm:"default:''"` // storage reference
	OrderIndex     int        `json:"order_index" gorm:"default:0"`
	ReleaseTime    *time.Time `json:"release_time" gorm:"index"` // nil means released immediately
}

