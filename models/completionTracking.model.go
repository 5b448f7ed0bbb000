package models

import (
	"time"

	"gorm.io/gorm"
)

type CompletionTracking struct {
	gorm.Model
	StudentID   uint          `json:"student_id" gorm:"uniqueIndex:idx_completion_student_content;not null"`
	Student     User          `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	ContentID   uint          `json:"content_id" gorm:"uniqueIndex:idx_completion_student_content;not null"`
	Content     CourseContent `json:"-" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
	CompletedAt time.Time     `json:"completed_at"`
}
