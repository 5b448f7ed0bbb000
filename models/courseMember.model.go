package models

import (
	"gorm.io/gorm"
)

const (
	RoleStudent   = "std"
	RoleAssistant = "ast"
	RoleTeacher   = "teacher"
)

// CourseMember enrolls a user in a course. (course, user) is not unique.
type CourseMember struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	User     User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Roles    string `json:"roles" gorm:"size:10;default:'std'"`
}
