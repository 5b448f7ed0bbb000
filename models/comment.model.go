package models

import "gorm.io/gorm"

// Comment is authored by a CourseMember, never directly by a User
type Comment struct {
	gorm.Model
	ContentID   uint          `json:"content_id" gorm:"index;not null"`
	Content     CourseContent `json:"-" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
	MemberID    uint          `json:"member_id" gorm:"index;not null"`
	Member      CourseMember  `json:"member" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Comment     string        `json:"comment" gorm:"type:text;not null"`
	IsModerated bool          `json:"is_moderated" gorm:"default:false"`
}
