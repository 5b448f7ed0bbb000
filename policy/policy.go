// Package policy decides whether a user may act on a course or comment.
// Every check is total: an absent relation yields false, never an error.
package policy

import (
	"lms/models"

	"gorm.io/gorm"
)

// IsCourseOwner reports whether user is the course's teacher.
func IsCourseOwner(user *models.User, course *models.Course) bool {
	if user == nil || course == nil || user.ID == 0 {
		return false
	}
	return course.TeacherID == user.ID
}

// IsCourseMember reports whether a CourseMember row exists for (course, user).
func IsCourseMember(db *gorm.DB, user *models.User, course *models.Course) bool {
	if db == nil || user == nil || course == nil || user.ID == 0 || course.ID == 0 {
		return false
	}

	var count int64
	err := db.Model(&models.CourseMember{}).
		Where("course_id = ? AND user_id = ?", course.ID, user.ID).
		Count(&count).Error
	return err == nil && count > 0
}

// IsCommentAuthor reports whether user wrote comment. The comment's Member
// must be loaded.
func IsCommentAuthor(user *models.User, comment *models.Comment) bool {
	if user == nil || comment == nil || user.ID == 0 {
		return false
	}
	return comment.Member.ID != 0 && comment.Member.UserID == user.ID
}

// CanViewCourseContents is the owner-or-member gate for release-filtered listings.
func CanViewCourseContents(db *gorm.DB, user *models.User, course *models.Course) bool {
	return IsCourseOwner(user, course) || IsCourseMember(db, user, course)
}
