// Package services holds the LMS domain operations. Each operation runs its
// lookups and authorization checks before issuing a single mutating statement.
package services

import (
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// Now is the clock used for release gating and analytics windows.
var Now = time.Now

// GetUser loads an existing user.
func GetUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, lookup(err, "User not found!")
	}
	return &user, nil
}

func getCourse(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, lookup(err, "Course not found!")
	}
	return &course, nil
}

// liveCourses selects the ids of courses that have not been deleted. Course
// deletes are soft, so contents, comments and bookmarks below a deleted course
// stay in their tables and must be filtered through it.
func liveCourses(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Course{}).Select("id")
}

// liveContents selects the ids of contents whose course is still live.
func liveContents(db *gorm.DB) *gorm.DB {
	return db.Model(&models.CourseContent{}).Select("id").Where("course_id IN (?)", liveCourses(db))
}

// getLiveContent loads a content by id, NotFound when it or its course is deleted.
func getLiveContent(db *gorm.DB, contentID uint) (*models.CourseContent, error) {
	var content models.CourseContent
	if err := db.Preload("Course").Where("course_id IN (?)", liveCourses(db)).First(&content, contentID).Error; err != nil {
		return nil, lookup(err, "Course content not found!")
	}
	return &content, nil
}

func getCourseContent(db *gorm.DB, courseID, contentID uint) (*models.CourseContent, error) {
	var content models.CourseContent
	if err := db.Where("id = ? AND course_id = ?", contentID, courseID).
		Where("course_id IN (?)", liveCourses(db)).
		First(&content).Error; err != nil {
		return nil, lookup(err, "Course content not found!")
	}
	return &content, nil
}

// Page normalises page/limit query values.
func Page(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
