package services

import (
	"lms/models"
	"lms/policy"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type UserActivity struct {
	CoursesAsStudent       int64 `json:"courses_as_student"`
	CoursesCreated         int64 `json:"courses_created"`
	CommentsWritten        int64 `json:"comments_written"`
	ContentCompleted       int64 `json:"content_completed"`
	ContentCompletedInWeek int64 `json:"content_completed_this_week"`
}

type CourseAnalytics struct {
	MemberCount     int64 `json:"member_count"`
	ContentCount    int64 `json:"content_count"`
	CommentCount    int64 `json:"comment_count"`
	CompletionCount int64 `json:"completion_count"`
}

func UserActivityDashboard(db *gorm.DB, userID uint) (*UserActivity, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	var a UserActivity
	if err := db.Model(&models.CourseMember{}).Where("user_id = ?", user.ID).Count(&a.CoursesAsStudent).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Course{}).Where("teacher_id = ?", user.ID).Count(&a.CoursesCreated).Error; err != nil {
		return nil, err
	}
	memberRows := db.Model(&models.CourseMember{}).Select("id").Where("user_id = ?", user.ID)
	if err := db.Model(&models.Comment{}).Where("member_id IN (?)", memberRows).Count(&a.CommentsWritten).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CompletionTracking{}).Where("student_id = ?", user.ID).Count(&a.ContentCompleted).Error; err != nil {
		return nil, err
	}

	weekStart := now.With(Now()).BeginningOfWeek()
	if err := db.Model(&models.CompletionTracking{}).
		Where("student_id = ? AND completed_at >= ?", user.ID, weekStart).
		Count(&a.ContentCompletedInWeek).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CourseAnalyticsFor is restricted to the course owner.
func CourseAnalyticsFor(db *gorm.DB, requester *models.User, courseID uint) (*CourseAnalytics, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseOwner(requester, course) {
		return nil, unauthorized("You are not authorized to view this course analytics")
	}

	var a CourseAnalytics
	if err := db.Model(&models.CourseMember{}).Where("course_id = ?", course.ID).Count(&a.MemberCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CourseContent{}).Where("course_id = ?", course.ID).Count(&a.ContentCount).Error; err != nil {
		return nil, err
	}
	contents := db.Model(&models.CourseContent{}).Select("id").Where("course_id = ?", course.ID)
	if err := db.Model(&models.Comment{}).Where("content_id IN (?)", contents).Count(&a.CommentCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CompletionTracking{}).Where("content_id IN (?)", contents).Count(&a.CompletionCount).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
