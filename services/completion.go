package services

import (
	"errors"
	"time"

	"lms/models"
	"lms/policy"

	"gorm.io/gorm"
)

type CompletionItem struct {
	ContentID   uint      `json:"content_id"`
	CompletedAt time.Time `json:"completed_at"`
}

func memberCourse(db *gorm.DB, requester *models.User, courseID uint, deniedMsg string) (*models.Course, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseMember(db, requester, course) {
		return nil, unauthorized(deniedMsg)
	}
	return course, nil
}

// MarkComplete is get-or-create: repeating it returns the existing row with created=false.
func MarkComplete(db *gorm.DB, requester *models.User, courseID, contentID uint) (*models.CompletionTracking, bool, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, false, err
	}
	content, err := getCourseContent(db, course.ID, contentID)
	if err != nil {
		return nil, false, err
	}
	if !policy.IsCourseMember(db, requester, course) {
		return nil, false, unauthorized("You are not authorized to complete this content")
	}

	var completion models.CompletionTracking
	err = db.Where("student_id = ? AND content_id = ?", requester.ID, content.ID).First(&completion).Error
	if err == nil {
		return &completion, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	completion = models.CompletionTracking{StudentID: requester.ID, ContentID: content.ID, CompletedAt: Now()}
	if err := db.Create(&completion).Error; err != nil {
		// A concurrent request won the unique index; return its row.
		var existing models.CompletionTracking
		if findErr := db.Where("student_id = ? AND content_id = ?", requester.ID, content.ID).First(&existing).Error; findErr == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &completion, true, nil
}

// ListCompletions returns the requester's own completions in the course.
func ListCompletions(db *gorm.DB, requester *models.User, courseID uint) ([]CompletionItem, error) {
	course, err := memberCourse(db, requester, courseID, "You are not authorized to view completions for this course")
	if err != nil {
		return nil, err
	}

	var completions []models.CompletionTracking
	contents := db.Model(&models.CourseContent{}).Select("id").Where("course_id = ?", course.ID)
	err = db.Where("student_id = ? AND content_id IN (?)", requester.ID, contents).
		Order("completed_at asc, id asc").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}

	items := make([]CompletionItem, 0, len(completions))
	for _, c := range completions {
		items = append(items, CompletionItem{ContentID: c.ContentID, CompletedAt: c.CompletedAt})
	}
	return items, nil
}

// DeleteCompletion removes the completion if present; absence is not an error.
func DeleteCompletion(db *gorm.DB, requester *models.User, courseID, contentID uint) error {
	course, err := getCourse(db, courseID)
	if err != nil {
		return err
	}
	content, err := getCourseContent(db, course.ID, contentID)
	if err != nil {
		return err
	}
	if !policy.IsCourseMember(db, requester, course) {
		return unauthorized("You are not authorized to delete this completion")
	}

	// Hard delete so the (student, content) unique index can be reused.
	return db.Unscoped().
		Where("student_id = ? AND content_id = ?", requester.ID, content.ID).
		Delete(&models.CompletionTracking{}).Error
}
