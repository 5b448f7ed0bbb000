package services

import (
	"context"
	"mime/multipart"
	"time"

	"lms/models"
	"lms/policy"
	"lms/storage"

	"gorm.io/gorm"
)

type CreateContentInput struct {
	Name        string
	Description string
	VideoURL    string
	OrderIndex  int
	ReleaseTime *time.Time
	Attachment  *multipart.FileHeader
}

// ListContents is open to any caller.
func ListContents(db *gorm.DB, courseID uint) ([]models.CourseContent, error) {
	if _, err := getCourse(db, courseID); err != nil {
		return nil, err
	}

	var contents []models.CourseContent
	err := db.Where("course_id = ?", courseID).Order("order_index asc, id asc").Find(&contents).Error
	return contents, err
}

func GetContent(db *gorm.DB, courseID, contentID uint) (*models.CourseContent, error) {
	return getCourseContent(db, courseID, contentID)
}

func CreateContent(ctx context.Context, db *gorm.DB, store storage.Storage, requester *models.User, courseID uint, in CreateContentInput) (*models.CourseContent, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseOwner(requester, course) {
		return nil, unauthorized("You are not allowed to add content to this course")
	}

	content := models.CourseContent{
		CourseID:    course.ID,
		Name:        in.Name,
		Description: in.Description,
		VideoURL:    in.VideoURL,
		OrderIndex:  in.OrderIndex,
	}
	// Stored in UTC; sqlite compares timestamps as text.
	if in.ReleaseTime != nil {
		at := in.ReleaseTime.UTC()
		content.ReleaseTime = &at
	}
	if in.Attachment != nil {
		ref, err := store.Save(ctx, "content", in.Attachment)
		if err != nil {
			return nil, err
		}
		content.FileAttachment = ref
	}

	if err := db.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func DeleteContent(db *gorm.DB, requester *models.User, courseID, contentID uint) error {
	course, err := getCourse(db, courseID)
	if err != nil {
		return err
	}
	content, err := getCourseContent(db, courseID, contentID)
	if err != nil {
		return err
	}
	if !policy.IsCourseOwner(requester, course) {
		return unauthorized("You are not allowed to delete this content")
	}
	return db.Delete(content).Error
}

// ListReleasedContents returns the contents whose release time has passed.
// Only the owner or a member may call it.
func ListReleasedContents(db *gorm.DB, requester *models.User, courseID uint) ([]models.CourseContent, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewCourseContents(db, requester, course) {
		return nil, unauthorized("You are not authorized to view this course contents")
	}

	var contents []models.CourseContent
	err = db.Where("course_id = ? AND (release_time IS NULL OR release_time <= ?)", course.ID, Now().UTC()).
		Order("order_index asc, id asc").
		Find(&contents).Error
	return contents, err
}
