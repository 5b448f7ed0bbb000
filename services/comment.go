package services

import (
	"strings"

	"lms/models"
	"lms/policy"

	"gorm.io/gorm"
)

func ListComments(db *gorm.DB, contentID uint) ([]models.Comment, error) {
	if _, err := getLiveContent(db, contentID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := db.Preload("Member.User").
		Where("content_id = ?", contentID).
		Order("created_at asc, id asc").
		Find(&comments).Error
	return comments, err
}

// CreateComment attributes the comment to the requester's membership row.
func CreateComment(db *gorm.DB, requester *models.User, contentID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, badRequest("Comment is required")
	}

	content, err := getLiveContent(db, contentID)
	if err != nil {
		return nil, err
	}

	if !policy.IsCourseMember(db, requester, &content.Course) {
		return nil, unauthorized("You are not authorized to create comment in this content")
	}

	// Duplicate enrollments are possible; the earliest membership authors the comment.
	var member models.CourseMember
	if err := db.Where("course_id = ? AND user_id = ?", content.CourseID, requester.ID).Order("id asc").First(&member).Error; err != nil {
		return nil, err
	}

	comment := models.Comment{ContentID: content.ID, MemberID: member.ID, Comment: text}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	member.User = *requester
	comment.Member = member
	return &comment, nil
}

func getComment(db *gorm.DB, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := db.Preload("Member.User").Preload("Content.Course").
		Where("content_id IN (?)", liveContents(db)).
		First(&comment, commentID).Error; err != nil {
		return nil, lookup(err, "Comment not found!")
	}
	return &comment, nil
}

func DeleteComment(db *gorm.DB, requester *models.User, commentID uint) error {
	comment, err := getComment(db, commentID)
	if err != nil {
		return err
	}
	if !policy.IsCommentAuthor(requester, comment) {
		return unauthorized("You are not authorized to delete this comment")
	}
	return db.Delete(comment).Error
}

// ModerateComment sets the moderation flag; only the course owner may do so.
func ModerateComment(db *gorm.DB, requester *models.User, commentID uint, moderated bool) (*models.Comment, error) {
	comment, err := getComment(db, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseOwner(requester, &comment.Content.Course) {
		return nil, unauthorized("You are not authorized to moderate this comment")
	}

	if err := db.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("is_moderated", moderated).Error; err != nil {
		return nil, err
	}
	comment.IsModerated = moderated
	return comment, nil
}
