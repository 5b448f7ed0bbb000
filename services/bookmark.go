package services

import (
	"lms/models"

	"gorm.io/gorm"
)

type BookmarkCourse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type BookmarkContent struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BookmarkView struct {
	ID      uint            `json:"id"`
	Course  BookmarkCourse  `json:"course"`
	Content BookmarkContent `json:"content"`
}

// AddBookmark does not deduplicate: bookmarking twice yields two rows.
func AddBookmark(db *gorm.DB, requester *models.User, courseContentID *uint) (*models.Bookmark, error) {
	if courseContentID == nil || *courseContentID == 0 {
		return nil, badRequest("Course content ID is required")
	}

	content, err := getLiveContent(db, *courseContentID)
	if err != nil {
		return nil, err
	}

	bookmark := models.Bookmark{UserID: requester.ID, CourseContentID: content.ID}
	if err := db.Create(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func ListBookmarks(db *gorm.DB, requester *models.User) ([]BookmarkView, error) {
	var bookmarks []models.Bookmark
	// Bookmarks of deleted contents or courses are left out
	if err := db.Preload("CourseContent.Course").
		Where("user_id = ? AND course_content_id IN (?)", requester.ID, liveContents(db)).
		Order("id asc").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}

	views := make([]BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		views = append(views, BookmarkView{
			ID: b.ID,
			Course: BookmarkCourse{
				ID:    b.CourseContent.Course.ID,
				Title: b.CourseContent.Course.Name,
			},
			Content: BookmarkContent{
				ID:          b.CourseContent.ID,
				Title:       b.CourseContent.Name,
				Description: b.CourseContent.Description,
			},
		})
	}
	return views, nil
}

// DeleteBookmark answers NotFound for bookmarks owned by someone else.
func DeleteBookmark(db *gorm.DB, requester *models.User, bookmarkID uint) error {
	var bookmark models.Bookmark
	if err := db.Where("id = ? AND user_id = ?", bookmarkID, requester.ID).First(&bookmark).Error; err != nil {
		return lookup(err, "Bookmark not found")
	}
	return db.Delete(&bookmark).Error
}
