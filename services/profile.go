package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"lms/models"
	"lms/storage"

	"gorm.io/gorm"
)

type CourseSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProfileView struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Description    string          `json:"description"`
	ProfilePicture *string         `json:"profile_picture"`
	CoursesJoined  []CourseSummary `json:"courses_joined"`
	CoursesCreated []CourseSummary `json:"courses_created"`
}

// ProfileInput leaves nil fields untouched.
type ProfileInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Description    *string
	ProfilePicture *multipart.FileHeader
}

func summarize(courses []models.Course) []CourseSummary {
	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseSummary{ID: c.ID, Title: c.Name, Description: c.Description})
	}
	return out
}

func ShowProfile(ctx context.Context, db *gorm.DB, store storage.Storage, userID uint) (*ProfileView, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	var joined []models.Course
	memberOf := db.Model(&models.CourseMember{}).Select("course_id").Where("user_id = ?", user.ID)
	if err := db.Where("id IN (?)", memberOf).Order("id asc").Find(&joined).Error; err != nil {
		return nil, err
	}

	var created []models.Course
	if err := db.Where("teacher_id = ?", user.ID).Order("id asc").Find(&created).Error; err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Phone:          user.Phone,
		Description:    user.Description,
		CoursesJoined:  summarize(joined),
		CoursesCreated: summarize(created),
	}
	if user.ProfilePicture != "" && store != nil {
		url := store.URL(ctx, user.ProfilePicture)
		view.ProfilePicture = &url
	}
	return view, nil
}

func EditProfile(ctx context.Context, db *gorm.DB, store storage.Storage, requester *models.User, in ProfileInput) (*models.User, error) {
	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		var other models.User
		err := db.Where("email = ? AND id <> ?", email, requester.ID).First(&other).Error
		if err == nil {
			return nil, badRequest("Email already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = email
	}
	if in.ProfilePicture != nil {
		ref, err := store.Save(ctx, "profile", in.ProfilePicture)
		if err != nil {
			return nil, err
		}
		updates["profile_picture"] = ref
	}

	if len(updates) > 0 {
		if err := db.Model(&models.User{}).Where("id = ?", requester.ID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetUser(db, requester.ID)
}
