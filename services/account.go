package services

import (
	"errors"
	"strings"
	"time"

	"lms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

func Register(db *gorm.DB, in RegisterInput, cost int) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	var existing models.User
	err := db.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return nil, badRequest("Username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, badRequest("Email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  in.Username,
		Password:  string(hashed),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and records the sign-in.
func Authenticate(db *gorm.DB, username, password, ip, device string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("Invalid credentials!")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, unauthorized("Invalid credentials!")
	}

	tracking := models.LoginTracking{UserID: user.ID, IPAddress: ip, Device: device, Timestamp: time.Now()}
	if err := db.Create(&tracking).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginHistory pages through the user's sign-ins, newest first.
func LoginHistory(db *gorm.DB, user *models.User, page, limit int) ([]models.LoginTracking, int64, error) {
	page, limit = Page(page, limit)

	var total int64
	if err := db.Model(&models.LoginTracking{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var history []models.LoginTracking
	err := db.Where("user_id = ?", user.ID).
		Order("timestamp desc, id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&history).Error
	return history, total, err
}
