package services

import (
	"context"
	"mime/multipart"

	"lms/models"
	"lms/policy"
	"lms/storage"

	"gorm.io/gorm"
)

// DefaultCoursePrice applies when a create request omits the price.
const DefaultCoursePrice int64 = 10000

type CreateCourseInput struct {
	Name        string
	Description string
	Price       int64
	Image       *multipart.FileHeader
}

// UpdateCourseInput leaves nil fields untouched.
type UpdateCourseInput struct {
	Name        *string
	Description *string
	Price       *int64
	Image       *multipart.FileHeader
}

func ListCourses(db *gorm.DB, page, limit int) ([]models.Course, int64, error) {
	page, limit = Page(page, limit)

	var total int64
	if err := db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	err := db.Preload("Teacher").
		Order("created_at desc, id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func GetCourse(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.Preload("Teacher").First(&course, courseID).Error; err != nil {
		return nil, lookup(err, "Course not found!")
	}
	return &course, nil
}

// MyCourses returns the requester's memberships with the course and its teacher.
func MyCourses(db *gorm.DB, user *models.User) ([]models.CourseMember, error) {
	var members []models.CourseMember
	err := db.Preload("Course.Teacher").Preload("User").
		Where("user_id = ?", user.ID).
		Order("id asc").
		Find(&members).Error
	return members, err
}

func CreateCourse(ctx context.Context, db *gorm.DB, store storage.Storage, teacher *models.User, in CreateCourseInput) (*models.Course, error) {
	course := models.Course{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TeacherID:   teacher.ID,
	}

	if in.Image != nil {
		ref, err := store.Save(ctx, "course", in.Image)
		if err != nil {
			return nil, err
		}
		course.Image = ref
	}

	if err := db.Create(&course).Error; err != nil {
		return nil, err
	}
	course.Teacher = *teacher
	return &course, nil
}

func UpdateCourse(ctx context.Context, db *gorm.DB, store storage.Storage, requester *models.User, courseID uint, in UpdateCourseInput) (*models.Course, error) {
	course, err := GetCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseOwner(requester, course) {
		return nil, unauthorized("You are not allowed to update this course")
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Image != nil {
		ref, err := store.Save(ctx, "course", in.Image)
		if err != nil {
			return nil, err
		}
		updates["image"] = ref
	}

	if len(updates) > 0 {
		if err := db.Model(course).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetCourse(db, courseID)
}

func DeleteCourse(db *gorm.DB, requester *models.User, courseID uint) error {
	course, err := getCourse(db, courseID)
	if err != nil {
		return err
	}
	if !policy.IsCourseOwner(requester, course) {
		return unauthorized("You are not allowed to delete this course")
	}
	return db.Delete(course).Error
}

// Enroll adds the requester as a student. Repeated enrollment adds another row.
func Enroll(db *gorm.DB, requester *models.User, courseID uint) (*models.CourseMember, error) {
	course, err := GetCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	member := models.CourseMember{CourseID: course.ID, UserID: requester.ID, Roles: models.RoleStudent}
	if err := db.Create(&member).Error; err != nil {
		return nil, err
	}
	member.Course = *course
	member.User = *requester
	return &member, nil
}

// BatchEnroll enrolls every existing user in userIDs; unknown ids are skipped.
func BatchEnroll(db *gorm.DB, requester *models.User, courseID uint, userIDs []uint) ([]models.CourseMember, error) {
	course, err := getCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !policy.IsCourseOwner(requester, course) {
		return nil, unauthorized("You are not authorized to enroll students in this course")
	}

	var students []models.User
	if len(userIDs) > 0 {
		if err := db.Where("id IN ?", userIDs).Order("id asc").Find(&students).Error; err != nil {
			return nil, err
		}
	}
	if len(students) == 0 {
		return nil, badRequest("No valid students found")
	}

	members := make([]models.CourseMember, 0, len(students))
	for _, s := range students {
		members = append(members, models.CourseMember{CourseID: course.ID, UserID: s.ID, Roles: models.RoleStudent})
	}
	if err := db.Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
