package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/storage"
	"lms/utils"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists courses newest first
func GetAllCourses(c *fiber.Ctx) error {
	query := c.Locals("validatedList").(validators.ListQuery)

	courses, total, err := services.ListCourses(database.Database.Db, query.Page, query.Limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	course, err := services.GetCourse(database.Database.Db, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// GetMyCourses lists the requester's memberships
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	members, err := services.MyCourses(database.Database.Db, user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", members)
}

func CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := services.CreateCourse(c.UserContext(), database.Database.Db, storage.Files, user, c.Locals("validatedCourse").(services.CreateCourseInput))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := services.UpdateCourse(c.UserContext(), database.Database.Db, storage.Files, user,
		c.Locals("courseID").(uint), c.Locals("validatedCourseUpdate").(services.UpdateCourseInput))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := services.DeleteCourse(database.Database.Db, user, c.Locals("courseID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func EnrollInCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	member, err := services.Enroll(database.Database.Db, user, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.SendAsync(utils.EnrollmentEmail(user.Email, user.FirstName, user.Username, member.Course.Name))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in course!", member)
}

func BatchEnroll(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	members, err := services.BatchEnroll(database.Database.Db, user, c.Locals("courseID").(uint), c.Locals("validatedStudentIDs").([]uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Students enrolled successfully!", fiber.Map{
		"enrolled": len(members),
	})
}
