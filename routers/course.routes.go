package routers

import (
	controllers "lms/controllers/course"
	"lms/validators"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func courseRoutes() []Route {
	courseID := validators.ParamID("course_id", "courseID")
	contentID := validators.ParamID("content_id", "contentID")
	commentID := validators.ParamID("comment_id", "commentID")

	return []Route{
		// Courses
		{Method: fiber.MethodGet, Path: "/courses", Handlers: []fiber.Handler{validators.Pagination(), controllers.GetAllCourses}},
		{Method: fiber.MethodPost, Path: "/courses", Auth: true, Handlers: []fiber.Handler{courseValidators.CreateCourse(), controllers.CreateCourse}},
		{Method: fiber.MethodGet, Path: "/mycourses", Auth: true, Handlers: []fiber.Handler{controllers.GetMyCourses}},
		{Method: fiber.MethodGet, Path: "/courses/:course_id", Handlers: []fiber.Handler{courseID, controllers.GetCourseDetails}},
		{Method: fiber.MethodPost, Path: "/courses/:course_id", Auth: true, Handlers: []fiber.Handler{courseID, courseValidators.UpdateCourse(), controllers.UpdateCourse}},
		{Method: fiber.MethodDelete, Path: "/courses/:course_id", Auth: true, Handlers: []fiber.Handler{courseID, controllers.DeleteCourse}},

		// Enrollment
		{Method: fiber.MethodPost, Path: "/courses/:course_id/enroll", Auth: true, Handlers: []fiber.Handler{courseID, controllers.EnrollInCourse}},
		{Method: fiber.MethodPost, Path: "/courses/:course_id/batch-enroll", Auth: true, Handlers: []fiber.Handler{courseID, courseValidators.BatchEnroll(), controllers.BatchEnroll}},

		// Content
		{Method: fiber.MethodGet, Path: "/courses/:course_id/contents", Handlers: []fiber.Handler{courseID, controllers.GetCourseContents}},
		{Method: fiber.MethodPost, Path: "/courses/:course_id/contents", Auth: true, Handlers: []fiber.Handler{courseID, courseValidators.CreateContent(), controllers.CreateContent}},
		{Method: fiber.MethodGet, Path: "/courses/:course_id/contents/:content_id", Handlers: []fiber.Handler{courseID, contentID, controllers.GetContentDetails}},
		{Method: fiber.MethodDelete, Path: "/courses/:course_id/contents/:content_id", Auth: true, Handlers: []fiber.Handler{courseID, contentID, controllers.DeleteContent}},
		{Method: fiber.MethodGet, Path: "/course/:course_id/contents", Auth: true, Handlers: []fiber.Handler{courseID, controllers.GetReleasedContents}},
		{Method: fiber.MethodGet, Path: "/course/:course_id/analytics", Auth: true, Handlers: []fiber.Handler{courseID, controllers.GetCourseAnalytics}},

		// Completion
		{Method: fiber.MethodPost, Path: "/course/:course_id/content/:content_id/complete", Auth: true, Handlers: []fiber.Handler{courseID, contentID, controllers.MarkContentComplete}},
		{Method: fiber.MethodDelete, Path: "/course/:course_id/content/:content_id/complete", Auth: true, Handlers: []fiber.Handler{courseID, contentID, controllers.DeleteCompletion}},
		{Method: fiber.MethodGet, Path: "/course/:course_id/completions", Auth: true, Handlers: []fiber.Handler{courseID, controllers.GetCompletions}},

		// Comments
		{Method: fiber.MethodGet, Path: "/contents/:content_id/comments", Auth: true, Handlers: []fiber.Handler{contentID, controllers.GetContentComments}},
		{Method: fiber.MethodPost, Path: "/contents/:content_id/comments", Auth: true, Handlers: []fiber.Handler{contentID, courseValidators.CreateComment(), controllers.CreateComment}},
		{Method: fiber.MethodDelete, Path: "/comments/:comment_id", Auth: true, Handlers: []fiber.Handler{commentID, controllers.DeleteComment}},
		{Method: fiber.MethodPut, Path: "/comments/:comment_id/moderate", Auth: true, Handlers: []fiber.Handler{commentID, courseValidators.ModerateComment(), controllers.ModerateComment}},
	}
}
