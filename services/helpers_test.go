package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lms/database"
	"lms/models"
	"lms/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	store   *storage.Local
	teacher *models.User
	student *models.User
	other   *models.User
	course  *models.Course
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.OpenInMemory()
	require.NoError(t, err)

	f := &fixture{db: db, store: storage.NewLocal(t.TempDir(), "/media")}
	f.teacher = f.user(t, "teacher")
	f.student = f.user(t, "student")
	f.other = f.user(t, "other")

	f.course, err = CreateCourse(context.Background(), db, f.store, f.teacher, CreateCourseInput{Name: "CS101", Description: "Intro", Price: 100})
	require.NoError(t, err)
	return f
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Password: "x", Email: name + "@example.com"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) enroll(t *testing.T, u *models.User) *models.CourseMember {
	t.Helper()
	m, err := Enroll(f.db, u, f.course.ID)
	require.NoError(t, err)
	return m
}

func (f *fixture) content(t *testing.T, name string, release *time.Time) *models.CourseContent {
	t.Helper()
	c, err := CreateContent(context.Background(), f.db, f.store, f.teacher, f.course.ID, CreateContentInput{Name: name, ReleaseTime: release})
	require.NoError(t, err)
	return c
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func assertKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.NotEmpty(t, e.Message)
}

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := Now
	Now = func() time.Time { return at }
	t.Cleanup(func() { Now = prev })
}
