package services

import (
	"context"
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourseOnlyByOwner(t *testing.T) {
	f := newFixture(t)
	name := "CS102"

	for _, requester := range []*models.User{f.student, f.other} {
		_, err := UpdateCourse(context.Background(), f.db, f.store, requester, f.course.ID, UpdateCourseInput{Name: &name})
		assertKind(t, err, ErrUnauthorized)
	}

	unchanged, err := GetCourse(f.db, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", unchanged.Name)

	updated, err := UpdateCourse(context.Background(), f.db, f.store, f.teacher, f.course.ID, UpdateCourseInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "CS102", updated.Name)
	assert.Equal(t, "Intro", updated.Description, "unset fields keep their value")
	assert.Equal(t, int64(100), updated.Price)
	assert.Equal(t, f.teacher.ID, updated.Teacher.ID)
}

func TestUpdateCourseMissing(t *testing.T) {
	f := newFixture(t)
	_, err := UpdateCourse(context.Background(), f.db, f.store, f.teacher, 999, UpdateCourseInput{})
	assertKind(t, err, ErrNotFound)
}

func TestDeleteCourse(t *testing.T) {
	f := newFixture(t)

	assertKind(t, DeleteCourse(f.db, f.student, f.course.ID), ErrUnauthorized)
	require.NoError(t, DeleteCourse(f.db, f.teacher, f.course.ID))

	_, err := GetCourse(f.db, f.course.ID)
	assertKind(t, err, ErrNotFound)
}

func TestEnrollAndMyCourses(t *testing.T) {
	f := newFixture(t)

	member := f.enroll(t, f.student)
	assert.Equal(t, models.RoleStudent, member.Roles)

	mine, err := MyCourses(f.db, f.student)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "CS101", mine[0].Course.Name)
	assert.Equal(t, f.teacher.Username, mine[0].Course.Teacher.Username)

	var members int64
	require.NoError(t, f.db.Model(&models.CourseMember{}).Where("course_id = ?", f.course.ID).Count(&members).Error)
	assert.Equal(t, int64(1), members)
}

func TestEnrollTwiceKeepsBothRows(t *testing.T) {
	f := newFixture(t)
	f.enroll(t, f.student)
	f.enroll(t, f.student)
	assert.Equal(t, int64(2), f.count(t, &models.CourseMember{}))
}

func TestEnrollMissingCourse(t *testing.T) {
	f := newFixture(t)
	_, err := Enroll(f.db, f.student, 404)
	assertKind(t, err, ErrNotFound)
}

func TestBatchEnroll(t *testing.T) {
	f := newFixture(t)

	t.Run("all ids invalid", func(t *testing.T) {
		_, err := BatchEnroll(f.db, f.teacher, f.course.ID, []uint{9001, 9002})
		assertKind(t, err, ErrBadRequest)
		assert.Equal(t, int64(0), f.count(t, &models.CourseMember{}))
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := BatchEnroll(f.db, f.teacher, f.course.ID, nil)
		assertKind(t, err, ErrBadRequest)
	})

	t.Run("not owner", func(t *testing.T) {
		_, err := BatchEnroll(f.db, f.student, f.course.ID, []uint{f.other.ID})
		assertKind(t, err, ErrUnauthorized)
		assert.Equal(t, int64(0), f.count(t, &models.CourseMember{}))
	})

	t.Run("skips unknown ids", func(t *testing.T) {
		members, err := BatchEnroll(f.db, f.teacher, f.course.ID, []uint{f.student.ID, 9001, f.other.ID})
		require.NoError(t, err)
		assert.Len(t, members, 2)
		assert.Equal(t, int64(2), f.count(t, &models.CourseMember{}))
	})
}

func TestListCoursesPaginates(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 11; i++ {
		_, err := CreateCourse(context.Background(), f.db, f.store, f.teacher, CreateCourseInput{Name: "extra"})
		require.NoError(t, err)
	}

	first, total, err := ListCourses(f.db, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, first, 10)
	assert.Equal(t, f.teacher.ID, first[0].Teacher.ID)

	second, _, err := ListCourses(f.db, 2, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestPage(t *testing.T) {
	p, l := Page(0, 0)
	assert.Equal(t, 1, p)
	assert.Equal(t, 10, l)

	_, l = Page(3, 500)
	assert.Equal(t, 100, l)
}
