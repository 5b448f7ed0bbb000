package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowProfile(t *testing.T) {
	f := newFixture(t)
	f.enroll(t, f.student)

	teacher, err := ShowProfile(context.Background(), f.db, f.store, f.teacher.ID)
	require.NoError(t, err)
	assert.Empty(t, teacher.CoursesJoined)
	require.Len(t, teacher.CoursesCreated, 1)
	assert.Equal(t, CourseSummary{ID: f.course.ID, Title: "CS101", Description: "Intro"}, teacher.CoursesCreated[0])
	assert.Nil(t, teacher.ProfilePicture)

	student, err := ShowProfile(context.Background(), f.db, f.store, f.student.ID)
	require.NoError(t, err)
	require.Len(t, student.CoursesJoined, 1)
	assert.Empty(t, student.CoursesCreated)

	_, err = ShowProfile(context.Background(), f.db, f.store, 31337)
	assertKind(t, err, ErrNotFound)
}

func TestEditProfile(t *testing.T) {
	f := newFixture(t)
	first := "Ada"
	phone := "555-0100"

	updated, err := EditProfile(context.Background(), f.db, f.store, f.student, ProfileInput{FirstName: &first, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "student@example.com", updated.Email)

	taken := "teacher@example.com"
	_, err = EditProfile(context.Background(), f.db, f.store, f.student, ProfileInput{Email: &taken})
	assertKind(t, err, ErrBadRequest)

	own := "student@example.com"
	_, err = EditProfile(context.Background(), f.db, f.store, f.student, ProfileInput{Email: &own})
	require.NoError(t, err)
}
