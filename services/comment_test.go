package services

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresMembership(t *testing.T) {
	f := newFixture(t)
	content := f.content(t, "Week 1", nil)

	_, err := CreateComment(f.db, f.other, content.ID, "hello")
	assertKind(t, err, ErrUnauthorized)
	assert.Equal(t, int64(0), f.count(t, &models.Comment{}))

	_, err = CreateComment(f.db, f.student, 777, "hello")
	assertKind(t, err, ErrNotFound)

	member := f.enroll(t, f.student)
	_, err = CreateComment(f.db, f.student, content.ID, "   ")
	assertKind(t, err, ErrBadRequest)

	comment, err := CreateComment(f.db, f.student, content.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, member.ID, comment.MemberID)
	assert.False(t, comment.IsModerated)

	list, err := ListComments(f.db, content.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.student.Username, list[0].Member.User.Username)
}

func TestDeleteCommentOnlyByAuthor(t *testing.T) {
	f := newFixture(t)
	content := f.content(t, "Week 1", nil)
	f.enroll(t, f.student)
	f.enroll(t, f.other)

	comment, err := CreateComment(f.db, f.student, content.ID, "mine")
	require.NoError(t, err)

	for _, u := range []*models.User{f.other, f.teacher} {
		assertKind(t, DeleteComment(f.db, u, comment.ID), ErrUnauthorized)
	}
	assert.Equal(t, int64(1), f.count(t, &models.Comment{}))

	require.NoError(t, DeleteComment(f.db, f.student, comment.ID))
	assert.Equal(t, int64(0), f.count(t, &models.Comment{}))

	assertKind(t, DeleteComment(f.db, f.student, comment.ID), ErrNotFound)
}

func TestModerateComment(t *testing.T) {
	f := newFixture(t)
	content := f.content(t, "Week 1", nil)
	f.enroll(t, f.student)
	comment, err := CreateComment(f.db, f.student, content.ID, "spam?")
	require.NoError(t, err)

	_, err = ModerateComment(f.db, f.other, comment.ID, true)
	assertKind(t, err, ErrUnauthorized)
	_, err = ModerateComment(f.db, f.student, comment.ID, true)
	assertKind(t, err, ErrUnauthorized)

	var stored models.Comment
	require.NoError(t, f.db.First(&stored, comment.ID).Error)
	assert.False(t, stored.IsModerated, "rejected moderation leaves the flag unchanged")

	moderated, err := ModerateComment(f.db, f.teacher, comment.ID, true)
	require.NoError(t, err)
	assert.True(t, moderated.IsModerated)
	assert.Equal(t, f.student.ID, moderated.Member.User.ID)
	assert.Equal(t, f.student.Username, moderated.Member.User.Username)

	require.NoError(t, f.db.First(&stored, comment.ID).Error)
	assert.True(t, stored.IsModerated)

	_, err = ModerateComment(f.db, f.teacher, comment.ID, false)
	require.NoError(t, err)
	require.NoError(t, f.db.First(&stored, comment.ID).Error)
	assert.False(t, stored.IsModerated)
}
