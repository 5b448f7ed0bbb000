package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContentOnlyByOwner(t *testing.T) {
	f := newFixture(t)
	_, err := CreateContent(context.Background(), f.db, f.store, f.student, f.course.ID, CreateContentInput{Name: "Week 1"})
	assertKind(t, err, ErrUnauthorized)
}

func TestListAndGetContent(t *testing.T) {
	f := newFixture(t)
	second, err := CreateContent(context.Background(), f.db, f.store, f.teacher, f.course.ID, CreateContentInput{Name: "Week 2", OrderIndex: 2})
	require.NoError(t, err)
	first, err := CreateContent(context.Background(), f.db, f.store, f.teacher, f.course.ID, CreateContentInput{Name: "Week 1", OrderIndex: 1})
	require.NoError(t, err)

	list, err := ListContents(f.db, f.course.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	got, err := GetContent(f.db, f.course.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Week 1", got.Name)

	_, err = GetContent(f.db, f.course.ID+1, first.ID)
	assertKind(t, err, ErrNotFound)
}

func TestListReleasedContents(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	fixClock(t, at)

	past := at.Add(-time.Hour)
	future := at.Add(time.Hour)
	// Wall clock 16:30 at +07:00 is half an hour before the fixed clock.
	zoned := at.Add(-30 * time.Minute).In(time.FixedZone("", 7*3600))
	boundary := at
	f.content(t, "released", &past)
	f.content(t, "later", &future)
	f.content(t, "ungated", nil)
	zonedContent := f.content(t, "zoned", &zoned)
	f.content(t, "boundary", &boundary)
	assert.Equal(t, time.UTC, zonedContent.ReleaseTime.Location())
	f.enroll(t, f.student)

	for _, requester := range []string{"owner", "member"} {
		u := f.teacher
		if requester == "member" {
			u = f.student
		}
		list, err := ListReleasedContents(f.db, u, f.course.ID)
		require.NoError(t, err, requester)

		var names []string
		for _, c := range list {
			names = append(names, c.Name)
		}
		assert.ElementsMatch(t, []string{"released", "ungated", "zoned", "boundary"}, names, requester)
	}

	_, err := ListReleasedContents(f.db, f.other, f.course.ID)
	assertKind(t, err, ErrUnauthorized)
}

func TestDeleteContent(t *testing.T) {
	f := newFixture(t)
	c := f.content(t, "Week 1", nil)

	assertKind(t, DeleteContent(f.db, f.student, f.course.ID, c.ID), ErrUnauthorized)
	require.NoError(t, DeleteContent(f.db, f.teacher, f.course.ID, c.ID))
	assertKind(t, DeleteContent(f.db, f.teacher, f.course.ID, c.ID), ErrNotFound)
}

func TestDeletedCourseHidesContent(t *testing.T) {
	f := newFixture(t)
	c := f.content(t, "Week 1", nil)
	f.enroll(t, f.student)
	_, err := AddBookmark(f.db, f.student, &c.ID)
	require.NoError(t, err)
	comment, err := CreateComment(f.db, f.student, c.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, DeleteCourse(f.db, f.teacher, f.course.ID))

	_, err = GetContent(f.db, f.course.ID, c.ID)
	assertKind(t, err, ErrNotFound)
	_, err = AddBookmark(f.db, f.student, &c.ID)
	assertKind(t, err, ErrNotFound)
	_, err = ListComments(f.db, c.ID)
	assertKind(t, err, ErrNotFound)
	_, err = CreateComment(f.db, f.student, c.ID, "again")
	assertKind(t, err, ErrNotFound)
	_, err = ModerateComment(f.db, f.teacher, comment.ID, true)
	assertKind(t, err, ErrNotFound)

	views, err := ListBookmarks(f.db, f.student)
	require.NoError(t, err)
	assert.Empty(t, views)
}
