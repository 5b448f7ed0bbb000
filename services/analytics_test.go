package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserActivityDashboard(t *testing.T) {
	f := newFixture(t)
	// Wednesday; the week starts on Sunday 2026-05-03.
	at := time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC)
	fixClock(t, at)

	a := f.content(t, "A", nil)
	b := f.content(t, "B", nil)
	f.enroll(t, f.student)
	_, err := CreateComment(f.db, f.student, a.ID, "hi")
	require.NoError(t, err)
	_, _, err = MarkComplete(f.db, f.student, f.course.ID, a.ID)
	require.NoError(t, err)

	fixClock(t, at.AddDate(0, 0, -10))
	_, _, err = MarkComplete(f.db, f.student, f.course.ID, b.ID)
	require.NoError(t, err)
	fixClock(t, at)

	activity, err := UserActivityDashboard(f.db, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, UserActivity{
		CoursesAsStudent:       1,
		CoursesCreated:         0,
		CommentsWritten:        1,
		ContentCompleted:       2,
		ContentCompletedInWeek: 1,
	}, *activity)

	teacher, err := UserActivityDashboard(f.db, f.teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), teacher.CoursesCreated)

	_, err = UserActivityDashboard(f.db, 9999)
	assertKind(t, err, ErrNotFound)
}

func TestCourseAnalytics(t *testing.T) {
	f := newFixture(t)
	a := f.content(t, "A", nil)
	f.content(t, "B", nil)
	f.enroll(t, f.student)
	f.enroll(t, f.other)
	_, err := CreateComment(f.db, f.other, a.ID, "question")
	require.NoError(t, err)
	_, _, err = MarkComplete(f.db, f.student, f.course.ID, a.ID)
	require.NoError(t, err)

	_, err = CourseAnalyticsFor(f.db, f.student, f.course.ID)
	assertKind(t, err, ErrUnauthorized)

	stats, err := CourseAnalyticsFor(f.db, f.teacher, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, CourseAnalytics{MemberCount: 2, ContentCount: 2, CommentCount: 1, CompletionCount: 1}, *stats)
}
