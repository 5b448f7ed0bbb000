package database

import (
	"testing"

	"lms/config"
	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorSelectsDriver(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBName: "lms"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenInMemoryIsMigratedAndIsolated(t *testing.T) {
	a, err := OpenInMemory()
	require.NoError(t, err)
	b, err := OpenInMemory()
	require.NoError(t, err)

	require.NoError(t, a.Create(&models.User{Username: "teacher", Password: "x", Email: "t@example.com"}).Error)

	var countA, countB int64
	require.NoError(t, a.Model(&models.User{}).Count(&countA).Error)
	require.NoError(t, b.Model(&models.User{}).Count(&countB).Error)
	assert.Equal(t, int64(1), countA)
	assert.Equal(t, int64(0), countB)

	for _, table := range []any{&models.Course{}, &models.CourseMember{}, &models.CourseContent{}, &models.Comment{}, &models.CompletionTracking{}, &models.Bookmark{}, &models.LoginTracking{}} {
		assert.True(t, a.Migrator().HasTable(table))
	}
}
