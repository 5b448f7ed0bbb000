package utils

import (
	"context"
	"sync"
	"time"

	"lms/models"
	"lms/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// cronLogger forwards robfig/cron's log lines to zerolog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("[RELEASE-SCHEDULER] " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("[RELEASE-SCHEDULER] " + msg)
}

// InitializeReleaseScheduler emails course members whenever content passes its
// release time. An empty schedule disables the scheduler and returns nil.
func InitializeReleaseScheduler(spec string, db *gorm.DB, notifier Notifier) (*cron.Cron, error) {
	if spec == "" {
		log.Info().Msg("[RELEASE-SCHEDULER] disabled")
		return nil, nil
	}

	c := cron.New(cron.WithLogger(cronLogger{}), cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))

	var mu sync.Mutex
	lastRun := services.Now()

	_, err := c.AddFunc(spec, func() {
		mu.Lock()
		defer mu.Unlock()

		now := services.Now()
		sent, err := ProcessReleasedContent(context.Background(), db, lastRun, now, notifier)
		if err != nil {
			log.Error().Err(err).Msg("[RELEASE-SCHEDULER] run failed")
			return
		}
		log.Info().Int("notified", sent).Time("from", lastRun).Time("to", now).Msg("[RELEASE-SCHEDULER] run finished")
		lastRun = now
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("schedule", spec).Msg("[RELEASE-SCHEDULER] started")
	return c, nil
}

// ProcessReleasedContent notifies each member of the owning course once for
// every content released in (from, to]. It returns the number of emails sent.
func ProcessReleasedContent(ctx context.Context, db *gorm.DB, from, to time.Time, notifier Notifier) (int, error) {
	var contents []models.CourseContent
	if err := db.Preload("Course").
		Where("release_time > ? AND release_time <= ?", from.UTC(), to.UTC()).
		Where("course_id IN (?)", db.Model(&models.Course{}).Select("id")).
		Order("release_time asc, id asc").
		Find(&contents).Error; err != nil {
		return 0, err
	}

	sent := 0
	for _, content := range contents {
		var members []models.CourseMember
		if err := db.Preload("User").Where("course_id = ?", content.CourseID).Order("id asc").Find(&members).Error; err != nil {
			return sent, err
		}

		// Duplicate enrollments share one email
		notified := make(map[uint]bool, len(members))
		for _, m := range members {
			if notified[m.UserID] {
				continue
			}
			notified[m.UserID] = true

			email := ReleaseEmail(m.User.Email, m.User.FirstName, m.User.Username, content.Course.Name, content.Name)
			if err := notifier.Send(ctx, email); err != nil {
				log.Error().Err(err).Uint("content_id", content.ID).Uint("user_id", m.UserID).Msg("[RELEASE-SCHEDULER] notify failed")
				continue
			}
			sent++
		}
	}
	return sent, nil
}
