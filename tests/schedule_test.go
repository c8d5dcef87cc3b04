package tests

import (
	"regexp"
	"testing"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallProgress(t *testing.T) {
	assert.Equal(t, 0, service.OverallProgress(nil))
	assert.Equal(t, 0, service.OverallProgress([]model.ProductChecklistItem{}))

	assert.Equal(t, 100, service.OverallProgress([]model.ProductChecklistItem{
		{Percentage: 100},
	}))

	// mean of 0, 50, 100 is 50
	assert.Equal(t, 50, service.OverallProgress([]model.ProductChecklistItem{
		{Percentage: 0}, {Percentage: 50}, {Percentage: 100},
	}))

	// 10 and 15 → 12.5 rounds up
	assert.Equal(t, 13, service.OverallProgress([]model.ProductChecklistItem{
		{Percentage: 10}, {Percentage: 15},
	}))
}

func TestScheduleStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	t.Run("missing deadline is ongoing", func(t *testing.T) {
		assert.Equal(t, service.ScheduleOngoing, service.ScheduleStatus(nil, now))
	})

	t.Run("deadline today is ongoing", func(t *testing.T) {
		today := model.DateOf(now)
		assert.Equal(t, service.ScheduleOngoing, service.ScheduleStatus(&today, now))
	})

	t.Run("deadline yesterday is late", func(t *testing.T) {
		yesterday := model.DateOf(now.AddDate(0, 0, -1))
		assert.Equal(t, service.ScheduleLate, service.ScheduleStatus(&yesterday, now))
	})

	t.Run("deadline tomorrow is ongoing", func(t *testing.T) {
		tomorrow := model.DateOf(now.AddDate(0, 0, 1))
		assert.Equal(t, service.ScheduleOngoing, service.ScheduleStatus(&tomorrow, now))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		// Late in the evening, deadline earlier the same day: still ongoing.
		lateEvening := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
		today := model.DateOf(now)
		assert.Equal(t, service.ScheduleOngoing, service.ScheduleStatus(&today, lateEvening))
	})
}

func TestGenerateInquiryCode(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	code := service.GenerateInquiryCode(now)

	require.Regexp(t, regexp.MustCompile(`^INQ-[0-9a-f]{8}-\d+$`), code)
	assert.Contains(t, code, "-1749995100000") // epoch millis of now

	// The random segment makes consecutive codes distinct.
	assert.NotEqual(t, code, service.GenerateInquiryCode(now))
}
