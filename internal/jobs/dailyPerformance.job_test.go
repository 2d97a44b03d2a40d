package jobs_test

import (
	"testing"

	"cinelog/internal/jobs"
	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestDailyPerformanceJob_Name(t *testing.T) {
	job := jobs.NewDailyPerformanceJob(nil, services.Daily)
	assert.Equal(t, "DailyPerformanceCalculation", job.Name())
}

func TestDailyPerformanceJob_Schedule(t *testing.T) {
	job := jobs.NewDailyPerformanceJob(nil, services.Daily)
	assert.Equal(t, services.Daily, job.Schedule())
}
