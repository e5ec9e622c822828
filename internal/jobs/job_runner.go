package jobs

import (
	"gearshare-backend/internal/config"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
	"gearshare-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	bookingRepo repository.BookingRepository
	emailSvc    service.EmailService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookingRepo repository.BookingRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		bookingRepo: bookingRepo,
		emailSvc:    emailSvc,
		config:      cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
