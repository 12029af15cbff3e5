package cmd

import (
	"errors"
	"net/url"
	"time"

	"rider/internal/pkg/errs"
	"rider/internal/pkg/logging"

	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort string

	BackendBaseURL string
	BackendToken   string
	BackendTimeout time.Duration
	RiderActorID   int64

	LogLevel string

	WorklistRefreshSpec string
	ViewIdleTTL         time.Duration
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.BackendBaseURL == "" {
		problems = append(problems, errs.NewValueIsRequiredError("BACKEND_BASE_URL"))
	} else if u, err := url.Parse(c.BackendBaseURL); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BACKEND_BASE_URL", err))
	} else if u.Host == "" {
		problems = append(problems, errs.NewValueIsInvalidError("BACKEND_BASE_URL"))
	}
	if c.BackendTimeout <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("BACKEND_TIMEOUT_SECONDS", c.BackendTimeout, "1s", "no limit"))
	}
	if c.RiderActorID < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("RIDER_ACTOR_ID", c.RiderActorID, 0, "max int64"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor).
		Parse(c.WorklistRefreshSpec); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("WORKLIST_REFRESH_SPEC", err))
	}
	if c.ViewIdleTTL <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("VIEW_IDLE_TTL_SECONDS", c.ViewIdleTTL, "1s", "no limit"))
	}

	return errors.Join(problems...)
}
