package config

import (
	"os"
	"time"
)

// GetPhotoSweepInterval is how often the background photography sweep runs.
func GetPhotoSweepInterval() time.Duration {
	if v := os.Getenv("PHOTO_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Minute
}

// GetProgramRunInterval returns the periodic foster-program interval and
// whether periodic runs are enabled at all. Unset or zero disables them;
// the program can still be triggered on demand over HTTP.
func GetProgramRunInterval() (time.Duration, bool) {
	v := os.Getenv("PROGRAM_RUN_INTERVAL")
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
