package domain

import (
	"context"
	"time"
)

// SetDriverSleep replaces the pause between batches.
func SetDriverSleep(d *Driver, sleep func(ctx context.Context, d time.Duration) error) {
	d.sleep = sleep
}
