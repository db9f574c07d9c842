package ports

import "context"

// LoginLimiter throttles repeated failed logins per email.
type LoginLimiter interface {
	// TooMany reports whether the email is currently locked out.
	TooMany(ctx context.Context, email string) (bool, error)
	// Fail records a failed attempt.
	Fail(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
