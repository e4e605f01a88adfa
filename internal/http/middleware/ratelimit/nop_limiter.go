package ratelimit

// NopLimiter lets every request through.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }
