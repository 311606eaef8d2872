// Package resource provides a memory budget for storage allocation.
//
// A Controller enforces a hard byte limit on the memory reserved by
// storage blocks. Acquisition is non-blocking: when the limit would be
// exceeded the caller gets ErrMemoryLimitExceeded immediately and can
// surface it as an allocation failure.
package resource
