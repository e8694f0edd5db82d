// File: utils/constants.go
package utils

import "time"

// ReminderDedupPrefix is the prefix for Redis reminder idempotency keys.
const ReminderDedupPrefix = "reminder:"

// ReminderDedupTTL bounds how long a reminder idempotency key is cached.
// The notification collection stays the authoritative dedup source.
const ReminderDedupTTL = 48 * time.Hour
