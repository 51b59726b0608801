package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber returns a caller-visible order token: a sortable time
// prefix plus a random suffix so concurrent submissions cannot collide.
func NewOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return time.Now().Format("20060102150405") + suffix
}
