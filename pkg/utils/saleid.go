package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewSaleID builds a sale identifier from the completion timestamp (ms epoch)
// and a short random suffix, e.g. "1704067200000-5f3a9c". The timestamp
// prefix keeps ids naturally sortable; the suffix guards against two sales
// completing in the same millisecond.
func NewSaleID(timestamp int64) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return strconv.FormatInt(timestamp, 10) + "-" + suffix
}
