// Package pagination encodes keyset cursors for paging journal entries.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken builds an opaque cursor from the last entry of a page. Entries are ordered
// by (entry date, created at, entry id) descending; the id breaks ties between entries
// written by the same posting.
func EncodeToken(entryDate time.Time, createdAt time.Time, entryID string) string {
	raw := entryDate.UTC().Format(timeFormat) + "|" + createdAt.UTC().Format(timeFormat) + "|" + entryID
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a cursor produced by EncodeToken.
func DecodeToken(token string) (entryDate time.Time, createdAt time.Time, entryID string, err error) {
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token: %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token: expected three parts")
	}
	if entryDate, err = time.Parse(timeFormat, parts[0]); err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token entry date: %w", err)
	}
	if createdAt, err = time.Parse(timeFormat, parts[1]); err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token creation time: %w", err)
	}
	return entryDate, createdAt, parts[2], nil
}
