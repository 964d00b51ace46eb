package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt, "5f0c6a3e-entry")
	assert.NotEmpty(t, token)

	gotDate, gotCreated, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, entryDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
	assert.Equal(t, "5f0c6a3e-entry", gotID)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	createdAt := time.Date(2026, 3, 1, 8, 0, 0, 0, loc)

	_, gotCreated, _, err := DecodeToken(EncodeToken(createdAt, createdAt, "e1"))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, gotCreated.Location())
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	encode := func(raw string) string { return base64.URLEncoding.EncodeToString([]byte(raw)) }
	cases := map[string]string{
		"not base64":      "%%%",
		"no separator":    encode("2026-03-01T00:00:00Z"),
		"missing entry":   encode("2026-03-01T00:00:00Z|2026-03-01T00:00:00Z"),
		"empty entry":     encode("2026-03-01T00:00:00Z|2026-03-01T00:00:00Z|"),
		"bad entry date":  encode("yesterday|2026-03-01T00:00:00Z|e1"),
		"bad create time": encode("2026-03-01T00:00:00Z|later|e1"),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := DecodeToken(token)
			assert.Error(t, err)
		})
	}
}
