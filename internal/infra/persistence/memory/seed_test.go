package memory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	seed := `id,bloodType,latitude,longitude,fcmToken
u1,O+,40.7128,-74.0060,token-1
u2,,,,
u3,AB-, 51.5074, -0.1278,token-3
`
	candidates, err := ParseSeed(strings.NewReader(seed))
	require.NoError(t, err)

	require.Len(t, candidates, 3)

	assert.Equal(t, "u1", candidates[0].ID)
	assert.Equal(t, "O+", candidates[0].BloodType)
	assert.Equal(t, "token-1", candidates[0].FCMToken)
	require.NotNil(t, candidates[0].Location)
	assert.InDelta(t, 40.7128, candidates[0].Location.Latitude, 0.0001)
	assert.InDelta(t, -74.0060, candidates[0].Location.Longitude, 0.0001)

	assert.Equal(t, "u2", candidates[1].ID)
	assert.Nil(t, candidates[1].Location)
	assert.Empty(t, candidates[1].FCMToken)

	require.NotNil(t, candidates[2].Location)
	assert.InDelta(t, 51.5074, candidates[2].Location.Latitude, 0.0001)
}

func TestParseSeed_Empty(t *testing.T) {
	candidates, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = ParseSeed(strings.NewReader("id,bloodType,latitude,longitude,fcmToken\n"))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr string
	}{
		{name: "missing columns", row: "u1,O+,1", wantErr: "line 2"},
		{name: "empty id", row: ",O+,1,1,t", wantErr: "invalid id at line 2"},
		{name: "bad latitude", row: "u1,O+,abc,1,t", wantErr: "invalid latitude at line 2"},
		{name: "latitude out of range", row: "u1,O+,91,1,t", wantErr: "invalid latitude at line 2"},
		{name: "longitude missing", row: "u1,O+,10,,t", wantErr: "invalid longitude at line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := "id,bloodType,latitude,longitude,fcmToken\n" + tt.row + "\n"

			_, err := ParseSeed(strings.NewReader(seed))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSeed_FileBucket(t *testing.T) {
	tmpDir := t.TempDir()
	seed := `id,bloodType,latitude,longitude,fcmToken
u1,O+,40.7128,-74.0060,token-1
`
	err := os.WriteFile(filepath.Join(tmpDir, "users.csv"), []byte(seed), 0644)
	require.NoError(t, err)

	candidates, err := LoadSeed(context.Background(), "file://"+filepath.ToSlash(tmpDir), "users.csv")
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "u1", candidates[0].ID)
}

func TestLoadSeed_MissingObject(t *testing.T) {
	_, err := LoadSeed(context.Background(), "file://"+filepath.ToSlash(t.TempDir()), "missing.csv")

	assert.Error(t, err)
}
