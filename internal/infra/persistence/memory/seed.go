package memory

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket URLs
)

const seedColumns = 5

// LoadSeed reads the CSV object key from the bucket at bucketURL.
// Expected CSV format: id,bloodType,latitude,longitude,fcmToken
func LoadSeed(ctx context.Context, bucketURL, key string) ([]*entity.Candidate, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open seed bucket %s", bucketURL)
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open seed object %s", key)
	}
	defer reader.Close()

	return ParseSeed(reader)
}

// ParseSeed decodes candidates from CSV. Latitude and longitude must be both
// present or both empty; bloodType and fcmToken may be empty.
func ParseSeed(source io.Reader) ([]*entity.Candidate, error) {
	reader := csv.NewReader(source)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []*entity.Candidate{}, nil
		}

		return nil, errors.WithStack(err)
	}

	candidates := []*entity.Candidate{}
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < seedColumns {
			return nil, errors.Errorf("invalid seed format at line %d: expected %d columns, got %d", lineNum, seedColumns, len(record))
		}

		candidate, parseErr := parseCandidate(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func parseCandidate(record []string, lineNum int) (*entity.Candidate, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return nil, errors.Errorf("invalid id at line %d: empty", lineNum)
	}

	candidate := &entity.Candidate{
		ID:        id,
		BloodType: strings.TrimSpace(record[1]),
		FCMToken:  strings.TrimSpace(record[4]),
	}

	rawLat := strings.TrimSpace(record[2])
	rawLng := strings.TrimSpace(record[3])
	if rawLat == "" && rawLng == "" {
		return candidate, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, errors.Errorf("invalid latitude at line %d: %q", lineNum, rawLat)
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil, errors.Errorf("invalid longitude at line %d: %q", lineNum, rawLng)
	}

	candidate.Location = &entity.Coordinate{Latitude: lat, Longitude: lng}

	return candidate, nil
}
