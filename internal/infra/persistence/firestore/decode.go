package firestore

import (
	"pulse/internal/domain/entity"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// Field names of a user profile document
const (
	fieldBloodType    = "bloodType"
	fieldLocation     = "location"
	fieldFCMToken     = "fcmToken"
	fieldParticipants = "participants"
	fieldLatitude     = "latitude"
	fieldLongitude    = "longitude"
)

// toCandidateDomain maps a user profile document to a candidate. Missing or
// mistyped optional fields decode to their zero value.
func toCandidateDomain(id string, data map[string]any) *entity.Candidate {
	return &entity.Candidate{
		ID:        id,
		BloodType: stringField(data, fieldBloodType),
		Location:  toCoordinate(data[fieldLocation]),
		FCMToken:  stringField(data, fieldFCMToken),
	}
}

func toConversationDomain(id string, data map[string]any) *entity.Conversation {
	raw, _ := data[fieldParticipants].([]any)

	participants := make([]string, 0, len(raw))
	for _, value := range raw {
		if participant, ok := value.(string); ok && participant != "" {
			participants = append(participants, participant)
		}
	}

	return &entity.Conversation{ID: id, Participants: participants}
}

// toCoordinate accepts a Firestore GeoPoint or a {latitude, longitude} map
func toCoordinate(value any) *entity.Coordinate {
	switch v := value.(type) {
	case *latlng.LatLng:
		if v == nil {
			return nil
		}

		return &entity.Coordinate{Latitude: v.GetLatitude(), Longitude: v.GetLongitude()}
	case map[string]any:
		lat, latOK := numberField(v, fieldLatitude)
		lng, lngOK := numberField(v, fieldLongitude)
		if !latOK || !lngOK {
			return nil
		}

		return &entity.Coordinate{Latitude: lat, Longitude: lng}
	default:
		return nil
	}
}

func stringField(data map[string]any, key string) string {
	value, _ := data[key].(string)

	return value
}

func numberField(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
