package state

import (
	"encoding/json"
	"fmt"
	"time"

	"tally/contexts/scoring/score-registry/domain/identity"
	"tally/contexts/scoring/score-registry/ports"
)

// Key layout inside the registry's storage namespace:
//
//	owner          -> ownerRecord (singleton)
//	info           -> infoRecord  (singleton)
//	score/<user>   -> scoreRecord (keyed region)
const (
	ownerKey    = "owner"
	infoKey     = "info"
	scorePrefix = "score/"
)

func OwnerKey() []byte {
	return []byte(ownerKey)
}

func InfoKey() []byte {
	return []byte(infoKey)
}

func ScoreKey(user string) []byte {
	return []byte(scorePrefix + user)
}

func ScorePrefix() []byte {
	return []byte(scorePrefix)
}

// UserFromScoreKey recovers the user identifier from a keyed-region key.
func UserFromScoreKey(key []byte) string {
	if len(key) < len(scorePrefix) {
		return ""
	}
	return string(key[len(scorePrefix):])
}

type ownerRecord struct {
	Owner string `json:"owner"`
}

type scoreRecord struct {
	Score uint32 `json:"score"`
}

type infoRecord struct {
	Name           string    `json:"name"`
	Version        string    `json:"version"`
	InstanceID     string    `json:"instance_id"`
	InstantiatedAt time.Time `json:"instantiated_at"`
}

func EncodeOwner(owner identity.Identity) ([]byte, error) {
	return json.Marshal(ownerRecord{Owner: owner.String()})
}

func DecodeOwner(raw []byte) (identity.Identity, error) {
	var record ownerRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return identity.Identity{}, fmt.Errorf("decode owner record: %w", err)
	}
	return identity.New(record.Owner), nil
}

func EncodeScore(score uint32) ([]byte, error) {
	return json.Marshal(scoreRecord{Score: score})
}

func DecodeScore(raw []byte) (uint32, error) {
	var record scoreRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return 0, fmt.Errorf("decode score record: %w", err)
	}
	return record.Score, nil
}

func EncodeInfo(info ports.RegistryInfo) ([]byte, error) {
	return json.Marshal(infoRecord{
		Name:           info.Name,
		Version:        info.Version,
		InstanceID:     info.InstanceID,
		InstantiatedAt: info.InstantiatedAt.UTC(),
	})
}

func DecodeInfo(raw []byte) (ports.RegistryInfo, error) {
	var record infoRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return ports.RegistryInfo{}, fmt.Errorf("decode info record: %w", err)
	}
	return ports.RegistryInfo{
		Name:           record.Name,
		Version:        record.Version,
		InstanceID:     record.InstanceID,
		InstantiatedAt: record.InstantiatedAt,
	}, nil
}
