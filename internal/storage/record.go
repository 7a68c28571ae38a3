// internal/storage/record.go
package storage

import (
	"context"
	"fmt"
	"strconv"
)

// Keys of the flat score record.
const (
	KeyPlayerName             = "PlayerName"
	KeyReplays                = "Replays"
	KeyTotalGameTime          = "TotalGameTime"
	KeyScore                  = "Score"
	KeyBestScore              = "BestScore"
	KeyLevelsCompletedThisRun = "LevelsCompletedThisRun"
	KeyBestLevelsCompleted    = "BestLevelsCompleted"
	KeyLastRunID              = "LastRunID"
)

// DefaultPlayerName is used until the player enters a name.
const DefaultPlayerName = "Diver"

// ScoreRecord is the whole persisted state of the game.
type ScoreRecord struct {
	PlayerName             string
	Replays                int
	TotalGameTime          float64 // seconds across all runs
	Score                  int     // last run
	BestScore              int
	LevelsCompletedThisRun int
	BestLevelsCompleted    int
	LastRunID              string
}

// ScoreStore persists the score record.
type ScoreStore interface {
	// Load returns the stored record, or DefaultRecord on first start.
	Load(ctx context.Context) (ScoreRecord, error)
	Save(ctx context.Context, rec ScoreRecord) error
	Close() error
}

// DefaultRecord is the record of a player who never played.
func DefaultRecord() ScoreRecord {
	return ScoreRecord{PlayerName: DefaultPlayerName}
}

// ResetSession clears the per-run fields and keeps the bests.
func (r *ScoreRecord) ResetSession() {
	r.Score = 0
	r.LevelsCompletedThisRun = 0
}

// Encode flattens the record into string keys.
func (r ScoreRecord) Encode() map[string]string {
	return map[string]string{
		KeyPlayerName:             r.PlayerName,
		KeyReplays:                strconv.Itoa(r.Replays),
		KeyTotalGameTime:          strconv.FormatFloat(r.TotalGameTime, 'f', -1, 64),
		KeyScore:                  strconv.Itoa(r.Score),
		KeyBestScore:              strconv.Itoa(r.BestScore),
		KeyLevelsCompletedThisRun: strconv.Itoa(r.LevelsCompletedThisRun),
		KeyBestLevelsCompleted:    strconv.Itoa(r.BestLevelsCompleted),
		KeyLastRunID:              r.LastRunID,
	}
}

// DecodeRecord rebuilds a record from flat keys. Missing keys keep defaults.
func DecodeRecord(kv map[string]string) (ScoreRecord, error) {
	rec := DefaultRecord()
	if v, ok := kv[KeyPlayerName]; ok && v != "" {
		rec.PlayerName = v
	}
	rec.LastRunID = kv[KeyLastRunID]

	ints := []struct {
		key string
		dst *int
	}{
		{KeyReplays, &rec.Replays},
		{KeyScore, &rec.Score},
		{KeyBestScore, &rec.BestScore},
		{KeyLevelsCompletedThisRun, &rec.LevelsCompletedThisRun},
		{KeyBestLevelsCompleted, &rec.BestLevelsCompleted},
	}
	for _, f := range ints {
		v, ok := kv[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return rec, fmt.Errorf("key %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v, ok := kv[KeyTotalGameTime]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rec, fmt.Errorf("key %s: %w", KeyTotalGameTime, err)
		}
		rec.TotalGameTime = f
	}
	return rec, nil
}
