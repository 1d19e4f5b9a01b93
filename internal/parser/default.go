package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.lost.host/meutraa/ritmo/internal/game"
)

type DefaultParser struct{}

// keyframe mirrors one track record. Pointer fields distinguish a missing
// field from a zero value so a partial record fails the whole load.
type keyframe struct {
	Time      *float64 `json:"time"`
	ArrowType *string  `json:"arrow_type"`
}

func (p *DefaultParser) Parse(file string) (*game.Track, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read track file: %w", err)
	}
	track, err := p.parse(data)
	if nil != err {
		return nil, fmt.Errorf("invalid track %v: %w", file, err)
	}
	track.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return track, nil
}

func (p *DefaultParser) parse(data []byte) (*game.Track, error) {
	var keyframes []keyframe
	if err := json.Unmarshal(data, &keyframes); nil != err {
		return nil, err
	}

	events := make([]game.NoteEvent, 0, len(keyframes))
	for i, k := range keyframes {
		if nil == k.Time {
			return nil, fmt.Errorf("keyframe %v missing 'time' field", i)
		}
		if nil == k.ArrowType {
			return nil, fmt.Errorf("keyframe %v missing 'arrow_type' field", i)
		}
		direction, err := game.ParseDirection(*k.ArrowType)
		if nil != err {
			return nil, fmt.Errorf("keyframe %v: %w", i, err)
		}
		events = append(events, game.NoteEvent{
			Time:      time.Duration(*k.Time * float64(time.Second)),
			Direction: direction,
		})
	}

	// Records are sorted by time after validation, never silently reordered
	// on partial failure.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	sum := sha256.Sum256(data)
	return &game.Track{
		Sum:    base64.StdEncoding.EncodeToString(sum[:]),
		Events: events,
	}, nil
}
