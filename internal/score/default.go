package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/game"
	"git.lost.host/meutraa/eotw-mods/internal/mods"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db *sql.DB
}

// HitsCompact is the stored form of one note, the state of each slot and the
// deltas only when any of them are set.
type HitsCompact struct {
	Hit   []int           `json:"h"`
	Delta []time.Duration `json:"d,omitempty"`
}

func compactHits(hitData []game.HitData) []HitsCompact {
	hs := make([]HitsCompact, len(hitData))
	for i, d := range hitData {
		hs[i].Hit = make([]int, len(d.Hit))
		for k, s := range d.Hit {
			hs[i].Hit[k] = int(s)
		}
		for _, delta := range d.Delta {
			if delta != 0 {
				hs[i].Delta = d.Delta
				break
			}
		}
	}
	return hs
}

func uncompactHits(hs []HitsCompact) ([]game.HitData, error) {
	hitData := make([]game.HitData, len(hs))
	for i, h := range hs {
		hitData[i].Hit = make([]game.HitState, len(h.Hit))
		hitData[i].Delta = make([]time.Duration, len(h.Hit))
		for k, s := range h.Hit {
			if s < 0 || s > math.MaxUint8 {
				return nil, fmt.Errorf("note %v slot %v has invalid state %v", i, k, s)
			}
			hitData[i].Hit[k] = game.HitState(s)
		}
		if len(h.Delta) == 0 {
			continue
		}
		if len(h.Delta) != len(h.Hit) {
			return nil, fmt.Errorf("note %v has %v slots and %v deltas", i, len(h.Hit), len(h.Delta))
		}
		copy(hitData[i].Delta, h.Delta)
	}
	return hitData, nil
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	// In memory databases only live as long as their connection
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  sum text,
		  session text,
		  mods text,
		  status integer,
		  hits bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(c.Difficulty.Section))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(c *game.Chart, result *Result) error {
	if !result.Status.Saveable() {
		return fmt.Errorf("%w: status %s", ErrNotSaveable, result.Status)
	}
	if nil == s.db {
		return ErrNotInit
	}
	hits, err := json.Marshal(compactHits(result.HitData))
	if nil != err {
		return fmt.Errorf("unable to marshal hits: %w", err)
	}
	names, err := json.Marshal(result.Mods)
	if nil != err {
		return fmt.Errorf("unable to marshal mods: %w", err)
	}
	_, err = s.db.Exec("insert into scores(sum, session, mods, status, hits) values(?, ?, ?, ?, ?)",
		s.hashChart(c), result.SessionID.String(), string(names), int(result.Status), hits)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) ([]History, error) {
	if nil == s.db {
		return nil, ErrNotInit
	}
	histories := []History{}
	rows, err := s.db.Query("select sum, session, mods, status, hits from scores where sum = ? order by id", s.hashChart(c))
	if nil != err {
		return histories, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sum, session, names string
		var status int
		var hits []byte
		if err := rows.Scan(&sum, &session, &names, &status, &hits); nil != err {
			return histories, fmt.Errorf("unable to scan score: %w", err)
		}
		var hs []HitsCompact
		if err := json.Unmarshal(hits, &hs); nil != err {
			log.Println("unable to unmarshal hit history", err)
			continue
		}
		hitData, err := uncompactHits(hs)
		if nil != err {
			log.Println("unable to uncompact hit history", err)
			continue
		}
		history := History{
			Sum:       sum,
			SessionID: session,
			Status:    mods.Status(status),
			HitData:   hitData,
		}
		if err := json.Unmarshal([]byte(names), &history.Mods); nil != err {
			log.Println("unable to unmarshal mod names", err)
		}
		histories = append(histories, history)
	}
	return histories, rows.Err()
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Score counts every slot of a playable note that is not a hit as a miss,
// including slots nothing ever resolved.
func (s *DefaultScorer) Score(chart *game.Chart, hitData []game.HitData) Score {
	var score Score
	for i, d := range hitData {
		if i < len(chart.Notes) && chart.Notes[i].IsMine {
			continue
		}
		for k, state := range d.Hit {
			if state != game.HitDone {
				score.Misses++
				continue
			}
			score.Hits++
			if k < len(d.Delta) {
				score.TotalError += abs(d.Delta[k])
			}
		}
	}
	return score
}
