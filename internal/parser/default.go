package parser

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/game"
)

type DefaultParser struct{}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseString(string(data))
}

func (p *DefaultParser) ParseString(str string) ([]*game.Chart, error) {
	str = strings.ReplaceAll(str, "\r", "")
	sections := strings.Split(str, "#NOTES:")

	offset, bpms, err := p.parseMeta(sections[0])
	if nil != err {
		return nil, err
	}
	if len(bpms) == 0 {
		return nil, ErrNoBPM
	}

	charts := []*game.Chart{}
	for _, section := range sections[1:] {
		difficulty, ok := p.parseDifficulty(section)
		if !ok {
			continue
		}
		charts = append(charts, p.parseNotes(difficulty, offset, bpms))
	}
	return charts, nil
}

func tagValue(tag, name string) (string, bool) {
	if !strings.HasPrefix(tag, name+":") {
		return "", false
	}
	value := strings.TrimPrefix(tag, name+":")
	value = strings.ReplaceAll(value, "\n", "")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";")), true
}

func (p *DefaultParser) parseMeta(meta string) (float64, []game.BPM, error) {
	offset := 0.0
	bpms := []game.BPM{}

	for _, tag := range strings.Split(meta, "#") {
		tag = strings.TrimSpace(tag)
		if value, ok := tagValue(tag, "OFFSET"); ok {
			offs, err := strconv.ParseFloat(value, 64)
			if nil != err {
				return 0, nil, fmt.Errorf("invalid offset %q: %w", value, err)
			}
			// Beat 0 happens OFFSET seconds before the music starts
			offset = -offs
		} else if value, ok := tagValue(tag, "BPMS"); ok {
			for _, pair := range strings.Split(value, ",") {
				if strings.TrimSpace(pair) == "" {
					continue
				}
				as := strings.SplitN(pair, "=", 2)
				if len(as) != 2 {
					return 0, nil, fmt.Errorf("invalid bpm %q", pair)
				}
				beat, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
				if nil != err {
					return 0, nil, fmt.Errorf("invalid bpm beat %q: %w", pair, err)
				}
				bpm, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
				if nil != err || bpm <= 0 {
					return 0, nil, fmt.Errorf("invalid bpm value %q", pair)
				}
				bpms = append(bpms, game.BPM{StartingBeat: beat, Value: bpm})
			}
		}
	}

	sort.SliceStable(bpms, func(i, j int) bool {
		return bpms[i].StartingBeat < bpms[j].StartingBeat
	})
	return offset, bpms, nil
}

// The NOTES header is type:author:difficulty:meter:radar:data;
func (p *DefaultParser) parseDifficulty(section string) (game.Difficulty, bool) {
	fields := strings.SplitN(section, ":", 6)
	if len(fields) != 6 {
		return game.Difficulty{}, false
	}
	nKeys, ok := game.NKeyMap[strings.TrimSpace(fields[0])]
	if !ok {
		return game.Difficulty{}, false
	}
	notes := fields[5]
	if i := strings.Index(notes, ";"); i >= 0 {
		notes = notes[:i]
	}
	return game.Difficulty{
		Name:    strings.TrimSpace(fields[2]),
		Meter:   strings.TrimSpace(fields[3]),
		Section: notes,
		NKeys:   nKeys,
	}, true
}

// beatTime walks the bpm changes up to the beat.
func beatTime(bpms []game.BPM, offset, beat float64) time.Duration {
	seconds := offset
	for i, bpm := range bpms {
		end := beat
		if i+1 < len(bpms) && bpms[i+1].StartingBeat < beat {
			end = bpms[i+1].StartingBeat
		}
		if end <= bpm.StartingBeat {
			break
		}
		seconds += (end - bpm.StartingBeat) * 60 / bpm.Value
	}
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

func (p *DefaultParser) parseNotes(difficulty game.Difficulty, offset float64, bpms []game.BPM) *game.Chart {
	chart := &game.Chart{
		Notes:      []*game.Note{},
		Difficulty: difficulty,
	}
	// Open hold heads by column, closed by the next tail
	holds := map[int]*game.Note{}

	for m, measure := range strings.Split(difficulty.Section, ",") {
		rows := []string{}
		for _, line := range strings.Split(measure, "\n") {
			if i := strings.Index(line, "//"); i >= 0 {
				line = line[:i]
			}
			line = strings.TrimSpace(line)
			if len(line) == int(difficulty.NKeys) {
				rows = append(rows, line)
			}
		}

		// Beat count is 4 per measure
		for r, row := range rows {
			at := beatTime(bpms, offset, 4*(float64(m)+float64(r)/float64(len(rows))))
			for col := 0; col < len(row); col++ {
				c := row[col]
				switch c {
				case '1', '2', '4', 'M':
					note := &game.Note{Index: uint8(col), IsMine: c == 'M', Time: at}
					chart.Notes = append(chart.Notes, note)
					if c == 'M' {
						chart.MineCount++
						continue
					}
					chart.NoteCount++
					if c == '2' || c == '4' {
						holds[col] = note
						chart.HoldCount++
					}
				case '3':
					if head, ok := holds[col]; ok {
						head.TimeEnd = at
						delete(holds, col)
					}
				}
			}
		}
	}
	return chart
}
