package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/eotw-mods/internal/game"
)

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

// Four taps, a hold and a mine at 120 bpm
const data = `{
	"Notes": [
		{"Index": 0, "Time": 0},
		{"Index": 1, "Time": 500000000},
		{"Index": 2, "Time": 1000000000},
		{"Index": 3, "Time": 1500000000},
		{"Index": 0, "Time": 2000000000, "TimeEnd": 3000000000},
		{"Index": 2, "Time": 2500000000, "IsMine": true}
	],
	"NoteCount": 5,
	"HoldCount": 1,
	"MineCount": 1,
	"Difficulty": {
		"Name": "Beginner",
		"Meter": "1",
		"Section": "\n1000\n0100\n0010\n0001\n,\n2000\n00M0\n3000\n0000\n",
		"NKeys": 4
	}
}`

// SM is the same chart as a StepMania file
const SM = `#TITLE:Test;
#ARTIST:eotw;
#OFFSET:0.000;
#BPMS:0.000=120.000;
#NOTES:
     dance-single:
     eotw:
     Beginner:
     1:
     0.000,0.000,0.000,0.000,0.000:
1000
0100
0010
0001
,
2000
00M0
3000
0000
;
#NOTES:
     pump-single:
     eotw:
     Hard:
     9:
     0.000,0.000,0.000,0.000,0.000:
10000
;
`
