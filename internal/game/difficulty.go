package game

type Difficulty struct {
	Name    string
	Meter   string
	Section string // Raw note data, used to identify the chart
	NKeys   uint8
}

var NKeyMap = map[string]uint8{
	"dance-single": 4,
	"dance-solo":   6,
	"dance-double": 8,
}

type BPM struct {
	StartingBeat float64
	Value        float64
}
