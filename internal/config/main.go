package config

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

const Version = "0.3.0"

type Config struct {
	Command    string
	Database   string
	Verbose    bool
	ChartFile  string
	Difficulty uint
	Mods       []string
	PresetFile string
}

// Preset is a saved selection of mods, applied in the listed order, and the
// shared data the session starts with.
type Preset struct {
	Mods []string               `yaml:"mods"`
	Data map[string]interface{} `yaml:"data"`
}

func Parse(args []string) (*Config, error) {
	c := &Config{}

	app := kingpin.New("eotw-mods", "Apply gameplay mods to the judgement of a chart")
	app.Version(Version)
	app.Flag("db", "Score database").Default("./scores.db").StringVar(&c.Database)
	app.Flag("verbose", "Log every applied mod").Short('v').BoolVar(&c.Verbose)

	app.Command("list", "List the mods offered in mod selection")

	play := app.Command("play", "Play a chart with mods and save the score if it counts")
	play.Arg("chart", "StepMania .sm file").Required().ExistingFileVar(&c.ChartFile)
	play.Flag("difficulty", "Difficulty index").Default("0").Short('d').UintVar(&c.Difficulty)
	play.Flag("mod", "Mod to activate, repeat in application order").Short('m').StringsVar(&c.Mods)
	play.Flag("preset", "YAML preset of mods and shared data").Short('p').ExistingFileVar(&c.PresetFile)

	scores := app.Command("scores", "List saved scores of a chart")
	scores.Arg("chart", "StepMania .sm file").Required().ExistingFileVar(&c.ChartFile)
	scores.Flag("difficulty", "Difficulty index").Default("0").Short('d').UintVar(&c.Difficulty)

	command, err := app.Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = command
	return c, nil
}

func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("unable to read preset: %w", err)
	}
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); nil != err {
		return nil, fmt.Errorf("unable to parse preset %v: %w", path, err)
	}
	return &preset, nil
}

// ActiveMods is the preset's mods followed by those given with --mod, and
// the preset's shared data.
func (c *Config) ActiveMods() ([]string, map[string]interface{}, error) {
	names := []string{}
	data := map[string]interface{}{}
	if c.PresetFile != "" {
		preset, err := LoadPreset(c.PresetFile)
		if nil != err {
			return nil, nil, err
		}
		names = append(names, preset.Mods...)
		for k, v := range preset.Data {
			data[k] = v
		}
	}
	names = append(names, c.Mods...)
	return names, data, nil
}
