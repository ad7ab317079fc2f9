package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/config"
	"git.lost.host/meutraa/eotw-mods/internal/game"
	"git.lost.host/meutraa/eotw-mods/internal/mods"
	"git.lost.host/meutraa/eotw-mods/internal/parser"
	"git.lost.host/meutraa/eotw-mods/internal/score"
	"git.lost.host/meutraa/eotw-mods/internal/theme"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		log.Fatalln(err)
	}
	var th theme.Theme = theme.NewDefaultTheme(os.Stdout)
	if err := run(cfg, os.Stdout, th); nil != err {
		log.Fatalln(err)
	}
}

type program struct {
	cfg      *config.Config
	out      io.Writer
	theme    theme.Theme
	registry *mods.Registry
	parser   parser.Parser
	scorer   score.Scorer
}

func run(cfg *config.Config, out io.Writer, th theme.Theme) error {
	// Ensure our Default implementations are used as interfaces
	p := &program{
		cfg:      cfg,
		out:      out,
		theme:    th,
		registry: mods.DefaultRegistry(),
		parser:   &parser.DefaultParser{},
		scorer:   &score.DefaultScorer{},
	}

	switch cfg.Command {
	case "list":
		p.list()
		return nil
	case "play":
		return p.play()
	case "scores":
		return p.scores()
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

func (p *program) list() {
	for _, m := range p.registry.Visible() {
		fmt.Fprintln(p.out, p.theme.RenderMod(m))
	}
}

func (p *program) loadChart() (*game.Chart, error) {
	charts, err := p.parser.Parse(p.cfg.ChartFile)
	if nil != err {
		return nil, fmt.Errorf("unable to parse chart: %w", err)
	}
	if p.cfg.Difficulty >= uint(len(charts)) {
		return nil, fmt.Errorf("difficulty %v does not exist, %v has %v", p.cfg.Difficulty, p.cfg.ChartFile, len(charts))
	}
	return charts[p.cfg.Difficulty], nil
}

func (p *program) printScore(s score.Score) {
	fmt.Fprintf(p.out, "      Hits:  %6v\n", s.Hits)
	fmt.Fprintf(p.out, "    Misses:  %6v\n", s.Misses)
	fmt.Fprintf(p.out, "  Error dt:  %6.0f ms\n", float64(s.TotalError)/float64(time.Millisecond))
	fmt.Fprintf(p.out, "      Mean:  %6.2f ms\n", float64(s.MeanError())/float64(time.Millisecond))
}

// play runs a session without any input, every note the mods leave pending
// counts as a miss.
func (p *program) play() error {
	names, data, err := p.cfg.ActiveMods()
	if nil != err {
		return err
	}
	active, err := p.registry.Resolve(names)
	if nil != err {
		return err
	}
	chart, err := p.loadChart()
	if nil != err {
		return err
	}

	shared := mods.NewDataGroup()
	for k, v := range data {
		shared.Set(k, v)
	}
	session := mods.NewSession(mods.NewChartWithModifiers(chart, active), shared)
	defer session.Close()

	runner := &mods.DefaultRunner{}
	if p.cfg.Verbose {
		runner.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	var r mods.Runner = runner
	status, err := r.Run(session)
	if nil != err {
		return err
	}

	if err := p.scorer.Init(p.cfg.Database); nil != err {
		return err
	}
	defer p.scorer.Deinit()

	fmt.Fprintf(p.out, "%v (%v) [%v]\n", chart.Difficulty.Name, chart.Difficulty.Meter, strings.Join(session.Chart.ModNames(), ", "))
	p.printScore(p.scorer.Score(chart, session.HitData))
	fmt.Fprintf(p.out, "    Status:  %v\n", p.theme.RenderStatus(status))

	err = p.scorer.Save(chart, &score.Result{
		SessionID: session.ID,
		Mods:      session.Chart.ModNames(),
		Status:    status,
		HitData:   session.HitData,
	})
	if errors.Is(err, score.ErrNotSaveable) {
		fmt.Fprintln(p.out, "Score not saved")
		return nil
	} else if nil != err {
		return err
	}
	fmt.Fprintln(p.out, "Score saved")
	return nil
}

func (p *program) scores() error {
	chart, err := p.loadChart()
	if nil != err {
		return err
	}
	if err := p.scorer.Init(p.cfg.Database); nil != err {
		return err
	}
	defer p.scorer.Deinit()

	histories, err := p.scorer.Load(chart)
	if nil != err {
		return err
	}
	for i, h := range histories {
		fmt.Fprintf(p.out, "%2v) %v [%v] %v\n", i, h.SessionID, strings.Join(h.Mods, ", "), p.theme.RenderStatus(h.Status))
		p.printScore(p.scorer.Score(chart, h.HitData))
	}
	return nil
}
