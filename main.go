package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/level"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/renderer/ascii"
	"darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
)

// options holds the parsed command line.
type options struct {
	level      int
	configPath string
	render     string
	dumpPath   string
	lang       string
	verbose    bool

	width   int
	height  int
	seed    int64
	policy  string
	keys    int
	enemies int
	scale   float64

	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("darkmaze", flag.ContinueOnError)

	fs.IntVar(&o.level, "level", 1, "level number; picks size and placement from the difficulty table")
	fs.StringVar(&o.configPath, "config", "", "YAML file overriding the level settings")
	fs.StringVar(&o.render, "render", "tui", "renderer: ascii, tui or ebiten")
	fs.StringVar(&o.dumpPath, "dump", "", "write a level dump to this file")
	fs.StringVar(&o.lang, "lang", i18n.DefaultLanguage, "message catalog language")
	fs.BoolVar(&o.verbose, "v", false, "log generation details")

	fs.IntVar(&o.width, "width", 0, "maze width (even values are bumped to odd)")
	fs.IntVar(&o.height, "height", 0, "maze height (even values are bumped to odd)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (default: time based)")
	fs.StringVar(&o.policy, "policy", "", "placement policy: simple or spread")
	fs.IntVar(&o.keys, "keys", 0, "number of keys (spread policy)")
	fs.IntVar(&o.enemies, "enemies", 0, "number of enemy spawns")
	fs.Float64Var(&o.scale, "scale", 0, "world size of one cell (ebiten preview)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})
	return o, nil
}

// resolve layers the difficulty table, the config file and explicit flags.
func resolve(o *options) (config.File, error) {
	cfg := config.ForLevel(o.level)
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if o.set["width"] {
		cfg.Level.Width = o.width
	}
	if o.set["height"] {
		cfg.Level.Height = o.height
	}
	if o.set["policy"] {
		cfg.Level.Policy = o.policy
	}
	if o.set["keys"] {
		cfg.Level.Keys = config.Int(o.keys)
	}
	if o.set["enemies"] {
		cfg.Level.Enemies = config.Int(o.enemies)
	}
	if o.set["scale"] {
		cfg.Level.Scale = o.scale
	}
	if o.set["seed"] {
		cfg.Level.Seed = o.seed
	} else if cfg.Level.Seed == 0 {
		cfg.Level.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func newRenderer(name string, cfg config.File, advance func(int) (renderer.Frame, error)) (renderer.Renderer, error) {
	switch name {
	case "ascii":
		return ascii.New(os.Stdout), nil
	case "tui":
		return tui.New(os.Stdout), nil
	case "ebiten":
		return ebiten.New(ebiten.Options{
			Scale:   cfg.Level.Scale,
			Tuning:  cfg.Tuning(),
			Advance: advance,
		}), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// generateLevel resolves the settings for level n and generates it. A non-nil
// seed replaces the resolved one.
func generateLevel(o *options, n int, seed *int64) (renderer.Frame, config.File, error) {
	lo := *o
	lo.level = n
	cfg, err := resolve(&lo)
	if err != nil {
		return renderer.Frame{}, cfg, err
	}
	if seed != nil {
		cfg.Level.Seed = *seed
	}
	lc, err := cfg.LevelConfig()
	if err != nil {
		return renderer.Frame{}, cfg, err
	}
	if o.verbose {
		lc.Logger = log.Default()
	}

	gen, err := level.New(lc)
	if err != nil {
		return renderer.Frame{}, cfg, err
	}
	if _, err := gen.Generate(); err != nil {
		return renderer.Frame{}, cfg, err
	}
	return renderer.Frame{Level: n, Seed: lc.Seed, Gen: gen}, cfg, nil
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if err := i18n.Load(o.lang); err != nil {
		return err
	}
	if !i18n.Has("APP_TITLE") {
		log.Printf("catalog %q has no APP_TITLE; messages will show their keys", o.lang)
	}

	frame, cfg, err := generateLevel(o, o.level, nil)
	if err != nil {
		return err
	}

	if o.dumpPath != "" {
		path, err := devtools.DumpLevelToFile(o.dumpPath, frame.Gen, devtools.Meta{Level: frame.Level, Seed: frame.Seed})
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		log.Print(i18n.T("DUMP_WRITTEN", path))
	}

	// Later levels follow on from the first seed
	advance := func(n int) (renderer.Frame, error) {
		seed := frame.Seed + int64(n-frame.Level)
		f, _, err := generateLevel(o, n, &seed)
		return f, err
	}

	r, err := newRenderer(o.render, cfg, advance)
	if err != nil {
		return err
	}
	renderer.SetRenderer(r)
	return renderer.RenderFrame(frame)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
