package main

import (
	"fmt"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/gochain"
	"github.com/jcorbin/gochain/internal/flushio"
	"github.com/jcorbin/gochain/internal/logio"
	"github.com/jcorbin/gochain/internal/runeio"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gochain [-t tier] [-s steps] [-c config.json] [-x] [-d] [-e chain]... [file]...\n")
	fmt.Fprintf(os.Stderr, "  -t tier    arithmetic table tier: 256, 512 or 1024\n")
	fmt.Fprintf(os.Stderr, "  -s steps   expansion step limit (0 for unlimited)\n")
	fmt.Fprintf(os.Stderr, "  -c file    JSON config with tier/steps/trace keys\n")
	fmt.Fprintf(os.Stderr, "  -x         enable step trace logging\n")
	fmt.Fprintf(os.Stderr, "  -d         dump result values one per line\n")
	fmt.Fprintf(os.Stderr, "  -e chain   expand the given chain text (repeatable)\n")
	fmt.Fprintf(os.Stderr, "with no -e and no files, chain source is read from stdin\n")
}

type config struct {
	tier  int
	steps int
	trace bool
	dump  bool
}

func (cfg *config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if v := gjson.GetBytes(data, "tier"); v.Exists() {
		if cfg.tier, err = tierOf(int(v.Int())); err != nil {
			return err
		}
	}
	if v := gjson.GetBytes(data, "steps"); v.Exists() {
		cfg.steps = int(v.Int())
	}
	if v := gjson.GetBytes(data, "trace"); v.Exists() {
		cfg.trace = v.Bool()
	}
	return nil
}

// tierOf validates a requested table tier against the generated ones.
func tierOf(n int) (int, error) {
	switch gochain.Tier(n) {
	case gochain.Tier256, gochain.Tier512, gochain.Tier1024:
		return n, nil
	}
	return 0, fmt.Errorf("invalid tier %v (want 256, 512 or 1024)", n)
}

func (cfg config) engineOptions(log *logio.Logger) []gochain.Option {
	var opts []gochain.Option
	if cfg.tier != 0 {
		opts = append(opts, gochain.WithTier(gochain.Tier(cfg.tier)))
	}
	if cfg.steps != 0 {
		opts = append(opts, gochain.WithStepLimit(cfg.steps))
	}
	if cfg.trace {
		opts = append(opts, gochain.WithLogf(log.Leveledf("TRACE")))
	}
	return opts
}

// job is one chain source to expand: a -e argument or an input file.
type job struct {
	name string
	expr string // chain text, when not a file
}

func (j job) expand(opts []gochain.Option) (gochain.Result, error) {
	eng := gochain.New(opts...)
	if j.expr != "" {
		return eng.ExpandReaders(runeio.NamedString(j.name, j.expr))
	}
	if j.name == "-" {
		return eng.ExpandReaders(runeio.Named("<stdin>", os.Stdin))
	}
	f, err := os.Open(j.name)
	if err != nil {
		return gochain.Result{}, err
	}
	defer f.Close()
	return eng.ExpandReaders(f)
}

func main() {
	log := logio.New(os.Stderr)
	failf := color.New(color.FgRed).Sprintf

	var cfg config
	var jobs []job

	opts, optind, err := getopt.Getopts(os.Args, "t:s:c:e:xdh")
	if err != nil {
		log.Errorf("%s", failf("%v", err))
		usage()
		os.Exit(log.ExitCode())
	}
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			var n int
			if n, err = strconv.Atoi(opt.Value); err == nil {
				cfg.tier, err = tierOf(n)
			}
		case 's':
			cfg.steps, err = strconv.Atoi(opt.Value)
		case 'c':
			err = cfg.loadFile(opt.Value)
		case 'e':
			jobs = append(jobs, job{
				name: fmt.Sprintf("<arg%v>", len(jobs)+1),
				expr: opt.Value,
			})
		case 'x':
			cfg.trace = true
		case 'd':
			cfg.dump = true
		case 'h':
			usage()
			return
		}
		if err != nil {
			log.Errorf("%s", failf("-%c: %v", opt.Option, err))
			os.Exit(log.ExitCode())
		}
	}
	for _, name := range os.Args[optind:] {
		jobs = append(jobs, job{name: name})
	}
	if len(jobs) == 0 {
		jobs = append(jobs, job{name: "-"})
	}

	engOpts := cfg.engineOptions(log)

	// each expansion is a pure function of its source, so jobs run
	// concurrently and report in input order
	results := make([]gochain.Result, len(jobs))
	errs := make([]error, len(jobs))
	var group errgroup.Group
	for i := range jobs {
		i := i
		group.Go(func() error {
			results[i], errs[i] = jobs[i].expand(engOpts)
			return nil
		})
	}
	group.Wait()

	out := flushio.NewWriteFlusher(os.Stdout)
	for i, j := range jobs {
		if errs[i] != nil {
			log.Errorf("%s", failf("%v: %v", j.name, errs[i]))
			continue
		}
		if cfg.dump {
			log.ErrorIf(results[i].Dump(out))
		} else {
			fmt.Fprintf(out, "%v\n", results[i])
		}
	}
	log.ErrorIf(out.Flush())
	os.Exit(log.ExitCode())
}
