package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// benchReport summarises solving every word in a dictionary.
type benchReport struct {
	Games     int
	Histogram map[int]int // rounds → games
	AvgRounds float64
	Worst     int
	WorstWord game.Word
}

// runBench solves every dictionary word, reporting progress to progress and
// the summary to out.
func runBench(ctx context.Context, cfg Config, dict *words.Dictionary, out, progress io.Writer) error {
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}
	rep, err := bench(ctx, dict.Words(), opts, progress)
	if err != nil {
		return err
	}
	rep.write(out)
	return nil
}

// bench plays one independent game per secret, in parallel. Each game owns
// its model; the dictionary is shared read-only.
func bench(ctx context.Context, dict []game.Word, opts solver.Options, progress io.Writer) (benchReport, error) {
	rounds := make([]int, len(dict))
	bar := progressbar.NewOptions(len(dict),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionShowCount(),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, secret := range dict {
		i, secret := i, secret
		g.Go(func() error {
			res, err := solver.Solve(ctx, dict, secret, opts)
			if err != nil {
				return fmt.Errorf("secret %s: %w", secret, err)
			}
			rounds[i] = len(res.Rounds)
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchReport{}, err
	}
	_ = bar.Finish()

	rep := benchReport{Games: len(dict), Histogram: make(map[int]int)}
	total := 0
	for i, n := range rounds {
		rep.Histogram[n]++
		total += n
		if n > rep.Worst {
			rep.Worst, rep.WorstWord = n, dict[i]
		}
	}
	if rep.Games > 0 {
		rep.AvgRounds = float64(total) / float64(rep.Games)
	}
	return rep, nil
}

func (r benchReport) write(out io.Writer) {
	fmt.Fprintf(out, "games: %d\n", r.Games)
	fmt.Fprintf(out, "avg rounds: %.2f\n", r.AvgRounds)
	fmt.Fprintf(out, "worst: %d (%s)\n", r.Worst, r.WorstWord)

	keys := make([]int, 0, len(r.Histogram))
	for k := range r.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rounds\tgames")
	for _, k := range keys {
		fmt.Fprintf(tw, "%d\t%d\n", k, r.Histogram[k])
	}
	_ = tw.Flush()
}
