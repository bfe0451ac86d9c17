// Command dice-sim rolls the die headless and reports settle times and the face
// distribution, optionally appending every result to a history database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/dice-roller/config"
	"github.com/lixenwraith/dice-roller/core"
	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/engine/services"
	"github.com/lixenwraith/dice-roller/history"
	"github.com/lixenwraith/dice-roller/history/sqlite"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/service"
	"github.com/lixenwraith/dice-roller/status"
)

var (
	rollsFlag   = flag.Int("n", 1000, "Number of rolls")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 picks one")
	tuningFlag  = flag.String("tuning", "", "TOML tuning file applied over defaults, before DICE_ env vars")
	historyFlag = flag.String("history-db", "", "SQLite file to append results to")
	limitFlag   = flag.Int("max-steps", parameter.LivenessStepLimit, "Step budget per roll")
	verboseFlag = flag.Bool("v", false, "Log progress to stderr")
	dumpFlag    = flag.Bool("dump-tuning", false, "Print the resolved tuning as TOML and exit")
)

// statsTimeout bounds the read of persisted totals
const statsTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verboseFlag {
		log.SetOutput(os.Stderr)
	}

	cfg, err := config.Load(*tuningFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
		return 1
	}
	if *historyFlag != "" {
		cfg.History.DB = *historyFlag
	}
	if *dumpFlag {
		if err := dumpTuning(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
			return 1
		}
		return 0
	}

	seed := *seedFlag
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
			return 1
		}
	}

	histLog, err := history.New(cfg.History.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
		return 1
	}
	statusSvc := status.NewService()
	histSvc := history.NewService(histLog, cfg.History.DB)
	histSvc.SetBlockingWrites(true)

	hub := services.NewHub()
	for _, svc := range []service.Service{statusSvc, histSvc} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
			return 1
		}
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
		return 1
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
		return 1
	}

	sim := engine.NewSimulator(cfg.Physics, rand.New(rand.NewSource(seed)), nil, statusSvc.Registry())
	hub.SubscribeAll(sim.Register)

	log.Printf("services %v, rolling %d dice, seed %d", hub.Names(), *rollsFlag, seed)
	res, err := runBatch(sim, *rollsFlag, *limitFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
		return 1
	}

	report(os.Stdout, res, seed)
	if *verboseFlag {
		for _, line := range statusSvc.Registry().Dump() {
			log.Print(line)
		}
	}

	if cfg.History.DB != "" {
		// Stop flushes queued writes before the totals are read back
		hub.StopAll()
		st, err := storedStats(cfg.History.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dice-sim: %v\n", err)
			return 1
		}
		reportStored(os.Stdout, st)
	}
	return 0
}

// dumpTuning writes cfg in the --tuning file format
func dumpTuning(w io.Writer, cfg config.Config) error {
	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// storedStats reads the totals of every roll persisted at path
func storedStats(path string) (sqlite.Stats, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return sqlite.Stats{}, err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()
	return store.Stats(ctx)
}

func reportStored(w io.Writer, st sqlite.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "stored rolls\t%d\n", st.Total)
	fmt.Fprintf(tw, "stored mean face\t%.3f\n", st.Average)
	fmt.Fprintf(tw, "stored max steps\t%d\n", st.MaxSteps)
	for i, n := range st.Counts {
		fmt.Fprintf(tw, "stored face %d\t%d\n", i+1, n)
	}
	tw.Flush()
}

func report(w io.Writer, res batchResult, seed int64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "seed\t%d\n", seed)
	fmt.Fprintf(tw, "rolls\t%d\n", res.Rolls)
	if res.Rolls > 0 {
		fmt.Fprintf(tw, "mean steps\t%.1f\n", float64(res.TotalSteps)/float64(res.Rolls))
	}
	fmt.Fprintf(tw, "max steps\t%d\n", res.MaxSteps)
	fmt.Fprintf(tw, "max bounces\t%d\n", res.MaxBounces)
	fmt.Fprintf(tw, "mean face\t%.3f\n", res.Mean())
	for i, n := range res.Counts {
		fmt.Fprintf(tw, "face %d\t%d\n", i+1, n)
	}
	chi := res.ChiSquare()
	verdict := "uniform at p=0.05"
	if chi > chiSquareCritical5 {
		verdict = "biased at p=0.05"
	}
	fmt.Fprintf(tw, "chi-square\t%.3f (%s)\n", chi, verdict)
	tw.Flush()
}
