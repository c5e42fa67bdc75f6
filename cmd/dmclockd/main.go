// Command dmclockd runs a synthetic multi-tenant workload against the
// dmClock scheduling engine and renders its dispatch activity either as
// a live dashboard or as headless log lines.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"dmclockd/internal/config"
	"dmclockd/internal/registry"
	"dmclockd/internal/ui/live"
	"dmclockd/pkg/dmclock"
)

// request is the payload the demo workload generators submit; the
// engine itself is generic over this type per pkg/dmclock's design.
// id is a per-request trace id, independent of seq, so log lines and
// any downstream correlation survive request reordering across clients.
type request struct {
	seq int
	id  string
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to dmclockd config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	reg := registry.New()
	if err := reg.Load(cfg.Registry.Path); err != nil {
		fmt.Fprintf(os.Stderr, "registry load error: %v\n", err)
		return 1
	}
	if len(reg.List()) == 0 {
		seedDefaultRegistry(reg)
		if len(cfg.Demo.RequestsPerSec) == 0 {
			cfg.Demo.RequestsPerSec = map[string]float64{
				"reserved-a": 100,
				"area-a":     200,
				"area-b":     200,
				"burst-a":    150,
			}
		}
	}

	opts := dmclock.Options{
		IdleAge:             cfg.Queue.IdleAge,
		EraseAge:            cfg.Queue.EraseAge,
		CheckTime:           cfg.Queue.CheckTime,
		SystemCapacity:      cfg.Queue.SystemCapacity,
		WinSize:             cfg.Queue.WinSize,
		AllowLimitBreak:     cfg.Queue.AllowLimitBreak,
		AnticipationTimeout: cfg.Queue.AnticipationTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var handled sync.WaitGroup
	pq := dmclock.NewPushQueue[string, request](reg.LookupFn(), opts,
		func() bool { return true },
		func(id string, req request, phase dmclock.Phase) {
			logDispatch(cfg.Demo.Render, id, req, phase)
			handled.Done()
		},
	)
	defer pq.Close()

	var controller *live.Controller
	if cfg.Demo.Render == "live" {
		controller = live.Start(os.Stdout, pq.Queue, live.Options{})
		defer controller.Wait()
		defer controller.Close()
	}

	demoCtx, cancelDemo := context.WithTimeout(ctx, time.Duration(cfg.Demo.DurationSecs*float64(time.Second)))
	defer cancelDemo()

	var gen sync.WaitGroup
	for _, profile := range reg.List() {
		rate, ok := cfg.Demo.RequestsPerSec[profile.ID]
		if !ok || rate <= 0 {
			continue
		}
		gen.Add(1)
		go func(clientID string, rate float64) {
			defer gen.Done()
			runGenerator(demoCtx, clientID, rate, pq, &handled)
		}(profile.ID, rate)
	}

	gen.Wait()
	handled.Wait()
	return 0
}

// runGenerator submits one request every 1/rate seconds until ctx ends.
func runGenerator(ctx context.Context, clientID string, rate float64, pq *dmclock.PushQueue[string, request], handled *sync.WaitGroup) {
	interval := time.Duration(float64(time.Second) / rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	seq := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq++
			handled.Add(1)
			pq.Add(clientID, request{seq: seq, id: uuid.NewString()}, dmclock.Distance{Rho: 1, Delta: 1})
		}
	}
}

func logDispatch(render, id string, req request, phase dmclock.Phase) {
	if render == "live" {
		return
	}
	fmt.Fprintf(os.Stderr, "dispatch client=%s seq=%d id=%s phase=%s\n", id, req.seq, req.id, phase)
}

// seedDefaultRegistry populates a small demo fleet when the registry
// file is empty, so `dmclockd -config config.yaml` works out of the box.
func seedDefaultRegistry(reg *registry.Registry) {
	reg.Put(registry.ClientProfile{ID: "reserved-a", Reservation: 100, Weight: 1, Limit: 200, Class: dmclock.ClassReservation})
	reg.Put(registry.ClientProfile{ID: "area-a", Weight: 2, Class: dmclock.ClassArea})
	reg.Put(registry.ClientProfile{ID: "area-b", Weight: 1, Class: dmclock.ClassArea})
	reg.Put(registry.ClientProfile{ID: "burst-a", Weight: 1, Limit: 50, Class: dmclock.ClassBurst})
}
