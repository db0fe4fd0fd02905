package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/parameter"
)

// ClockScheduler runs the system pipeline on a fixed tick.
// A tick snapshots input, runs every system in priority order, then dispatches the tick's events,
// all under the world update lock.
type ClockScheduler struct {
	world  *World
	clock  Clock
	logger *zap.Logger

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the frontend that a tick finished; never blocks
	updateDone chan struct{}

	eventRouter *event.Router[*World]

	// Cached metric pointers
	statTicks   *atomic.Int64
	statEvents  *atomic.Int64
	statDropped *atomic.Int64
}

// NewClockScheduler creates a scheduler with the given tick interval.
// Returns the scheduler and a channel receiving a signal after each tick.
func NewClockScheduler(world *World, clock Clock, tickInterval time.Duration, logger *zap.Logger) (*ClockScheduler, <-chan struct{}) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tickInterval <= 0 {
		tickInterval = time.Second / parameter.DefaultTickRate
	}
	updateDone := make(chan struct{}, 1)
	reg := world.Resources.Status

	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		logger:       logger.Named("scheduler"),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		eventRouter:  event.NewRouter[*World](world.Resources.Events),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEvents:   reg.Ints.Get("engine.events"),
		statDropped:  reg.Ints.Get("engine.events_dropped"),
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler[*World]) {
	cs.eventRouter.Register(handler)
}

// TickInterval returns the fixed tick length
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs n ticks synchronously, ignoring wall time
func (cs *ClockScheduler) Step(n int) {
	for i := 0; i < n; i++ {
		cs.processTick()
	}
}

// Start begins the scheduler loop; it stops on Stop() or when ctx is done
func (cs *ClockScheduler) Start(ctx context.Context) {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(func() { cs.schedulerLoop(ctx) })
		cs.logger.Debug("started", zap.Duration("interval", cs.tickInterval))
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
			cs.logger.Debug("stopped", zap.Uint64("ticks", cs.tickCount.Load()))
		}
	})
}

func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		if !now.Before(deadline) {
			cs.processTick()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Drop backlog instead of bursting to catch up
			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*parameter.MaxTicksBehind {
				cs.logger.Debug("tick backlog dropped", zap.Duration("behind", now.Sub(cs.nextTickDeadline)))
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}

		sleep := deadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	var dispatched int
	var dropped uint64
	cs.world.RunSafe(func() {
		res := cs.world.Resources
		tick := cs.tickCount.Add(1)
		res.Time.Update(cs.clock.Now(), cs.tickInterval, tick)

		// Systems see one consistent input view; edges and motion are consumed here
		snapshot := res.Input.Snapshot()
		res.Input.EndTick()

		cs.world.UpdateLocked(NewTickContext(cs.world, cs.tickInterval, tick, snapshot))

		dispatched = cs.eventRouter.DispatchAll(cs.world)
		dropped = res.Events.Dropped()
	})

	cs.statTicks.Store(int64(cs.tickCount.Load()))
	if dispatched > 0 {
		cs.statEvents.Add(int64(dispatched))
	}
	if prev := cs.statDropped.Swap(int64(dropped)); int64(dropped) > prev {
		cs.logger.Warn("events dropped", zap.Uint64("total", dropped))
	}
}
