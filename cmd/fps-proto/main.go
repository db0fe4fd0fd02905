package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/fps-proto/audio"
	"github.com/lixenwraith/fps-proto/config"
	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/logger"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/render"
	"github.com/lixenwraith/fps-proto/scene"
	"github.com/lixenwraith/fps-proto/system"
	"github.com/lixenwraith/fps-proto/terminal"
	"github.com/lixenwraith/fps-proto/vmath"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to YAML config")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+logger.DefaultFile)
)

func main() {
	flag.Parse()
	if err := run(*configFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "fps-proto: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Debug:  debug,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()
	log = log.With(zap.String("session", uuid.NewString()))
	log.Info("starting", zap.String("config", configPath), zap.Int("tick_rate", cfg.Sim.TickRate))

	world, scheduler, updateDone, err := newSimulation(cfg, log, engine.NewTimeProvider())
	if err != nil {
		return err
	}

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			world.Resources.Audio = &engine.AudioResource{Player: sm}
			defer sm.Cleanup()
		}
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(ctx)
	defer scheduler.Stop()

	loop(ctx, screen, world, cfg, updateDone)
	scheduler.Stop()

	var fields []zap.Field
	world.Resources.Status.Each(func(key, value string) {
		fields = append(fields, zap.String(key, value))
	})
	log.Info("stopped", fields...)
	return nil
}

// newSimulation spawns the scene and player and wires the system pipeline
func newSimulation(cfg *config.Config, log *zap.Logger, clock engine.Clock) (*engine.World, *engine.ClockScheduler, <-chan struct{}, error) {
	mode, ok := system.ParseMovementMode(cfg.Movement.Mode)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownMode, cfg.Movement.Mode)
	}

	world := engine.NewWorld()
	world.Resources.Status.Strings.Get("movement.mode").Store(mode.String())
	scene.SpawnEnvironment(world)
	player := scene.SpawnPlayer(world, scene.PlayerOptions{
		Sensitivity: vmath.Vec2F{X: cfg.Player.Sensitivity.Yaw, Y: cfg.Player.Sensitivity.Pitch},
		Speed:       cfg.Player.Speed,
	})
	log.Debug("scene spawned", zap.Int("entities", world.EntityCount()), zap.Uint64("player", uint64(player)))

	world.AddSystem(system.NewCursorSystem(world))
	world.AddSystem(system.NewLookSystem(world))
	world.AddSystem(system.NewMovementSystem(world, system.MovementOptions{
		Mode:              mode,
		Damping:           cfg.Movement.Damping,
		TimeScaledDamping: cfg.Movement.TimeScaledDamping,
	}))
	world.AddSystem(system.NewPhysicsSystem(world))
	world.AddSystem(system.NewStatusSystem(world))

	scheduler, updateDone := engine.NewClockScheduler(world, clock, cfg.TickInterval(), log)
	scheduler.RegisterEventHandler(system.NewAudioHandler(world))
	scheduler.RegisterEventHandler(system.NewLogHandler(log))

	return world, scheduler, updateDone, nil
}

// loop feeds terminal input into the world and redraws until quit or ctx is done
func loop(ctx context.Context, screen tcell.Screen, world *engine.World, cfg *config.Config, updateDone <-chan struct{}) {
	translator := terminal.NewTranslator(terminal.Options{
		InitialHoldWindow: cfg.Input.InitialHoldWindow,
		HoldWindow:        cfg.Input.HoldWindow,
		MouseCellScale:    cfg.Input.MouseCellScale,
		ArrowLookStep:     cfg.Input.ArrowLookStep,
	})
	renderer := render.NewTerminalRenderer(screen, world)

	events := make(chan tcell.Event, 256)
	core.Go(func() { terminal.PollEvents(screen, events) })

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			var action terminal.Action
			world.RunSafe(func() {
				action = translator.Apply(ev, world.Resources.Input, world.Resources.Cursor.Captured, time.Now())
			})
			switch action {
			case terminal.ActionQuit:
				return
			case terminal.ActionResize:
				renderer.Resize()
				screen.Sync()
			}

		case <-updateDone:
			world.RunSafe(func() {
				translator.Expire(world.Resources.Input, time.Now())
			})

		case <-frameTicker.C:
			world.RunSafe(renderer.RenderFrame)
		}
	}
}
