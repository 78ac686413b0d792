// Command dining 运行哲学家就餐仿真
//
// 无参数即可运行（5 个哲学家各吃 3 轮）。参数来自命令行标志、
// DINING_* 环境变量或 --config 指定的 YAML 文件，优先级依次降低。
// 正常跑完退出码为 0，启动或校验失败退出码为 1。
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251215-go-pkg-dining/pkg/dining"
)

func main() {
	cmd := newCommand()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dining:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "dining",
		Usage: "simulate dining philosophers around a ring of shared forks",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "seats",
				Usage:   "number of philosophers (>= 3, odd when courses > 0)",
				Value:   5,
				Sources: cli.EnvVars("DINING_SEATS"),
			},
			&cli.IntFlag{
				Name:    "courses",
				Usage:   "courses per philosopher, 0 runs until interrupted",
				Value:   3,
				Sources: cli.EnvVars("DINING_COURSES"),
			},
			&cli.IntFlag{
				Name:    "min-delay",
				Usage:   "minimum think/eat delay in units",
				Value:   2,
				Sources: cli.EnvVars("DINING_MIN_DELAY"),
			},
			&cli.IntFlag{
				Name:    "max-delay",
				Usage:   "maximum think/eat delay in units",
				Value:   5,
				Sources: cli.EnvVars("DINING_MAX_DELAY"),
			},
			&cli.DurationFlag{
				Name:    "unit",
				Usage:   "delay unit",
				Value:   100 * time.Millisecond,
				Sources: cli.EnvVars("DINING_UNIT"),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "deterministic random seed, 0 seeds from the clock",
				Sources: cli.EnvVars("DINING_SEED"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("DINING_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress the per-event console stream",
			},
			&cli.BoolFlag{
				Name:  "json-log",
				Usage: "emit events as JSON structured logs instead of plain lines",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := defaultFileConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := loadFileConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// 命令行显式给出的参数覆盖配置文件
	if cmd.IsSet("seats") {
		cfg.Seats = int(cmd.Int("seats"))
	}
	if cmd.IsSet("courses") {
		cfg.Courses = int(cmd.Int("courses"))
	}
	if cmd.IsSet("min-delay") {
		cfg.MinDelay = int(cmd.Int("min-delay"))
	}
	if cmd.IsSet("max-delay") {
		cfg.MaxDelay = int(cmd.Int("max-delay"))
	}
	if cmd.IsSet("unit") {
		cfg.Unit = cmd.Duration("unit").String()
	}
	if cmd.IsSet("seed") {
		cfg.Seed = int64(cmd.Int("seed"))
	}

	unit, err := time.ParseDuration(cfg.Unit)
	if err != nil {
		return fmt.Errorf("invalid delay unit %q: %w", cfg.Unit, err)
	}

	var logger *slog.Logger
	if cmd.Bool("json-log") {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	var sink dining.EventSink
	switch {
	case cmd.Bool("quiet"):
		sink = nil
	case cmd.Bool("json-log"):
		sink = dining.NewSlogSink(logger)
	default:
		sink = dining.NewConsoleSink(os.Stdout)
	}

	opts := []dining.Option{
		dining.WithSeats(cfg.Seats),
		dining.WithCourses(cfg.Courses),
		dining.WithDelayRange(cfg.MinDelay, cfg.MaxDelay, unit),
		dining.WithLogger(logger),
		dining.WithSink(sink),
	}
	if cfg.Seed != 0 {
		opts = append(opts, dining.WithSeed(cfg.Seed))
	}

	table, err := dining.New(opts...)
	if err != nil {
		return err
	}

	if err := table.Run(ctx); err != nil {
		return err
	}

	snap := table.Stats()
	logger.Info("dinner summary",
		"table", table.ID(),
		"seats", table.Seats(),
		"courses_served", snap.CoursesServed,
		"grants_denied", snap.GrantsDenied,
		"elapsed", snap.Elapsed)
	return nil
}
