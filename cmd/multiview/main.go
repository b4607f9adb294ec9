package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tvwall/multiview/pkg/db"
	"github.com/tvwall/multiview/pkg/handler"
	"github.com/tvwall/multiview/pkg/live"
	"github.com/tvwall/multiview/pkg/model"
	"github.com/tvwall/multiview/pkg/monitor"
	"github.com/tvwall/multiview/pkg/server"
	"github.com/tvwall/multiview/pkg/stats"
	"github.com/tvwall/multiview/pkg/wall"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" default:"config.toml" env:"MULTIVIEW_CONFIG_PATH"`
	Debug      bool   `long:"debug"`
	NoBanner   bool   `long:"no-banner"`
}

const banner = `
                 _ _   _       _               
 _ __ ___  _   _| | |_(_)_   _(_) _____      __
| '_ ` + "`" + ` _ \| | | | | __| \ \ / / |/ _ \ \ /\ / /
| | | | | | |_| | | |_| |\ V /| |  __/\ V  V / 
|_| |_| |_|\__,_|_|\__|_| \_/ |_|\___| \_/\_/  
`

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if !opts.NoBanner {
		log.Info(banner)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running multiview")

	// Load TOML file
	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	if cfg.Log.Filename != "" {
		log.Infof("writing logs to %s", cfg.Log.Filename)
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
	}

	database, err := db.NewBadger(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	defer func() {
		if err := database.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	if ver, err := database.Version(); err != nil {
		log.WithError(err).Fatal("failed to read database version")
	} else if ver != db.CurrentVersion {
		log.Fatalf("unsupported database version %d (expected %d)", ver, db.CurrentVersion)
	}

	resolver := live.New(cfg.Resolver)

	var recorder monitor.Recorder

	// Nil interface keeps /api/stats disabled.
	var counters interface {
		Get(metric, channelID string) (int64, error)
		Top(metric string, n int64) (map[string]int64, error)
	}

	if cfg.Stats.RedisURL != "" {
		redisStats, err := stats.NewRedisStats(cfg.Stats.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}

		defer redisStats.Close()
		recorder = redisStats
		counters = redisStats
	}

	// Nil interface keeps /api/status disabled.
	var status interface {
		Snapshot() map[string]model.Status
		Status(channelID string) (model.Status, bool)
		LastRun() time.Time
	}

	if cfg.Monitor.Enabled() {
		ids := wall.LiveCheckIDs(wall.DefaultCatalog())
		mon := monitor.New(cfg.Monitor, resolver, recorder, ids)
		status = mon

		group.Go(func() error {
			return mon.Start(ctx)
		})
	}

	// Run web server
	srv := server.New(cfg.Server, handler.New(resolver, database, status, counters, handler.Opts{
		SessionSecret:    cfg.Server.SessionSecret,
		BatchConcurrency: cfg.Monitor.Concurrency,
	}))

	group.Go(func() error {
		log.Infof("running listener at %s", srv.Addr)
		return srv.ListenAndServe()
	})

	group.Go(func() error {
		// Shutdown web server
		defer func() {
			log.Info("shutting down web server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("server shutdown failed")
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil && (err != context.Canceled && err != http.ErrServerClosed) {
		log.WithError(err).Error("wait error")
	}

	log.Info("gracefully stopped")
}
