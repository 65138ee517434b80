package main

import (
	"CorpSite/bot"
	"CorpSite/impl/core"
	"CorpSite/internal/config"
	"CorpSite/internal/countdown"
	"CorpSite/internal/faq"
	"CorpSite/internal/forms"
	"CorpSite/internal/hero"
	"CorpSite/internal/http-server/api"
	"CorpSite/internal/lib/logger"
	"CorpSite/internal/lib/metrics"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/service/inbox"
	"CorpSite/internal/wizard"
	"CorpSite/internal/ws"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
			tgBot = nil
		} else {
			// admins get warnings and errors, not request noise
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelWarn)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
				sl.Secret("api_key", conf.Telegram.ApiKey),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting corpsite", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	mc := metrics.New()

	box := inbox.NewInbox(lg)
	box.SetCounter(mc)
	if tgBot != nil {
		box.SetNotifier(tgBot)
	}
	handler.SetInbox(box)

	engine := wizard.NewEngine(wizard.NewMemoryStorage(conf.Join.SessionTTL), box, lg)
	engine.SetSubmitTimeout(conf.Join.SubmitTimeout)
	engine.SetObserver(mc)
	for _, form := range forms.Catalog() {
		if err := engine.RegisterForm(form); err != nil {
			lg.Error("register form", slog.String("form_id", form.ID), sl.Err(err))
		}
	}
	handler.SetEngine(engine)
	mc.WatchGauge("wizard", "active_sessions", "Wizard sessions held in memory", func() int {
		return engine.Stats().ActiveSessions
	})
	g.Go(func() error {
		engine.RunJanitor(ctx, time.Minute)
		return nil
	})

	catalog, err := faq.Load(conf.Faq.Path)
	if err != nil {
		lg.Error("faq catalog", slog.String("path", conf.Faq.Path), sl.Err(err))
	} else {
		store := faq.NewStore(catalog)
		handler.SetFaq(store)
		lg.With(slog.Int("entries", catalog.Len())).Info("faq catalog loaded")

		if conf.Faq.Path != "" && conf.Faq.Watch {
			watcher := faq.NewWatcher(conf.Faq.Path, store, lg)
			g.Go(func() error {
				if err := watcher.Run(ctx); err != nil {
					lg.Warn("faq watcher stopped", sl.Err(err))
				}
				return nil
			})
		}
	}

	hub := ws.NewHub(lg)
	hub.SetSnapshot(handler.Snapshot)
	handler.SetAudience(hub)
	mc.WatchGauge("ws", "clients", "Connected live-update browsers", hub.Count)
	go hub.Run()

	schedule := hero.Schedule{First: conf.Hero.First, Second: conf.Hero.Second, Fade: conf.Hero.Fade}
	if err = schedule.Validate(); err != nil {
		lg.Error("hero schedule", sl.Err(err))
	} else {
		scheduler := hero.NewScheduler(schedule, hub)
		handler.SetHero(scheduler)
		g.Go(func() error {
			scheduler.Run(ctx)
			return nil
		})
	}

	deadline, err := conf.BootcampDeadline()
	if err != nil {
		lg.Error("bootcamp deadline", sl.Err(err))
	} else if !deadline.IsZero() {
		handler.SetBootcampDeadline(deadline)
		ticker := countdown.NewTicker(deadline, hub)
		g.Go(func() error {
			ticker.Run(ctx)
			return nil
		})
		lg.With(slog.Time("deadline", deadline)).Info("bootcamp countdown started")
	}

	if tgBot != nil {
		tgBot.SetStatusReporter(handler)
		go func() {
			if err := tgBot.Start(); err != nil {
				lg.Error("telegram bot error", sl.Err(err))
			}
		}()
	}

	// *** blocking start with http server ***
	g.Go(func() error {
		return api.New(ctx, conf, lg, handler, hub, mc.Handler())
	})

	if err = g.Wait(); err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Info("service stopped")
}
