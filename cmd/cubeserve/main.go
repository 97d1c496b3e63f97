package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"cubeserve/internal/config"
	"cubeserve/internal/fragment"
	"cubeserve/internal/httpx"
	"cubeserve/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.Port, "port", cfg.Port, "TCP port, all interfaces")
	flag.StringVar(&cfg.Root, "root", cfg.Root, "directory to serve")
	flag.StringVar(&cfg.Fragment, "fragment", cfg.Fragment, "media player fragment, relative to -root")
	flag.StringVar(&cfg.Match, "match", cfg.Match, "test page match: exact or substring")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	pageTmpl, sourceTmpl := httpx.LoadTemplates()
	srv := httpx.NewServer(
		httpx.Config{Root: cfg.Root, Match: cfg.Match},
		fragment.New(cfg.Root, cfg.Fragment),
		log,
		pageTmpl, sourceTmpl,
	)
	if err := srv.Listen(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("start")
	}
	httpx.Banner(os.Stdout, srv.Port())
	log.WithFields(logrus.Fields{
		"root":     cfg.Root,
		"fragment": cfg.Fragment,
		"match":    cfg.Match,
	}).Debug("config")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ch:
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("serve")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
