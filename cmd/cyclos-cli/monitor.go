// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cyclos "github.com/blinklabs-io/gocyclos"
	"github.com/blinklabs-io/gocyclos/cmd/common"
	"github.com/blinklabs-io/gocyclos/metrics"
)

type monitorFlags struct {
	flagset  *flag.FlagSet
	listen   string
	interval time.Duration
}

func newMonitorFlags() *monitorFlags {
	f := &monitorFlags{
		flagset: flag.NewFlagSet("monitor", flag.ExitOnError),
	}
	f.flagset.StringVar(&f.listen, "listen", ":9090", "address to serve /metrics on")
	f.flagset.DurationVar(&f.interval, "interval", time.Minute, "how often to poll account balances")
	return f
}

// runMonitor polls the balances of the given members and exposes them, along
// with the client call metrics, for Prometheus to scrape
func runMonitor(f *common.GlobalFlags) {
	monitorFlags := newMonitorFlags()
	err := monitorFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	usernames := monitorFlags.flagset.Args()
	if len(usernames) < 1 {
		fmt.Printf("ERROR: you must specify at least one username\n")
		os.Exit(1)
	}
	logger := f.Logger()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		fmt.Printf("ERROR: failure registering metrics: %s\n", err)
		os.Exit(1)
	}
	balance := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cyclos",
		Name:      "account_balance",
		Help:      "Last polled account balance",
	}, []string{"username"})
	available := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cyclos",
		Name:      "account_available_balance",
		Help:      "Last polled available account balance",
	}, []string{"username"})
	reg.MustRegister(balance, available)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	l := common.CreateLedger(ctx, f, cyclos.WithMetrics(m))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	server := &http.Server{
		Addr:              monitorFlags.listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "component", "monitor", "error", err)
			stop()
		}
	}()
	logger.Info("serving metrics", "component", "monitor", "address", monitorFlags.listen)

	poll := func() {
		for _, username := range usernames {
			status, err := l.GetAccountStatus(ctx, username)
			if err != nil {
				logger.Warn(
					"failed to poll account status",
					"component", "monitor",
					"username", username,
					"error", err,
				)
				continue
			}
			balance.WithLabelValues(username).Set(status.Balance.Value.InexactFloat64())
			available.WithLabelValues(username).Set(status.AvailableBalance.Value.InexactFloat64())
		}
	}
	poll()
	ticker := time.NewTicker(monitorFlags.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown failed", "component", "monitor", "error", err)
			}
			return
		case <-ticker.C:
			poll()
		}
	}
}
