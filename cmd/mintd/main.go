// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/stakemint/mintd/admin"
	"github.com/stakemint/mintd/api"
	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/clock"
	"github.com/stakemint/mintd/log"
	"github.com/stakemint/mintd/lvldb"
	"github.com/stakemint/mintd/metrics"
	"github.com/stakemint/mintd/mint"
	"github.com/stakemint/mintd/minter"
	"github.com/stakemint/mintd/wallet"
)

var (
	version   string
	gitCommit string
	logger    = log.WithContext("pkg", "main")
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "mintd",
		Usage:     "Proof-of-stake minting node",
		Copyright: "2025 The StakeMint developers",
		Flags: []cli.Flag{
			dataDirFlag,
			persistFlag,
			apiAddrFlag,
			apiCorsFlag,
			beneficiaryFlag,
			reserveFlag,
			passphraseFlag,
			pollIntervalFlag,
			maxSearchIntervalFlag,
			stakeBitsFlag,
			ntpServerFlag,
			verbosityFlag,
			enableMetricsFlag,
			adminAddrFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	logLevel := initLogger(ctx)
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}
	if addr := ctx.String(adminAddrFlag.Name); addr != "" {
		url, closeFunc, err := admin.StartServer(addr, logLevel)
		if err != nil {
			fatal("start admin server:", err)
		}
		defer closeFunc()
		logger.Info("admin server started", "url", url)
	}

	clk := clock.New()
	if server := ctx.String(ntpServerFlag.Name); server != "" {
		go func() {
			if err := clk.SyncNTP(server); err != nil {
				logger.Warn("ntp sync failed, staying on local clock", "err", err)
			}
		}()
	}

	db, err := openChainDB(ctx)
	if err != nil {
		fatal("open chain database:", err)
	}
	defer func() { logger.Info("closing chain database..."); db.Close() }()

	ch, err := chain.NewSolo(db, uint32(ctx.Uint(stakeBitsFlag.Name)), uint32(clk.Unix()-1))
	if err != nil {
		fatal("init chain:", err)
	}

	w := seedDevWallet(ctx.String(passphraseFlag.Name), clk.Unix())
	if reserve := ctx.Int64(reserveFlag.Name); reserve > 0 {
		w.SetReserveBalance(mint.Amount(reserve))
	}

	unlockMgr := wallet.NewUnlockManager(w)
	defer unlockMgr.Close()

	m := minter.New(ch, w, clk, minter.Options{
		PollInterval:      ctx.Duration(pollIntervalFlag.Name),
		MaxSearchInterval: uint32(ctx.Uint(maxSearchIntervalFlag.Name)),
		Beneficiary:       ctx.String(beneficiaryFlag.Name),
	})
	defer func() { logger.Info("closing minter..."); m.Close() }()

	var origins []string
	if cors := ctx.String(apiCorsFlag.Name); cors != "" {
		origins = strings.Split(cors, ",")
	}
	srv := &http.Server{
		Addr: ctx.String(apiAddrFlag.Name),
		Handler: api.New(ch, w, unlockMgr, m, clk,
			origins, ctx.Bool(enableMetricsFlag.Name)),
	}
	go func() {
		logger.Info("API server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server stopped", "err", err)
		}
	}()
	defer func() {
		logger.Info("stopping API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	best := ch.Best()
	logger.Info("node started",
		"version", fullVersion(),
		"best", best.ID.AbbrevString(),
		"number", best.Number,
	)

	<-handleExitSignal()
	logger.Info("exit signal received")
	return nil
}

func openChainDB(ctx *cli.Context) (*lvldb.LevelDB, error) {
	if !ctx.Bool(persistFlag.Name) {
		return lvldb.NewMem()
	}
	dir := ctx.String(dataDirFlag.Name)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return lvldb.New(filepath.Join(dir, "chain.db"), lvldb.Options{})
}
