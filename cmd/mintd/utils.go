// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/stakemint/mintd/kernel"
	"github.com/stakemint/mintd/log"
	"github.com/stakemint/mintd/mint"
	"github.com/stakemint/mintd/wallet"
)

func fatal(args ...interface{}) {
	fmt.Fprint(os.Stderr, "Fatal: ")
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mintd")
}

func initLogger(ctx *cli.Context) *slog.LevelVar {
	lvl := new(slog.LevelVar)
	switch ctx.Int(verbosityFlag.Name) {
	case 0:
		lvl.Set(slog.LevelError)
	case 1:
		lvl.Set(slog.LevelWarn)
	case 2, 3:
		lvl.Set(slog.LevelInfo)
	default:
		lvl.Set(slog.LevelDebug)
	}
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(slog.New(log.NewTerminalHandler(os.Stderr, lvl, useColor)))
	return lvl
}

func handleExitSignal() <-chan os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	return sig
}

// seedDevWallet builds a locked in-memory wallet holding outputs old enough
// to stake right away, so a fresh solo node has something to mint from once
// unlocked.
func seedDevWallet(passphrase string, now int64) *wallet.MemWallet {
	w := wallet.NewMemWallet(passphrase)
	seeds := []struct {
		tag     string
		ageDays int64
		value   mint.Amount
	}{
		{"dev-tx-0", 35, mint.Amount(1_000 * mint.CoinUnit)},
		{"dev-tx-1", 60, mint.Amount(250 * mint.CoinUnit)},
		{"dev-tx-2", 120, mint.Amount(5_000 * mint.CoinUnit)},
	}
	for i, s := range seeds {
		w.AddTx(&kernel.TxSummary{
			TxID:    mint.Hash256([]byte(s.tag)),
			Time:    now - s.ageDays*mint.OneDay,
			Depth:   100,
			Trusted: true,
			Outputs: []kernel.TxOutput{
				{
					Address: fmt.Sprintf("dev-addr-%d", i),
					Value:   s.value,
					Mine:    true,
				},
			},
		})
	}
	return w
}
