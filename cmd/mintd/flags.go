// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"time"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for chain databases",
	}
	persistFlag = cli.BoolFlag{
		Name:  "persist",
		Usage: "persist chain state to disk instead of memory",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8668",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	beneficiaryFlag = cli.StringFlag{
		Name:  "beneficiary",
		Usage: "address collecting stake rewards, defaults to the staking output's address",
	}
	reserveFlag = cli.Int64Flag{
		Name:  "reserve",
		Usage: "balance kept liquid and excluded from staking, in micro-coins",
	}
	passphraseFlag = cli.StringFlag{
		Name:  "passphrase",
		Value: "passphrase",
		Usage: "passphrase guarding the dev wallet",
	}
	pollIntervalFlag = cli.DurationFlag{
		Name:  "poll-interval",
		Value: time.Second,
		Usage: "period of the minting housekeeping loop",
	}
	maxSearchIntervalFlag = cli.UintFlag{
		Name:  "max-search-interval",
		Value: 60,
		Usage: "how far back one pass probes block time values, in seconds",
	}
	stakeBitsFlag = cli.UintFlag{
		Name:  "stake-bits",
		Value: 0x207fffff,
		Usage: "compact proof-of-stake target of the solo chain",
	}
	ntpServerFlag = cli.StringFlag{
		Name:  "ntp-server",
		Value: "pool.ntp.org",
		Usage: "NTP server for clock correction, empty to disable",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-4: error, warn, info, debug)",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "export prometheus metrics on /metrics",
	}
	adminAddrFlag = cli.StringFlag{
		Name:  "admin-addr",
		Value: "",
		Usage: "admin API listening address, empty to disable",
	}
)
