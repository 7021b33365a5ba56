// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/stakemint/mintd/api/staking"
	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/metrics"
	"github.com/stakemint/mintd/minter"
	"github.com/stakemint/mintd/wallet"
)

// New returns the api http handler.
func New(
	c chain.Chain,
	w wallet.Wallet,
	unlock *wallet.UnlockManager,
	m *minter.Minter,
	clk minter.Clock,
	allowedOrigins []string,
	enableMetrics bool,
) http.Handler {
	router := mux.NewRouter()
	staking.New(c, w, unlock, m, clk).Mount(router, "/staking")
	if enableMetrics {
		router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	}

	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
	)(handlers.CompressHandler(router))
}
