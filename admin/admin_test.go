// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package admin

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	ts := httptest.NewServer(HTTPHandler(lvl))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/admin/loglevel")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp logLevelResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "INFO", resp.CurrentLevel)
}

func TestPostLogLevel(t *testing.T) {
	lvl := new(slog.LevelVar)
	ts := httptest.NewServer(HTTPHandler(lvl))
	defer ts.Close()

	body, _ := json.Marshal(logLevelRequest{Level: "debug"})
	res, err := http.Post(ts.URL+"/admin/loglevel", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, slog.LevelDebug, lvl.Level())

	// unknown levels are rejected and leave the level alone
	body, _ = json.Marshal(logLevelRequest{Level: "loud"})
	res, err = http.Post(ts.URL+"/admin/loglevel", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, slog.LevelDebug, lvl.Level())
}
