package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"comissiona/internal/cache"
	"comissiona/internal/config"
	"comissiona/internal/database"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &config.Config{SessionSecret: "s"})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodPost + " /api/auth/logout",
		http.MethodPost + " /api/proposals",
		http.MethodGet + " /api/proposals",
		http.MethodGet + " /api/proposals/:id",
		http.MethodPut + " /api/proposals/:id",
		http.MethodDelete + " /api/proposals/:id",
		http.MethodPost + " /api/commissions",
		http.MethodGet + " /api/commissions",
		http.MethodGet + " /api/commissions/users/:user_id",
		http.MethodPut + " /api/commissions/:id",
		http.MethodDelete + " /api/commissions/:id",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:user_id",
		http.MethodPatch + " /api/users/:user_id/role",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
