package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/database"
	"github.com/adisyonqr/restaurant-app/services"
	"github.com/adisyonqr/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// The engine-wide limiter has to be part of the chain of every route,
// so it is registered inside SetupRouter before the routes are added.
func TestEngineRateLimitsRapidRequests(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:router_ratelimit?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	r := SetupRouter(db, services.NewWebhookDispatcher(db))

	limited := false
	for i := 0; i < 60; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
	assert.True(t, limited, "a rapid burst from one IP should hit the limit")
}
