package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cookiestore/cart"
	"cookiestore/catalog"
	"cookiestore/controllers"
	"cookiestore/middleware"
	"cookiestore/models"
	"cookiestore/routes"
	"cookiestore/session"
	"cookiestore/utils"
)

// env wires a full router over fresh state, with zero simulated latency.
type env struct {
	router   *mux.Router
	sessions *session.Store
	toasts   *utils.ToastService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	toasts := utils.NewToastService(zap.NewNop())
	sessions := session.NewStore(session.NewMemoryStorage(), 0, 0)
	carts := cart.NewStore(toasts)

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewUserController(sessions, toasts),
		controllers.NewProductController(catalog.SampleProducts),
		controllers.NewCartController(carts, catalog.SampleProducts),
		controllers.NewAdminController(catalog.SampleProducts, toasts),
		controllers.NewNotificationController(toasts),
	)
	router.Use(middleware.Session(sessions))

	return &env{router: router, sessions: sessions, toasts: toasts}
}

// doAs performs a request under the given shopping-session cookie.
func (e *env) doAs(t *testing.T, sessionID, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rdr)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *env) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	return e.doAs(t, "test-session", method, target, body)
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}

func (e *env) loginAdmin(t *testing.T) {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    session.AdminEmail,
		"password": session.AdminPassword,
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

// Shared response shapes.

type productListResponse struct {
	Products []models.Product `json:"products"`
	Shown    int              `json:"shown"`
	Total    int              `json:"total"`
}

type cartResponse struct {
	Items  []models.CartLine  `json:"items"`
	Count  int                `json:"count"`
	Totals models.OrderTotals `json:"totals"`
}

type authResponse struct {
	User     models.SessionRecord `json:"user"`
	Redirect string               `json:"redirect"`
}

type errorResponse struct {
	Errors map[string]string `json:"errors"`
}
