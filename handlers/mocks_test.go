package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/middleware"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const testUserID = "user-123"

func storeNotFound() error { return store.ErrNotFound }

// mockPeriodStore implements store.PeriodStore for handler tests.
type mockPeriodStore struct {
	mock.Mock
}

func (m *mockPeriodStore) CreatePeriod(ctx context.Context, period *types.WeeklyPeriod) (string, error) {
	args := m.Called(ctx, period)
	return args.String(0), args.Error(1)
}

func (m *mockPeriodStore) GetPeriod(ctx context.Context, id string) (*types.WeeklyPeriod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyPeriod), args.Error(1)
}

func (m *mockPeriodStore) ListPeriodsByUser(ctx context.Context, userID string) ([]*types.WeeklyPeriod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.WeeklyPeriod), args.Error(1)
}

func (m *mockPeriodStore) UpdatePeriod(ctx context.Context, id string, update *types.PeriodUpdate) (*types.WeeklyPeriod, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyPeriod), args.Error(1)
}

func (m *mockPeriodStore) SetActivePeriod(ctx context.Context, userID, periodID string) error {
	args := m.Called(ctx, userID, periodID)
	return args.Error(0)
}

func (m *mockPeriodStore) DeletePeriod(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestRouter builds a gin engine with the error handler and a stub auth
// layer that injects testUserID, mirroring the production middleware chain.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), testUserID)
		c.Next()
	})
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
