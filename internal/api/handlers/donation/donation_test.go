package donation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"grocery-genius/internal/core/donation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImpact struct {
	resp *donation.ImpactResponse
	err  error
	got  []donation.Item
}

func (f *fakeImpact) CalculateImpact(ctx context.Context, items []donation.Item) (*donation.ImpactResponse, error) {
	f.got = items
	return f.resp, f.err
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/donations/estimate", h.HandleEstimate)
	r.POST("/donations/suggest", h.HandleSuggest)
	r.GET("/donations/food-banks", h.HandleFoodBanks)
	r.GET("/donations/food-banks/:id", h.HandleFoodBank)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const estimateBody = `{"items":[{"name":"rice","quantity":2,"unit":"lbs"},{"name":"canned corn","quantity":3,"unit":"pc"}]}`

func decodeEstimate(t *testing.T, w *httptest.ResponseRecorder) EstimateResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleEstimate_Local(t *testing.T) {
	r := newRouter(NewHandler(donation.NewEstimator(nil), nil))

	resp := decodeEstimate(t, do(r, http.MethodPost, "/donations/estimate", estimateBody))
	assert.Equal(t, donation.SourceLocal, resp.Source)
	require.Len(t, resp.Items, 2)
	assert.InDelta(t, 16, resp.Items[0].Meals, 1e-9)
	assert.InDelta(t, 7.6, resp.Items[0].CO2Lbs, 1e-9)
	assert.InDelta(t, 6, resp.Items[1].Meals, 1e-9)
	assert.InDelta(t, 22, resp.Totals.Meals, 1e-9)
	assert.InDelta(t, 3.5, resp.Totals.Pounds, 1e-9)
	assert.InDelta(t, 3.5*donation.CO2PerPound, resp.Totals.CO2Lbs, 1e-9)
}

func TestHandleEstimate_RemoteMerged(t *testing.T) {
	impact := &fakeImpact{resp: &donation.ImpactResponse{
		ItemsBreakdown: []donation.BreakdownItem{
			{Name: "Rice", Meals: 20, Pounds: 2, Reasoning: "bulk grain"},
			{Name: "Corn", Meals: 4, Pounds: 1},
		},
	}}
	r := newRouter(NewHandler(donation.NewEstimator(nil), impact))

	resp := decodeEstimate(t, do(r, http.MethodPost, "/donations/estimate", estimateBody))
	assert.Equal(t, donation.SourceRemote, resp.Source)
	assert.Len(t, impact.got, 2)
	assert.InDelta(t, 20, resp.Items[0].Meals, 1e-9)
	assert.Equal(t, "bulk grain", resp.Items[0].Reasoning)
	assert.InDelta(t, 4, resp.Items[1].Meals, 1e-9, "equal lengths merge by index")
	assert.InDelta(t, 24, resp.Totals.Meals, 1e-9)
}

func TestHandleEstimate_RemoteFailureFallsBack(t *testing.T) {
	impact := &fakeImpact{err: errors.New("connection refused")}
	r := newRouter(NewHandler(donation.NewEstimator(nil), impact))

	resp := decodeEstimate(t, do(r, http.MethodPost, "/donations/estimate", estimateBody))
	assert.Equal(t, donation.SourceLocal, resp.Source)
	assert.InDelta(t, 22, resp.Totals.Meals, 1e-9)
}

func TestHandleEstimate_NoItems(t *testing.T) {
	r := newRouter(NewHandler(donation.NewEstimator(nil), nil))

	w := do(r, http.MethodPost, "/donations/estimate", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "items are required")
}

func TestHandleSuggest(t *testing.T) {
	h := NewHandler(donation.NewEstimator(nil), nil)
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	r := newRouter(h)

	body := `{"pantry":[
		{"name":"rice","quantity":2,"unit":"lbs","expiry_date":"2024-05-03"},
		{"name":"pasta","quantity":1,"unit":"lbs","expiry_date":"2024-05-10"},
		{"name":"bread","quantity":1,"unit":"pc"},
		{"name":"milk","quantity":1,"unit":"pc","expiry_date":"2024-04-30"}
	]}`
	w := do(r, http.MethodPost, "/donations/suggest", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []Suggestion    `json:"suggestions"`
		Totals      donation.Totals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "rice", resp.Suggestions[0].Item.Name)
	assert.NotEmpty(t, resp.Suggestions[0].Item.ID)
	assert.Equal(t, 2, resp.Suggestions[0].DaysLeft)
	assert.InDelta(t, 16, resp.Totals.Meals, 1e-9)
}

func TestHandleFoodBanks(t *testing.T) {
	r := newRouter(NewHandler(donation.NewEstimator(nil), nil))

	w := do(r, http.MethodGet, "/donations/food-banks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		FoodBanks []donation.FoodBank `json:"food_banks"`
		Count     int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(donation.FoodBanks()), resp.Count)

	w = do(r, http.MethodGet, "/donations/food-banks/"+resp.FoodBanks[0].ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/donations/food-banks/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
