package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/cache"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/events"
	"github.com/printadmin/storformat/internal/pkg/store"
	"github.com/printadmin/storformat/internal/service/storformat"
	"github.com/spf13/viper"
)

const testSecret = "s3cret"

// catalogStub serves a single material; other Store methods are not reached by these tests.
type catalogStub struct {
	store.Store
}

func (catalogStub) GetMaterial(_ context.Context, id string) (*domain.Material, error) {
	if id != "banner" {
		return nil, constants.ErrDBNotFound
	}
	to := 1.0
	return &domain.Material{
		ID:   "banner",
		Name: "Banner",
		Pricing: domain.PerArea{Tiers: []domain.Tier{
			{FromAreaM2: 0, ToAreaM2: &to, PricePerM2: 100},
			{FromAreaM2: 1, PricePerM2: 80},
		}},
	}, nil
}

func (catalogStub) GetConfig(context.Context) (*domain.Config, error) {
	return &domain.Config{RoundingStepKr: 5}, nil
}

func newTestAPI(t *testing.T) *APIService {
	t.Helper()
	viper.Reset()
	viper.Set(constants.ViperSecretKey, testSecret)
	t.Cleanup(viper.Reset)

	svc := storformat.NewStorformatService(catalogStub{}, cache.NewMemory(time.Minute), events.NopPublisher{}, domain.Config{RoundingStepKr: 1})
	api, err := NewAPIService(svc)
	if err != nil {
		t.Fatalf("NewAPIService: %v", err)
	}
	return api
}

func do(api *APIService, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func TestCalculate(t *testing.T) {
	api := newTestAPI(t)

	body := `{"width_mm":1000,"height_mm":1000,"quantity":2,
		"material":{"name":"Banner","tiers":[{"from_area_m2":0,"price_per_m2":100}],"markup_pct":10},
		"config":{"rounding_step_kr":1,"global_markup_pct":0}}`
	rec := do(api, http.MethodPost, "/api/v1/storformat/calculate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res domain.PriceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.TotalPrice != 220 {
		t.Fatalf("total_price = %v, want 220", res.TotalPrice)
	}
}

func TestCalculate_ErrorCodes(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"width_mm":`, want: http.StatusBadRequest},
		{name: "no material", body: `{"width_mm":10,"height_mm":10,"quantity":1}`, want: http.StatusBadRequest},
		{name: "zero quantity", body: `{"width_mm":10,"height_mm":10,"quantity":0,"material":{"name":"m"}}`, want: http.StatusBadRequest},
		{
			name: "oversize without split",
			body: `{"width_mm":3000,"height_mm":10,"quantity":1,"material":{"name":"m","max_width_mm":1000}}`,
			want: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(api, http.MethodPost, "/api/v1/storformat/calculate", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
			var resp domain.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Code != tt.want {
				t.Fatalf("error body = %s", rec.Body.String())
			}
		})
	}
}

func TestQuote(t *testing.T) {
	api := newTestAPI(t)

	rec := do(api, http.MethodPost, "/api/v1/storformat/quote", `{"material_id":"banner","width_mm":1500,"height_mm":1000,"quantity":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res domain.PriceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 1.5 m² at 80 kr = 120
	if res.TotalPrice != 120 {
		t.Fatalf("total_price = %v, want 120", res.TotalPrice)
	}

	rec = do(api, http.MethodPost, "/api/v1/storformat/quote", `{"material_id":"paper","width_mm":10,"height_mm":10,"quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown material status = %d", rec.Code)
	}
}

func TestQuoteTable_Validates(t *testing.T) {
	api := newTestAPI(t)

	rec := do(api, http.MethodPost, "/api/v1/storformat/quote/table", `{"material_id":"banner","sizes":[],"quantities":[1]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = do(api, http.MethodPost, "/api/v1/storformat/quote/table",
		`{"material_id":"banner","sizes":[{"width_mm":1000,"height_mm":1000}],"quantities":[1,2]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAdmin_RequiresToken(t *testing.T) {
	api := newTestAPI(t)

	if rec := do(api, http.MethodGet, "/api/v1/storformat/admin/config", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", rec.Code)
	}

	if rec := do(api, http.MethodPost, "/api/v1/storformat/admin/login", `{"secret":"wrong"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", rec.Code)
	}

	login := do(api, http.MethodPost, "/api/v1/storformat/admin/login", `{"secret":"`+testSecret+`"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", login.Code, login.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == constants.CookieKeySecretToken {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login did not set the admin cookie")
	}

	rec := do(api, http.MethodGet, "/api/v1/storformat/admin/config", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("config status = %d, body %s", rec.Code, rec.Body.String())
	}
	var cfg domain.Config
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil || cfg.RoundingStepKr != 5 {
		t.Fatalf("config body = %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	if rec := do(api, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
