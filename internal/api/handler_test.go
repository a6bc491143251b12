package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/internal/chart"
	"github.com/guttosm/awardpulse/internal/domain/dto"
	"github.com/guttosm/awardpulse/internal/domain/models"
	"github.com/guttosm/awardpulse/internal/service"
)

type mockDashboardService struct {
	catalog []models.Sector
	series  *models.AggregatedSeries
	err     error
	pngErr  error

	gotSelectAll bool
	gotExplicit  []string
	gotSelection []string
}

func (m *mockDashboardService) Catalog() []models.Sector { return m.catalog }

func (m *mockDashboardService) Select(selectAll bool, explicit []string) []string {
	m.gotSelectAll, m.gotExplicit = selectAll, explicit
	names := make([]string, 0, len(m.catalog))
	for _, s := range m.catalog {
		names = append(names, s.Name)
	}
	return service.ResolveSelection(names, selectAll, explicit)
}

func (m *mockDashboardService) Series(_ context.Context, sel []string) (*models.AggregatedSeries, error) {
	m.gotSelection = sel
	return m.series, m.err
}

func (m *mockDashboardService) Chart(ctx context.Context, sel []string) (*models.ChartSpec, error) {
	s, err := m.Series(ctx, sel)
	if err != nil {
		return nil, err
	}
	return chart.Render(s, chart.Options{}), nil
}

func (m *mockDashboardService) ChartPNG(_ context.Context, sel []string, w io.Writer) error {
	m.gotSelection = sel
	if m.pngErr != nil {
		return m.pngErr
	}
	_, err := w.Write([]byte("\x89PNG fake"))
	return err
}

func (m *mockDashboardService) Ready() bool { return m.catalog != nil }

var _ service.DashboardService = (*mockDashboardService)(nil)

func newMock() *mockDashboardService {
	return &mockDashboardService{
		catalog: []models.Sector{
			{Name: "Construction", Label: "Construction", Complete: true},
			{Name: "Information_Technology", Label: "Information Technology", Complete: true},
		},
		series: &models.AggregatedSeries{
			Months:  []string{"Oct", "Nov"},
			Awards:  []int64{5, 1234},
			Dollars: []float64{100, 2500},
			Sectors: []string{"Construction"},
		},
	}
}

func setupRouterWithMock(s service.DashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, "Awards")
	r := gin.New()
	r.SetHTMLTemplate(pageTemplates())
	r.GET("/", h.Index)
	r.GET("/chart.png", h.GetChartPNG)
	v1 := r.Group("/api/v1")
	v1.GET("/sectors", h.GetSectors)
	v1.GET("/selection", h.GetSelection)
	v1.GET("/series", h.GetSeries)
	v1.GET("/chart", h.GetChart)
	return r
}

func TestParseSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		query   string
		all     bool
		sectors []string
		wantErr bool
	}{
		{query: "", all: false, sectors: nil},
		{query: "all=ALL", all: true},
		{query: "all=all", all: true},
		{query: "all=true&sector=A", all: true, sectors: []string{"A"}},
		{query: "all=0&sector=B&sector=A&sector=B", all: false, sectors: []string{"B", "A", "B"}},
		{query: "all=maybe", wantErr: true},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)

		q, err := parseSelection(c)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.query)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected err %v", tc.query, err)
		}
		if q.SelectAll != tc.all || len(q.Sectors) != len(tc.sectors) {
			t.Fatalf("%q: got %+v", tc.query, q)
		}
		for i := range tc.sectors {
			if q.Sectors[i] != tc.sectors[i] {
				t.Fatalf("%q: got %+v", tc.query, q)
			}
		}
	}
}

func TestHandlers_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    func() *mockDashboardService
		query  string
		status int
		assert func(t *testing.T, m *mockDashboardService, w *httptest.ResponseRecorder)
	}{
		{
			name:   "sectors",
			svc:    newMock,
			query:  "/api/v1/sectors",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				var out dto.SectorsResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Sectors) != 2 || out.Sectors[1].Label != "Information Technology" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "select all overrides explicit list",
			svc:    newMock,
			query:  "/api/v1/selection?all=ALL&sector=Bogus",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				var out dto.SelectionResponse
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if !out.SelectAll || !reflect.DeepEqual(out.Sectors, []string{"Construction", "Information_Technology"}) {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "explicit selection is identity",
			svc:    newMock,
			query:  "/api/v1/selection?sector=Bogus&sector=Construction",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				var out dto.SelectionResponse
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.SelectAll || !reflect.DeepEqual(out.Sectors, []string{"Bogus", "Construction"}) {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "empty selection encodes as empty list",
			svc:    newMock,
			query:  "/api/v1/selection",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), `"sectors":[]`) {
					t.Fatalf("unexpected body: %s", w.Body.String())
				}
			},
		},
		{
			name:   "invalid all",
			svc:    newMock,
			query:  "/api/v1/series?all=maybe",
			status: http.StatusBadRequest,
			assert: func(t *testing.T, m *mockDashboardService, w *httptest.ResponseRecorder) {
				var out dto.ErrorResponse
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.Message != "invalid all parameter" || out.ErrorDetails == "" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if m.gotSelection != nil {
					t.Fatalf("service must not be called on bad input")
				}
			},
		},
		{
			name:   "series",
			svc:    newMock,
			query:  "/api/v1/series?sector=Construction",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockDashboardService, w *httptest.ResponseRecorder) {
				var out models.AggregatedSeries
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if !reflect.DeepEqual(out.Awards, []int64{5, 1234}) || !reflect.DeepEqual(m.gotSelection, []string{"Construction"}) {
					t.Fatalf("unexpected: body=%+v selection=%v", out, m.gotSelection)
				}
			},
		},
		{
			name: "series timeout",
			svc: func() *mockDashboardService {
				m := newMock()
				m.err = context.DeadlineExceeded
				return m
			},
			query:  "/api/v1/series",
			status: http.StatusServiceUnavailable,
		},
		{
			name: "chart internal error",
			svc: func() *mockDashboardService {
				m := newMock()
				m.err = errors.New("boom")
				return m
			},
			query:  "/api/v1/chart",
			status: http.StatusInternalServerError,
		},
		{
			name:   "chart",
			svc:    newMock,
			query:  "/api/v1/chart?all=true",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				var out dto.ChartResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Selection.SelectAll || len(out.Selection.Sectors) != 2 {
					t.Fatalf("unexpected selection: %+v", out.Selection)
				}
				if len(out.Figure.Data) != 2 || !reflect.DeepEqual(out.Figure.Data[0].Text, []string{"5", "1,234"}) {
					t.Fatalf("unexpected figure: %+v", out.Figure.Data)
				}
				if !reflect.DeepEqual(out.Figure.Data[1].Text, []string{"$100", "$2,500"}) {
					t.Fatalf("unexpected dollar labels: %v", out.Figure.Data[1].Text)
				}
			},
		},
		{
			name:   "png",
			svc:    newMock,
			query:  "/chart.png?all=ALL",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				if ct := w.Header().Get("Content-Type"); ct != "image/png" {
					t.Fatalf("content-type %q", ct)
				}
			},
		},
		{
			name: "png empty",
			svc: func() *mockDashboardService {
				m := newMock()
				m.pngErr = chart.ErrEmptyChart
				return m
			},
			query:  "/chart.png",
			status: http.StatusNoContent,
		},
		{
			name:   "index page",
			svc:    newMock,
			query:  "/",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockDashboardService, w *httptest.ResponseRecorder) {
				body := w.Body.String()
				for _, want := range []string{"<h1>Awards</h1>", `id="select-all-checkbox"`, `value="Information_Technology"`, "Information Technology</label>"} {
					if !strings.Contains(body, want) {
						t.Fatalf("page missing %q", want)
					}
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.svc()
			r := setupRouterWithMock(m)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("want %d got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, m, w)
			}
		})
	}
}
