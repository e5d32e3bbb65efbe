package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/betcast/internal/adapters/http/api"
	"github.com/okian/betcast/internal/adapters/source"
	service "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/internal/domain/sample"
	"github.com/okian/betcast/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const sheet = "Εβδομάδα,Ημερομηνίες,Ποντάρισμα,Απόδοση,Αποτέλεσμα,Κέρδος/Ζημιά,✓ / ✗,Σωρευτικό Budget\n" +
	"1,1-7/5/2025,10,\"2,00\",Win,10,✓,110\n" +
	"1,1-7/5/2025,10,\"1,50\",Lose,-10,✗,100\n" +
	"2,8-14/5/2025,10,3,Win,20,✓,120\n"

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newRouter(src source.Source, opts ...api.RouterOption) (http.Handler, *service.Service) {
	svc := service.New(
		service.WithSource(src),
		service.WithGenerator(sample.New(sample.WithSeed(1))),
	)
	srv := api.NewServer(svc, svc)
	return api.NewRouter(context.Background(), srv, opts...), svc
}

func liveSource() source.Func {
	return func(context.Context) (string, error) { return sheet, nil }
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &m), ShouldBeNil)
	return m
}

func TestRouter_Data(t *testing.T) {
	Convey("Given a router over a live sheet", t, func() {
		h, svc := newRouter(liveSource())

		Convey("When the dashboard is requested", func() {
			w := get(h, "/api/v1/dashboard")

			Convey("Then it answers with records, summaries and charts", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
				So(w.Header().Get(api.HeaderDataSource), ShouldEqual, "live")
				So(w.Header().Get(api.HeaderLoadID), ShouldNotBeEmpty)

				m := decode(w)
				So(m["status"], ShouldEqual, "live")
				So(m["bets"], ShouldHaveLength, 3)
				So(m["weeks"], ShouldHaveLength, 2)
				charts := m["charts"].(map[string]any)
				So(charts["budget"], ShouldHaveLength, 3)
			})

			Convey("Then exactly one load ran", func() {
				So(svc.GetStats()["loads"], ShouldEqual, 1)
			})
		})

		Convey("When bets are requested for one week", func() {
			w := get(h, "/api/v1/bets?week=1")
			So(w.Code, ShouldEqual, http.StatusOK)

			m := decode(w)
			bets := m["bets"].([]any)
			So(bets, ShouldHaveLength, 2)
			first := bets[0].(map[string]any)
			So(first["id"], ShouldEqual, 1.0)
			So(first["odds"], ShouldEqual, 2.0)
			So(first["dateRange"], ShouldEqual, "1-7/5/2025")
		})

		Convey("When a week with no bets is requested", func() {
			w := get(h, "/api/v1/bets?week=9")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"bets":[]`)
		})

		Convey("When the week filter is not a number", func() {
			w := get(h, "/api/v1/summary?week=two")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			m := decode(w)
			So(m["code"], ShouldEqual, "bad_request")
			So(m["message"], ShouldContainSubstring, "week must be a number")
			So(svc.GetStats()["loads"], ShouldEqual, 0)
		})

		Convey("When summaries are requested", func() {
			w := get(h, "/api/v1/summary?week=2")
			So(w.Code, ShouldEqual, http.StatusOK)
			m := decode(w)
			weeks := m["weeks"].([]any)
			So(weeks, ShouldHaveLength, 1)
			So(weeks[0].(map[string]any)["totalProfitLoss"], ShouldEqual, 20.0)
		})
	})

	Convey("Given a router over a failing source", t, func() {
		h, _ := newRouter(source.Func(func(context.Context) (string, error) {
			return "", errors.New("sheet unavailable")
		}))

		w := get(h, "/api/v1/summary")

		Convey("Then the response is generated data flagged as fallback", func() {
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get(api.HeaderDataSource), ShouldEqual, "fallback")
			m := decode(w)
			So(m["status"], ShouldEqual, "fallback")
			So(m["reason"], ShouldContainSubstring, "sheet unavailable")
			So(m["weeks"], ShouldHaveLength, 8)
		})
	})
}

func TestRouter_Operational(t *testing.T) {
	Convey("Given a router", t, func() {
		h, _ := newRouter(liveSource())

		Convey("Then /healthz reports ok without loading", func() {
			w := get(h, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode(w)["status"], ShouldEqual, "ok")
		})

		Convey("Then /stats reflects earlier loads", func() {
			_ = get(h, "/api/v1/bets")
			w := get(h, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			m := decode(w)
			So(m["loads"], ShouldEqual, 1.0)
			So(m["lastStatus"], ShouldEqual, "live")
		})

		Convey("Then /metrics exposes the custom registry", func() {
			_ = get(h, "/api/v1/bets")
			w := get(h, "/metrics")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "betcast_")
		})

		Convey("Then docs are mounted", func() {
			So(get(h, "/openapi.yaml").Code, ShouldEqual, http.StatusOK)
			So(get(h, "/api-docs").Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then unknown paths answer with a JSON 404", func() {
			w := get(h, "/nope")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decode(w)["code"], ShouldEqual, "not_found")
		})

		Convey("Then writes are not allowed", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bets", http.NoBody)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestRouter_CORS(t *testing.T) {
	Convey("Given a router restricted to one origin", t, func() {
		h, _ := newRouter(liveSource(), api.WithCORSOrigins([]string{"https://dash.example"}))

		preflight := func(origin string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", http.NoBody)
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w
		}

		Convey("Then the allowed origin passes preflight", func() {
			w := preflight("https://dash.example")
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://dash.example")
		})

		Convey("Then other origins get no CORS headers", func() {
			w := preflight("https://evil.example")
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})

		Convey("Then the data source header is exposed to the browser", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bets", http.NoBody)
			req.Header.Set("Origin", "https://dash.example")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Header().Get("Access-Control-Expose-Headers"), ShouldContainSubstring, api.HeaderDataSource)
		})
	})
}

func TestStatsHandler(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		Convey("With a provider", func() {
			h := api.NewStatsHandler(&mockStatsProvider{stats: map[string]interface{}{"loads": 4}})
			w := httptest.NewRecorder()
			h.HandleStats(w, httptest.NewRequest(http.MethodGet, "/stats", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode(w)["loads"], ShouldEqual, 4.0)
		})

		Convey("Without a provider", func() {
			h := api.NewStatsHandler(nil)
			w := httptest.NewRecorder()
			h.HandleStats(w, httptest.NewRequest(http.MethodGet, "/stats", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, "{}\n")
		})
	})
}
