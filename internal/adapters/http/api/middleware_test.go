package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/betcast/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGetErrorType(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(http.StatusInternalServerError), ShouldEqual, "server_error")
		So(getErrorType(http.StatusServiceUnavailable), ShouldEqual, "timeout")
		So(getErrorType(http.StatusNotFound), ShouldEqual, "not_found")
		So(getErrorType(http.StatusMethodNotAllowed), ShouldEqual, "method_not_allowed")
		So(getErrorType(http.StatusBadRequest), ShouldEqual, "client_error")
		So(getErrorType(http.StatusOK), ShouldEqual, "unknown")
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a handler that fails", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadWeek)
		}, "test")

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

		Convey("Then the response passes through untouched", func() {
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, "week must be a number")
		})
	})
}

func TestRequestLogger(t *testing.T) {
	Convey("Given a request logger writing JSON", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithFormat("json"), logger.WithWriter(&buf), logger.WithLevel("debug")), ShouldBeNil)

		h := RequestLogger(logger.Named("http"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(HeaderDataSource, "fallback")
			writeError(w, http.StatusInternalServerError, "internal", nil)
		}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bets", http.NoBody))

		Convey("Then one error line carries the request details", func() {
			out := buf.String()
			So(out, ShouldContainSubstring, `"msg":"request failed"`)
			So(out, ShouldContainSubstring, `"status":500`)
			So(out, ShouldContainSubstring, `"path":"/api/v1/bets"`)
			So(out, ShouldContainSubstring, `"data_source":"fallback"`)
		})

		Reset(func() {
			_ = logger.Init()
		})
	})
}

func TestResponseWriter(t *testing.T) {
	Convey("Given a wrapped recorder", t, func() {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		Convey("The first status wins", func() {
			rw.WriteHeader(http.StatusTeapot)
			rw.WriteHeader(http.StatusOK)
			So(rw.statusCode, ShouldEqual, http.StatusTeapot)
		})

		Convey("A bare write keeps 200", func() {
			_, err := rw.Write([]byte("ok"))
			So(err, ShouldBeNil)
			So(rw.statusCode, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldEqual, "ok")
		})
	})
}
