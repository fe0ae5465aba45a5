package drive

import (
	"bytes"
	"errors"
	"log"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/handlerspec/packages/builder"
	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

func TestRunHandler_GetRoundTrip(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/a/b", r.URL.Path)
		assert.Equal(t, "x=1", r.URL.RawQuery)
		assert.Equal(t, "7", r.Header.Get("X-Req"))
		assert.Equal(t, "localhost", r.Host)

		w.Header().Set("X-Probe", "yes")
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	rsp, err := RunHandler(func(b *builder.Builder) {
		b.Get("/a/b", url.Values{"x": {"1"}}).SetHeader("X-Req", "7")
	}, handler)

	require.NoError(t, err)
	assert.Equal(t, 200, rsp.Status)
	assert.Equal(t, "OK", rsp.Reason)
	assert.Equal(t, "yes", rsp.Headers.Get("X-Probe"))

	body, err := rsp.ReadBody()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestRunHandler_StampsDate(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNoContent)
	})

	rsp, err := RunHandler(func(b *builder.Builder) {
		b.Get("/", nil)
	}, handler)
	require.NoError(t, err)

	date := rsp.Headers.Get("Date")
	require.NotEmpty(t, date)
	_, err = time.Parse(nethttp.TimeFormat, date)
	assert.NoError(t, err)
}

func TestRunHandler_FormBody(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "10", r.Header.Get("Content-Length"))
		assert.Equal(t, "alice", r.FormValue("user"))
		w.WriteHeader(nethttp.StatusCreated)
	})

	rsp, err := RunHandler(func(b *builder.Builder) {
		b.PostURLEncoded("/submit", url.Values{"user": {"alice"}})
	}, handler)

	require.NoError(t, err)
	assert.Equal(t, 201, rsp.Status)
}

func TestRunHandler_MultipartBody(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "hi", r.FormValue("note"))
		w.WriteHeader(nethttp.StatusOK)
	})

	rsp, err := RunHandler(func(b *builder.Builder) {
		b.PostMultipart("/upload", []http.MultipartField{
			{Name: "note", Param: http.FormData("hi")},
		})
	}, handler)

	require.NoError(t, err)
	assert.Equal(t, 200, rsp.Status)
}

func TestRunHandler_Secure(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.NotNil(t, r.TLS)
		w.WriteHeader(nethttp.StatusOK)
	})

	_, err := RunHandler(func(b *builder.Builder) {
		b.Get("/s", nil).SetSecure(true)
	}, handler)
	require.NoError(t, err)
}

func TestRun_StrategyErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("strategy exploded")

	_, err := Run(func(b *builder.Builder) {
		b.Get("/x", nil)
	}, func(rq *http.Request) (*http.Response, error) {
		return nil, sentinel
	})

	assert.Equal(t, sentinel, err)
}

func TestRun_NilResponsePassesThrough(t *testing.T) {
	rsp, err := Run(func(b *builder.Builder) {
		b.Get("/x", nil)
	}, func(rq *http.Request) (*http.Response, error) {
		return nil, nil
	})

	assert.NoError(t, err)
	assert.Nil(t, rsp)
}

func TestRun_CustomStrategyGetsDate(t *testing.T) {
	rsp, err := Run(func(b *builder.Builder) {
		b.Get("/x", nil)
	}, func(rq *http.Request) (*http.Response, error) {
		return http.NewResponse(204), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 204, rsp.Status)
	assert.NotEmpty(t, rsp.Headers.Get("Date"))
}

func TestNewDriver_Verbose(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	var buf bytes.Buffer
	d := NewDriver(Serve(handler),
		WithVerbose(true),
		WithLogger(log.New(&buf, "", 0)))

	rsp, err := d.Run(func(b *builder.Builder) {
		b.Get("/logged", nil)
	})
	require.NoError(t, err)
	assert.Equal(t, 200, rsp.Status)
	assert.Contains(t, buf.String(), "GET /logged -> 200")
}

func TestNewDriver_QuietByDefault(t *testing.T) {
	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	var buf bytes.Buffer
	d := NewDriver(Serve(handler), WithLogger(log.New(&buf, "", 0)))

	_, err := d.Run(func(b *builder.Builder) {
		b.Get("/quiet", nil)
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestToStdRequest(t *testing.T) {
	rq, err := builder.New().
		PostRaw("/v", "text/plain", []byte("abc")).
		SetHTTPVersion(1, 0).
		Build()
	require.NoError(t, err)

	std, err := ToStdRequest(rq)
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.0", std.Proto)
	assert.Equal(t, 1, std.ProtoMajor)
	assert.Equal(t, 0, std.ProtoMinor)
	assert.Equal(t, "localhost", std.Host)
	assert.Equal(t, int64(3), std.ContentLength)
	assert.Equal(t, "text/plain", std.Header.Get("Content-Type"))

	// Conversion restored the body on the synthesized request.
	data, err := rq.ReadBody()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestCaptureResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	recorder.Header().Set("X-A", "1")
	recorder.WriteHeader(nethttp.StatusTeapot)
	_, _ = recorder.Write([]byte("teapot"))

	rsp := CaptureResponse(recorder)

	assert.Equal(t, 418, rsp.Status)
	assert.Equal(t, "I'm a teapot", rsp.Reason)
	assert.Equal(t, "1", rsp.Headers.Get("X-A"))
	assert.Equal(t, http.Version{Major: 1, Minor: 1}, rsp.Version)

	body, err := rsp.ReadBody()
	require.NoError(t, err)
	assert.Equal(t, "teapot", string(body))
}
