package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Describe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/describe" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("field"); got != "Revenue" {
			t.Errorf("expected field=Revenue, got %q", got)
		}
		w.Write([]byte(`{"mean": 4, "median": 3, "stdDev": 1.5, "count": 9, "min": 1, "max": 8}`))
	}))
	defer srv.Close()

	summary, err := NewClient(srv.URL, srv.Client()).Describe(context.Background(), "sales", "Revenue")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if summary.Mean != 4 || summary.Count != 9 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestClient_Correlate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("x") != "Units" || q.Get("y") != "Revenue" {
			t.Errorf("unexpected field pair: %v", q)
		}
		w.Write([]byte(`{"r": 0.9, "slope": 2, "intercept": 1}`))
	}))
	defer srv.Close()

	corr, err := NewClient(srv.URL, srv.Client()).Correlate(context.Background(), "sales", "Units", "Revenue")
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	if corr.R == nil || *corr.R != 0.9 {
		t.Errorf("expected r=0.9, got %v", corr.R)
	}
	if corr.Slope != 2 || corr.Intercept != 1 {
		t.Errorf("unexpected fit: %+v", corr)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, srv.Client()).Describe(context.Background(), "sales", "v"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestClient_Unreachable(t *testing.T) {
	if _, err := NewClient("http://127.0.0.1:0", nil).Describe(context.Background(), "sales", "v"); err == nil {
		t.Fatal("expected an error for an unreachable service")
	}
}
