package bistfolio

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchUsdTryRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"USD":1,"TRY":41.23,"EUR":0.92}}`))
	}))
	defer srv.Close()

	rate, err := fetchUsdTryRate(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetchUsdTryRate() error = %v", err)
	}
	if rate != 41.23 {
		t.Errorf("rate = %v, want 41.23", rate)
	}
}

func TestFetchUsdTryRate_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"api error result", `{"result":"error","error-type":"quota"}`, 200},
		{"missing TRY", `{"result":"success","rates":{"USD":1}}`, 200},
		{"non-numeric TRY", `{"result":"success","rates":{"TRY":"high"}}`, 200},
		{"negative TRY", `{"result":"success","rates":{"TRY":-1}}`, 200},
		{"http error", `oops`, 500},
		{"garbage body", `not json`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := fetchUsdTryRate(srv.Client(), srv.URL); err == nil {
				t.Error("fetchUsdTryRate() succeeded, want error")
			}
		})
	}
}
