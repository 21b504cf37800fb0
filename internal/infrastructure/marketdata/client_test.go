package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chartPayload = `{
  "chart": {
    "result": [{
      "meta": {"currency": "USD", "symbol": "AAPL", "exchangeName": "NMS"},
      "timestamp": [1700000000, 1700086400, 1700172800],
      "indicators": {
        "quote": [{
          "open":   [189.1, 190.2, 191.0],
          "high":   [190.5, 191.8, 192.2],
          "low":    [188.0, 189.5, 0],
          "close":  [190.0, 0, 191.5],
          "volume": [50000000, 48000000, 52000000]
        }]
      }
    }],
    "error": null
  }
}`

func TestFetchCandles(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(chartPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	candles, meta, err := client.FetchCandles(context.Background(), "AAPL", "1y", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v8/finance/chart/AAPL" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "range=1y&interval=1d" {
		t.Errorf("query = %q", gotQuery)
	}

	// The second bar has a zero close and is dropped.
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	if candles[0].Close != 190.0 || candles[1].Close != 191.5 {
		t.Errorf("closes = %f, %f", candles[0].Close, candles[1].Close)
	}
	if candles[0].Volume != 50000000 {
		t.Errorf("volume = %d", candles[0].Volume)
	}

	if meta.Symbol != "AAPL" || meta.DisplaySymbol != "AAPL" || meta.Currency != "USD" {
		t.Errorf("meta = %+v", meta)
	}
}

func TestFetchCandlesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, _, err := client.FetchCandles(context.Background(), "NOPE", "1y", "1d")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestFetchCandlesBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, _, err := client.FetchCandles(context.Background(), "AAPL", "1y", "1d")
	if err == nil {
		t.Fatal("expected an error on non-200 status")
	}
}

func TestFetchCandlesEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, _, err := client.FetchCandles(context.Background(), "AAPL", "1y", "1d")
	if err == nil {
		t.Fatal("expected an error on empty result")
	}
}
