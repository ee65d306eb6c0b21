package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientTestnet(t *testing.T) {
	client, err := NewClient(Config{Network: "testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://testnet.mirrornode.hedera.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientMainnet(t *testing.T) {
	client, err := NewClient(Config{Network: "mainnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://mainnet-public.mirrornode.hedera.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		BaseURL: "https://custom.example.com/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://custom.example.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientUnsupportedNetwork(t *testing.T) {
	_, err := NewClient(Config{Network: "badnet"})
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestNewClientWithAPIKey(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		APIKey:  "my-api-key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.apiKey != "my-api-key" {
		t.Fatalf("expected api key 'my-api-key', got %q", client.apiKey)
	}
}

func TestNewClientWithHeaders(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		Headers: map[string]string{"X-Custom": "test"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.headers["X-Custom"] != "test" {
		t.Fatalf("expected header X-Custom=test, got %q", client.headers["X-Custom"])
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customHTTP := &http.Client{}
	client, err := NewClient(Config{
		Network:    "testnet",
		HTTPClient: customHTTP,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient != customHTTP {
		t.Fatal("expected custom http client to be used")
	}
}

func TestBaseURL(t *testing.T) {
	client, err := NewClient(Config{Network: "testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.BaseURL() != "https://testnet.mirrornode.hedera.com" {
		t.Fatalf("unexpected BaseURL(): %s", client.BaseURL())
	}
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	for _, baseURL := range []string{"ftp://mirror.example.com", "https://"} {
		if _, err := NewClient(Config{Network: "testnet", BaseURL: baseURL}); err == nil {
			t.Fatalf("expected error for %q", baseURL)
		}
	}
}

func TestGetAccountEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	_, err := client.GetAccount(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected error for empty account ID")
	}
}

func TestGetAccountSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/0.0.12345" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account":"0.0.12345","balance":{"balance":250000000,"timestamp":"1.0"},"key":{"_type":"ED25519","key":"abcd"}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	info, err := client.GetAccount(context.Background(), "0.0.12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Balance.Balance != 250000000 {
		t.Fatalf("unexpected balance: %d", info.Balance.Balance)
	}
	if info.Key == nil || info.Key.Key != "abcd" {
		t.Fatalf("unexpected key: %+v", info.Key)
	}
}

func TestFindAccountByPublicKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("account.publickey") != "beef" {
			t.Errorf("unexpected public key query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts":[{"account":"0.0.777","deleted":false}],"links":{"next":null}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	accountID, found, err := client.FindAccountByPublicKey(context.Background(), "beef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || accountID != "0.0.777" {
		t.Fatalf("expected 0.0.777, got %q (found=%v)", accountID, found)
	}
}

func TestFindAccountByPublicKeyNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts":[],"links":{"next":null}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, found, err := client.FindAccountByPublicKey(context.Background(), "beef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no match")
	}
}

func TestGetTokenInfoSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tokens/0.0.5005" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_id":"0.0.5005","name":"Coffee Club","symbol":"CAFE","decimals":"9","total_supply":"1500000000","treasury_account_id":"0.0.1001","type":"FUNGIBLE_COMMON"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	info, err := client.GetTokenInfo(context.Background(), "0.0.5005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "Coffee Club" || info.Symbol != "CAFE" {
		t.Fatalf("unexpected token info: %+v", info)
	}
	if info.Decimals != "9" || info.TotalSupply != "1500000000" {
		t.Fatalf("unexpected supply fields: %+v", info)
	}
}

func TestGetTokenInfoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"_status":{"messages":[{"message":"Not found"}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, err := client.GetTokenInfo(context.Background(), "0.0.404")
	if !IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetAccountTokenBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/0.0.42/tokens" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("token.id") != "0.0.5005" {
			t.Errorf("unexpected token filter: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tokens":[{"token_id":"0.0.5005","balance":2500000000,"decimals":9}],"links":{"next":null}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	relationship, found, err := client.GetAccountTokenBalance(context.Background(), "0.0.42", "0.0.5005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected token relationship")
	}
	if relationship.Balance != 2500000000 || relationship.Decimals != 9 {
		t.Fatalf("unexpected relationship: %+v", relationship)
	}
}

func TestGetAccountTokenBalanceFollowsPages(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"tokens": []TokenRelationship{{TokenID: "0.0.1", Balance: 1}},
				"links":  map[string]string{"next": server.URL + "/api/v1/accounts/0.0.42/tokens?page=2"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"tokens": []TokenRelationship{{TokenID: "0.0.5005", Balance: 7, Decimals: 2}},
			"links":  map[string]any{"next": nil},
		})
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	relationship, found, err := client.GetAccountTokenBalance(context.Background(), "0.0.42", "0.0.5005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || relationship.Balance != 7 {
		t.Fatalf("expected balance 7 from second page, got %+v (found=%v)", relationship, found)
	}
}

func TestGetAccountTokenBalanceNotAssociated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tokens":[],"links":{"next":null}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, found, err := client.GetAccountTokenBalance(context.Background(), "0.0.42", "0.0.5005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no relationship")
	}
}

func TestGetAccountTokenBalanceValidation(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, _, err := client.GetAccountTokenBalance(context.Background(), "", "0.0.1"); err == nil {
		t.Fatal("expected error for empty account")
	}
	if _, _, err := client.GetAccountTokenBalance(context.Background(), "0.0.1", " "); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestGetJSONServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, err := client.GetTokenInfo(context.Background(), "0.0.1")
	var statusErr StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError || statusErr.NotFound() {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if statusErr.Body != "internal error" {
		t.Fatalf("unexpected body: %q", statusErr.Body)
	}
}

func TestGetJSONInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, err := client.GetTokenInfo(context.Background(), "0.0.1")
	if err == nil {
		t.Fatal("expected error for invalid JSON response")
	}
	if IsNotFound(err) {
		t.Fatal("expected decode error, not a not-found error")
	}
}

func TestResolveURL(t *testing.T) {
	client := &Client{baseURL: "https://example.com"}

	if url := client.resolveURL("/api/test"); url != "https://example.com/api/test" {
		t.Fatalf("unexpected URL: %s", url)
	}

	if url := client.resolveURL("api/test"); url != "https://example.com/api/test" {
		t.Fatalf("unexpected URL: %s", url)
	}

	if url := client.resolveURL("https://other.com/path"); url != "https://other.com/path" {
		t.Fatalf("unexpected URL: %s", url)
	}
}

func TestGetJSONSendsAuthAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer my-key" {
			t.Errorf("expected 'Bearer my-key', got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Custom") != "value" {
			t.Errorf("expected X-Custom=value, got %q", r.Header.Get("X-Custom"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenInfo{TokenID: "0.0.1"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{
		Network: "testnet",
		BaseURL: server.URL,
		APIKey:  "my-key",
		Headers: map[string]string{"X-Custom": "value"},
	})
	if _, err := client.GetTokenInfo(context.Background(), "0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
