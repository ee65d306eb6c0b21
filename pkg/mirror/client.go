package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		if network == shared.NetworkMainnet {
			baseURL = "https://mainnet-public.mirrornode.hedera.com"
		} else {
			baseURL = "https://testnet.mirrornode.hedera.com"
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// BaseURL returns the requested value.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAccount returns the requested value.
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return accountInfo, fmt.Errorf("account ID is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", url.PathEscape(normalizedAccountID))
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}

// FindAccountByPublicKey returns the first account whose key is the given
// hex-encoded public key. The boolean is false when no account matches.
func (c *Client) FindAccountByPublicKey(ctx context.Context, publicKey string) (string, bool, error) {
	normalized := strings.TrimSpace(publicKey)
	if normalized == "" {
		return "", false, fmt.Errorf("public key is required")
	}

	values := url.Values{}
	values.Set("account.publickey", normalized)
	values.Set("limit", "1")
	values.Set("order", "asc")

	var response accountsResponse
	if err := c.getJSON(ctx, "/api/v1/accounts?"+values.Encode(), &response); err != nil {
		return "", false, err
	}
	for _, account := range response.Accounts {
		if !account.Deleted && account.Account != "" {
			return account.Account, true, nil
		}
	}
	return "", false, nil
}

// GetTokenInfo returns the requested value.
func (c *Client) GetTokenInfo(ctx context.Context, tokenID string) (TokenInfo, error) {
	var tokenInfo TokenInfo
	normalized := strings.TrimSpace(tokenID)
	if normalized == "" {
		return tokenInfo, fmt.Errorf("token ID is required")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s", url.PathEscape(normalized))
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// GetAccountTokenBalance returns the account's relationship with a token.
// The boolean is false when the account is not associated with the token.
func (c *Client) GetAccountTokenBalance(
	ctx context.Context,
	accountID string,
	tokenID string,
) (TokenRelationship, bool, error) {
	normalizedAccountID := strings.TrimSpace(accountID)
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedAccountID == "" {
		return TokenRelationship{}, false, fmt.Errorf("account ID is required")
	}
	if normalizedTokenID == "" {
		return TokenRelationship{}, false, fmt.Errorf("token ID is required")
	}

	values := url.Values{}
	values.Set("token.id", normalizedTokenID)
	values.Set("limit", "1")

	next := fmt.Sprintf("/api/v1/accounts/%s/tokens?%s", url.PathEscape(normalizedAccountID), values.Encode())
	for next != "" {
		var page tokenRelationshipsResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return TokenRelationship{}, false, err
		}
		for _, relationship := range page.Tokens {
			if relationship.TokenID == normalizedTokenID {
				return relationship, true, nil
			}
		}
		next = page.Links.Next
	}

	return TokenRelationship{}, false, nil
}

// IsNotFound reports whether err is a mirror 404.
func IsNotFound(err error) bool {
	var statusErr StatusError
	return errors.As(err, &statusErr) && statusErr.NotFound()
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return StatusError{
			StatusCode: response.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
