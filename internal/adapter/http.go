package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/utils"
	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/go-resty/resty/v2"
)

const (
	accountsPath = "/accounts"
	accountPath  = "/accounts/{id}"
	healthPath   = "/health"
	indexPath    = "/"
)

type httpAccountsClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAccountsClient constructs an HTTP/REST implementation of
// [AccountsClient]. address may omit the scheme, in which case http:// is
// assumed. A zero timeout disables the per-request deadline.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAccountsClient(address string, timeout time.Duration, logger *logger.Logger) (AccountsClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid accounts api address: %w", err)
	}

	return &httpAccountsClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
}

func (h *httpAccountsClient) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(body)
}

// CreateAccount implements [AccountsClient].
func (h *httpAccountsClient) CreateAccount(ctx context.Context, req models.AccountRequest) (models.Account, error) {
	var account models.Account

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&account).
		Post(accountsPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	h.logger.Debug().
		Str("func", "*httpAccountsClient.CreateAccount").
		Int64("account_id", account.ID).
		Str("location", resp.Header().Get("Location")).
		Msg("account created")

	return account, nil
}

// GetAccount implements [AccountsClient].
func (h *httpAccountsClient) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&account).
		Get(accountPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// ListAccounts implements [AccountsClient].
func (h *httpAccountsClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)

	resp, err := h.request(ctx).
		SetResult(&accounts).
		Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount implements [AccountsClient].
func (h *httpAccountsClient) UpdateAccount(ctx context.Context, id int64, req models.AccountRequest) (models.Account, error) {
	var account models.Account

	resp, err := h.jsonRequest(ctx, req).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&account).
		Put(accountPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// DeleteAccount implements [AccountsClient].
func (h *httpAccountsClient) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(accountPath)
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [AccountsClient].
func (h *httpAccountsClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.request(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// ServiceInfo implements [AccountsClient].
func (h *httpAccountsClient) ServiceInfo(ctx context.Context) (models.ServiceInfo, error) {
	var info models.ServiceInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get(indexPath)
	if err != nil {
		return models.ServiceInfo{}, fmt.Errorf("service info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfo{}, err
	}

	return info, nil
}
