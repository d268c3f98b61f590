package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/shaiso/pollination-go/internal/domain"
	"github.com/shaiso/pollination-go/internal/telemetry"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRateLimit = 5 // запросов в секунду

	// authHeader — заголовок аутентификации Pollination API
	// (bearer-подобный API-ключ).
	authHeader = "x-pollination-token"
)

// Options — параметры создания клиента.
type Options struct {
	// BaseURL — базовый адрес API (без завершающего слэша).
	BaseURL string

	// Org — аккаунт-владелец проектов (POLLINATION_ORG).
	Org string

	// APIKey — API-ключ (POLLINATION_API_KEY).
	APIKey string

	// Timeout — таймаут одного HTTP-запроса. Default: 30s.
	Timeout time.Duration

	// RateLimit — максимум запросов в секунду. Default: 5.
	RateLimit float64
}

// Client — HTTP-клиент для Pollination API.
type Client struct {
	baseURL    string
	org        string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New создаёт клиент для API.
func New(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := opts.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	return &Client{
		baseURL: opts.BaseURL,
		org:     opts.Org,
		apiKey:  opts.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
		logger:  logger,
	}
}

// Org возвращает аккаунт-владелец, с которым работает клиент.
func (c *Client) Org() string {
	return c.org
}

// --- Account ---

// GetUser возвращает профиль текущего пользователя (владельца API-ключа).
func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	err := c.get(ctx, userPath(), &user)
	return &user, err
}

// GetAccount возвращает публичный аккаунт по имени.
// Пустое имя означает организацию клиента.
func (c *Client) GetAccount(ctx context.Context, name string) (*domain.Account, error) {
	if name == "" {
		name = c.org
	}
	var account domain.Account
	err := c.get(ctx, accountPath(name), &account)
	return &account, err
}

// --- Projects ---

// CreateProject создаёт проект у организации клиента.
// Если проект уже существует, возвращает ErrProjectExists: скрипты
// запускаются повторно и должны уметь переиспользовать проект.
func (c *Client) CreateProject(ctx context.Context, p domain.ProjectCreate) (*domain.Project, error) {
	var project domain.Project
	err := c.post(ctx, projectsPath(c.org), p, &project)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("%w: %s/%s", ErrProjectExists, c.org, p.Name)
	}
	return &project, err
}

// GetProject возвращает проект по имени.
func (c *Client) GetProject(ctx context.Context, name string) (*domain.Project, error) {
	var project domain.Project
	err := c.get(ctx, projectPath(c.org, name), &project)
	return &project, err
}

// AddRecipeFilter подключает recipe к проекту через фильтр, выбирающий
// recipe из множества, видимого текущему аккаунту.
func (c *Client) AddRecipeFilter(ctx context.Context, project string, f domain.RecipeFilter) error {
	return c.post(ctx, projectRecipeFiltersPath(c.org, project), f, nil)
}

// --- Jobs ---

// CreateJob создаёт job по спецификации и возвращает его с присвоенным ID.
func (c *Client) CreateJob(ctx context.Context, project string, spec domain.JobSpec) (*domain.Job, error) {
	var job domain.Job
	err := c.post(ctx, projectJobsPath(c.org, project), spec, &job)
	return &job, err
}

// GetJob возвращает job по ID.
func (c *Client) GetJob(ctx context.Context, project, jobID string) (*domain.Job, error) {
	var job domain.Job
	err := c.get(ctx, projectJobPath(c.org, project, jobID), &job)
	return &job, err
}

// ListJobs возвращает jobs проекта.
func (c *Client) ListJobs(ctx context.Context, project string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := c.list(ctx, projectJobsPath(c.org, project), nil, &jobs)
	return jobs, err
}

// ListJobArtifacts возвращает файлы, созданные или использованные job'ом.
func (c *Client) ListJobArtifacts(ctx context.Context, project, jobID string) ([]domain.JobArtifact, error) {
	var artifacts []domain.JobArtifact
	err := c.get(ctx, projectJobArtifactsPath(c.org, project, jobID), &artifacts)
	return artifacts, err
}

// JobArtifactDownloadLink возвращает подписанный URL для скачивания
// артефакта job по его пути в хранилище.
//
// Schema: https://api.pollination.cloud/redoc#operation/download_job_artifact
func (c *Client) JobArtifactDownloadLink(ctx context.Context, project, jobID, artifactPath string) (string, error) {
	params := url.Values{}
	params.Set("path", artifactPath)

	var link string
	err := c.get(ctx, projectJobArtifactsDownloadPath(c.org, project, jobID)+"?"+params.Encode(), &link)
	return link, err
}

// --- Runs ---

// ListRuns возвращает runs, созданные для job'а.
func (c *Client) ListRuns(ctx context.Context, project, jobID string) ([]domain.Run, error) {
	params := url.Values{}
	params.Set("job_id", jobID)

	var runs []domain.Run
	err := c.list(ctx, projectRunsPath(c.org, project), params, &runs)
	return runs, err
}

// GetRunOutputURL возвращает подписанный URL для скачивания одного
// output'а run'а. Набор outputs определяется выбранным recipe.
func (c *Client) GetRunOutputURL(ctx context.Context, project, runID, outputName string) (string, error) {
	var link string
	err := c.get(ctx, projectRunOutputPath(c.org, project, runID, outputName), &link)
	return link, err
}

// --- HTTP helpers ---

// list-ответы API приходят в конверте с пагинацией.
type listResponse struct {
	Resources  json.RawMessage `json:"resources"`
	TotalCount int             `json:"total_count"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, result)
}

func (c *Client) list(ctx context.Context, path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	var lr listResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &lr); err != nil {
		return err
	}

	return json.Unmarshal(lr.Resources, result)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	// Клиентский rate limit: API общий для всей организации.
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(authHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Корреляционный ID для сопоставления логов с запросами.
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	telemetry.ObserveAPIRequest(method, status, duration)

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", status,
		"duration", duration,
		"request_id", requestID,
	)

	return resp, err
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     parseDetail(body),
	}
}

// parseDetail извлекает поле detail из тела ошибки. Detail может быть
// строкой или структурой (ошибки валидации FastAPI).
func parseDetail(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && len(er.Detail) > 0 {
		var s string
		if err := json.Unmarshal(er.Detail, &s); err == nil {
			return s
		}
		return truncate(string(er.Detail), 200)
	}
	return truncate(string(body), 200)
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
