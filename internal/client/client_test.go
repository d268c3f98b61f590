package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaiso/pollination-go/internal/domain"
)

// newTestClient создаёт клиент, направленный на mock-сервер.
func newTestClient(serverURL string) *Client {
	return New(Options{
		BaseURL:   serverURL,
		Org:       "test-org",
		APIKey:    "test-key",
		RateLimit: 1000, // тесты не должны ждать limiter
	}, nil)
}

func TestGetUser_SendsAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("expected path /user, got %s", r.URL.Path)
		}
		if got := r.Header.Get("x-pollination-token"); got != "test-key" {
			t.Errorf("expected auth header test-key, got %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header to be set")
		}
		json.NewEncoder(w).Encode(domain.User{ID: "u-1", Username: "tester"})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).GetUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "tester" {
		t.Errorf("expected username tester, got %q", user.Username)
	}
}

func TestGetAccount_DefaultsToOrg(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/test-org" {
			t.Errorf("expected path /accounts/test-org, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.Account{Name: "test-org", AccountType: "org"})
	}))
	defer server.Close()

	account, err := newTestClient(server.URL).GetAccount(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountType != "org" {
		t.Errorf("expected account type org, got %q", account.AccountType)
	}
}

func TestCreateProject_PostsToOwner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/projects/test-org" {
			t.Errorf("expected path /projects/test-org, got %s", r.URL.Path)
		}

		var body domain.ProjectCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Name != "good-project" || !body.Public {
			t.Errorf("unexpected body: %+v", body)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Project{ID: "p-1", Name: body.Name, Public: body.Public})
	}))
	defer server.Close()

	project, err := newTestClient(server.URL).CreateProject(context.Background(), domain.ProjectCreate{
		Name:   "good-project",
		Public: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != "p-1" {
		t.Errorf("expected project id p-1, got %q", project.ID)
	}
}

func TestCreateProject_ConflictMapsToErrProjectExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "project already exists"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateProject(context.Background(), domain.ProjectCreate{Name: "dup"})
	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("expected ErrProjectExists, got %v", err)
	}
}

func TestAddRecipeFilter_Route(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/test-org/good-project/recipes/filters" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var filter domain.RecipeFilter
		json.NewDecoder(r.Body).Decode(&filter)
		if filter.Owner != "ladybug-tools" || filter.Tag != "0.5.6" {
			t.Errorf("unexpected filter: %+v", filter)
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := newTestClient(server.URL).AddRecipeFilter(context.Background(), "good-project", domain.RecipeFilter{
		Owner: "ladybug-tools",
		Name:  "daylight-factor",
		Tag:   "0.5.6",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateJob_SerializesArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			t.Fatalf("failed to decode spec: %v", err)
		}

		args, ok := spec["arguments"].([]any)
		if !ok || len(args) != 2 {
			t.Fatalf("expected 2 argument groups, got %v", spec["arguments"])
		}

		group := args[0].([]any)
		arg := group[0].(map[string]any)
		if arg["type"] != "JobPathArgument" || arg["name"] != "model" {
			t.Errorf("unexpected argument: %v", arg)
		}
		source := arg["source"].(map[string]any)
		if source["type"] != "ProjectFolder" || source["path"] != "model1.hbjson" {
			t.Errorf("unexpected source: %v", source)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Job{ID: "j-1"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	job, err := c.CreateJob(context.Background(), "good-project", domain.JobSpec{
		Source: c.RecipeSourceURL("ladybug-tools", "daylight-factor", "0.5.6"),
		Arguments: [][]domain.JobArgument{
			{domain.ProjectFolderArgument("model", "model1.hbjson")},
			{domain.ProjectFolderArgument("model", "model2.hbjson")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != "j-1" {
		t.Errorf("expected job id j-1, got %q", job.ID)
	}
}

func TestListRuns_ResourcesEnvelopeAndJobFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/test-org/good-project/runs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("job_id"); got != "j-1" {
			t.Errorf("expected job_id=j-1, got %q", got)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"total_count": 2,
			"resources": []map[string]any{
				{"id": "r-1", "status": map[string]any{"status": "Succeeded"}},
				{"id": "r-2", "status": map[string]any{"status": "Failed"}},
			},
		})
	}))
	defer server.Close()

	runs, err := newTestClient(server.URL).ListRuns(context.Background(), "good-project", "j-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].CurrentStatus() != domain.RunStatusSucceeded {
		t.Errorf("expected first run Succeeded, got %s", runs[0].CurrentStatus())
	}
}

func TestGetRunOutputURL_DecodesJSONString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/test-org/good-project/runs/r-1/outputs/results" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		// API возвращает подписанный URL как JSON-строку
		json.NewEncoder(w).Encode("https://storage.example.com/signed")
	}))
	defer server.Close()

	link, err := newTestClient(server.URL).GetRunOutputURL(context.Background(), "good-project", "r-1", "results")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link != "https://storage.example.com/signed" {
		t.Errorf("unexpected link %q", link)
	}
}

func TestJobArtifactDownloadLink_PathQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/test-org/good-project/jobs/j-1/artifacts/downloads" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("path"); got != "results/output.zip" {
			t.Errorf("expected path query, got %q", got)
		}
		json.NewEncoder(w).Encode("https://storage.example.com/artifact")
	}))
	defer server.Close()

	link, err := newTestClient(server.URL).JobArtifactDownloadLink(context.Background(), "good-project", "j-1", "results/output.zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link == "" {
		t.Error("expected non-empty link")
	}
}

func TestCheckError_ParsesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid API key"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetUser(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "invalid API key" {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
}

func TestCheckError_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream gone"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetUser(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "upstream gone" {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
}
