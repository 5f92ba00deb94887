// In-memory lawg API used by the integration tests. It implements the
// success/error envelope protocol and the patch semantics of the real
// service: absent fields keep their value, explicit nulls clear it.
package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
)

// mockAPI is a lawg server backed by maps. All handlers hold mu.
type mockAPI struct {
	mu     sync.Mutex
	token  string
	nextID int

	projects map[string]*apiProject // keyed by namespace
}

type apiProject struct {
	ID        string        `json:"id"`
	Namespace string        `json:"namespace"`
	Name      string        `json:"name"`
	Flags     int           `json:"flags"`
	Icon      *string       `json:"icon"`
	Feeds     []*apiFeed    `json:"feeds"`
	Members   []*apiMember  `json:"members"`
	Insights  []*apiInsight `json:"-"`
}

type apiMember struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Icon     *string `json:"icon"`
}

type apiFeed struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Emoji       *string   `json:"emoji"`
	Logs        []*apiLog `json:"-"`
}

type apiLog struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	FeedID      string  `json:"feed_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Emoji       *string `json:"emoji"`
	Color       *string `json:"color"`
}

type apiInsight struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Value       float64 `json:"value"`
	Emoji       *string `json:"emoji"`
}

// newMockAPI returns a started test server speaking the lawg protocol.
// The caller owns the returned server and must Close it.
func newMockAPI(token string) (*mockAPI, *httptest.Server) {
	api := &mockAPI{
		token:    token,
		projects: make(map[string]*apiProject),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /projects", api.createProject)
	mux.HandleFunc("GET /projects/{namespace}", api.getProject)
	mux.HandleFunc("PATCH /projects/{namespace}", api.editProject)
	mux.HandleFunc("DELETE /projects/{namespace}", api.deleteProject)
	mux.HandleFunc("POST /projects/{namespace}/feeds", api.createFeed)
	mux.HandleFunc("PATCH /projects/{namespace}/feeds/{feed}", api.editFeed)
	mux.HandleFunc("DELETE /projects/{namespace}/feeds/{feed}", api.deleteFeed)
	mux.HandleFunc("POST /projects/{namespace}/feeds/{feed}/logs", api.createLog)
	mux.HandleFunc("GET /projects/{namespace}/feeds/{feed}/logs", api.listLogs)
	mux.HandleFunc("GET /projects/{namespace}/feeds/{feed}/logs/{log_id}", api.getLog)
	mux.HandleFunc("PATCH /projects/{namespace}/feeds/{feed}/logs/{log_id}", api.editLog)
	mux.HandleFunc("DELETE /projects/{namespace}/feeds/{feed}/logs/{log_id}", api.deleteLog)
	mux.HandleFunc("POST /projects/{namespace}/insights", api.createInsight)
	mux.HandleFunc("GET /projects/{namespace}/insights", api.listInsights)
	mux.HandleFunc("GET /projects/{namespace}/insights/{insight_id}", api.getInsight)
	mux.HandleFunc("PATCH /projects/{namespace}/insights/{insight_id}", api.editInsight)
	mux.HandleFunc("DELETE /projects/{namespace}/insights/{insight_id}", api.deleteInsight)

	server := httptest.NewServer(api.withAuth(mux))
	return api, server
}

func (a *mockAPI) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != a.token {
			writeAPIError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

func (a *mockAPI) id(prefix string) string {
	a.nextID++
	return fmt.Sprintf("%s_%d", prefix, a.nextID)
}

func decodeBody(r *http.Request) (map[string]any, error) {
	body := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// patchStringField applies one field of a PATCH body: absent keeps the
// value, null clears it, a string replaces it.
func patchStringField(body map[string]any, key string, dst **string) {
	v, ok := body[key]
	if !ok {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	s, _ := v.(string)
	*dst = &s
}

func optString(body map[string]any, key string) *string {
	v, ok := body[key]
	if !ok || v == nil {
		return nil
	}
	s, _ := v.(string)
	return &s
}

func (a *mockAPI) project(w http.ResponseWriter, r *http.Request) (*apiProject, bool) {
	p, ok := a.projects[r.PathValue("namespace")]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "not_found", "project not found")
		return nil, false
	}
	return p, true
}

func (a *mockAPI) feed(w http.ResponseWriter, r *http.Request) (*apiProject, *apiFeed, bool) {
	p, ok := a.project(w, r)
	if !ok {
		return nil, nil, false
	}
	name := r.PathValue("feed")
	for _, f := range p.Feeds {
		if f.Name == name {
			return p, f, true
		}
	}
	writeAPIError(w, http.StatusNotFound, "not_found", "feed not found")
	return nil, nil, false
}

func (a *mockAPI) log(w http.ResponseWriter, r *http.Request) (*apiFeed, *apiLog, bool) {
	_, f, ok := a.feed(w, r)
	if !ok {
		return nil, nil, false
	}
	id := r.PathValue("log_id")
	for _, l := range f.Logs {
		if l.ID == id {
			return f, l, true
		}
	}
	writeAPIError(w, http.StatusNotFound, "not_found", "log not found")
	return nil, nil, false
}

func (a *mockAPI) insight(w http.ResponseWriter, r *http.Request) (*apiProject, *apiInsight, bool) {
	p, ok := a.project(w, r)
	if !ok {
		return nil, nil, false
	}
	id := r.PathValue("insight_id")
	for _, in := range p.Insights {
		if in.ID == id {
			return p, in, true
		}
	}
	writeAPIError(w, http.StatusNotFound, "not_found", "insight not found")
	return nil, nil, false
}

func (a *mockAPI) createProject(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	namespace, _ := body["namespace"].(string)
	name, _ := body["name"].(string)
	if _, exists := a.projects[namespace]; exists {
		writeAPIError(w, http.StatusConflict, "conflict", "namespace already taken")
		return
	}
	p := &apiProject{
		ID:        a.id("proj"),
		Namespace: namespace,
		Name:      name,
		Feeds:     []*apiFeed{},
		Members:   []*apiMember{{ID: a.id("user"), Username: "tester"}},
	}
	a.projects[namespace] = p
	writeEnvelope(w, p)
}

func (a *mockAPI) getProject(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.project(w, r); ok {
		writeEnvelope(w, p)
	}
}

func (a *mockAPI) editProject(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.project(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	if v, ok := body["name"].(string); ok {
		p.Name = v
	}
	writeEnvelope(w, p)
}

func (a *mockAPI) deleteProject(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.project(w, r)
	if !ok {
		return
	}
	delete(a.projects, p.Namespace)
	writeEnvelope(w, nil)
}

func (a *mockAPI) createFeed(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.project(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	name, _ := body["name"].(string)
	f := &apiFeed{
		ID:          a.id("feed"),
		ProjectID:   p.ID,
		Name:        name,
		Description: optString(body, "description"),
		Emoji:       optString(body, "emoji"),
	}
	p.Feeds = append(p.Feeds, f)
	writeEnvelope(w, f)
}

func (a *mockAPI) editFeed(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, f, ok := a.feed(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	if v, ok := body["name"].(string); ok {
		f.Name = v
	}
	patchStringField(body, "description", &f.Description)
	patchStringField(body, "emoji", &f.Emoji)
	writeEnvelope(w, f)
}

func (a *mockAPI) deleteFeed(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, f, ok := a.feed(w, r)
	if !ok {
		return
	}
	for i, cur := range p.Feeds {
		if cur == f {
			p.Feeds = append(p.Feeds[:i], p.Feeds[i+1:]...)
			break
		}
	}
	writeEnvelope(w, nil)
}

func (a *mockAPI) createLog(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, f, ok := a.feed(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	title, _ := body["title"].(string)
	l := &apiLog{
		ID:          a.id("log"),
		ProjectID:   p.ID,
		FeedID:      f.ID,
		Title:       title,
		Description: optString(body, "description"),
		Emoji:       optString(body, "emoji"),
		Color:       optString(body, "color"),
	}
	f.Logs = append(f.Logs, l)
	writeEnvelope(w, l)
}

func (a *mockAPI) listLogs(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, f, ok := a.feed(w, r)
	if !ok {
		return
	}
	logs := f.Logs
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, _ := strconv.Atoi(v)
		if offset > len(logs) {
			offset = len(logs)
		}
		logs = logs[offset:]
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ := strconv.Atoi(v)
		if limit < len(logs) {
			logs = logs[:limit]
		}
	}
	writeEnvelope(w, logs)
}

func (a *mockAPI) getLog(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, l, ok := a.log(w, r); ok {
		writeEnvelope(w, l)
	}
}

func (a *mockAPI) editLog(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, l, ok := a.log(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	if v, ok := body["title"].(string); ok {
		l.Title = v
	}
	patchStringField(body, "description", &l.Description)
	patchStringField(body, "emoji", &l.Emoji)
	patchStringField(body, "color", &l.Color)
	writeEnvelope(w, l)
}

func (a *mockAPI) deleteLog(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, l, ok := a.log(w, r)
	if !ok {
		return
	}
	for i, cur := range f.Logs {
		if cur == l {
			f.Logs = append(f.Logs[:i], f.Logs[i+1:]...)
			break
		}
	}
	writeEnvelope(w, nil)
}

func (a *mockAPI) createInsight(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.project(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	title, _ := body["title"].(string)
	in := &apiInsight{
		ID:          a.id("insight"),
		ProjectID:   p.ID,
		Title:       title,
		Description: optString(body, "description"),
		Emoji:       optString(body, "emoji"),
	}
	if v, ok := body["value"].(float64); ok {
		in.Value = v
	}
	p.Insights = append(p.Insights, in)
	writeEnvelope(w, in)
}

func (a *mockAPI) listInsights(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.project(w, r)
	if !ok {
		return
	}
	writeEnvelope(w, p.Insights)
}

func (a *mockAPI) getInsight(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, in, ok := a.insight(w, r); ok {
		writeEnvelope(w, in)
	}
}

func (a *mockAPI) editInsight(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, in, ok := a.insight(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "malformed body")
		return
	}
	if v, ok := body["title"].(string); ok {
		in.Title = v
	}
	patchStringField(body, "description", &in.Description)
	patchStringField(body, "emoji", &in.Emoji)
	if raw, ok := body["value"]; ok {
		switch update := raw.(type) {
		case nil:
			in.Value = 0
		case map[string]any:
			if v, ok := update["set"].(float64); ok {
				in.Value = v
			}
			if v, ok := update["increment"].(float64); ok {
				in.Value += v
			}
		}
	}
	writeEnvelope(w, in)
}

func (a *mockAPI) deleteInsight(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, in, ok := a.insight(w, r)
	if !ok {
		return
	}
	for i, cur := range p.Insights {
		if cur == in {
			p.Insights = append(p.Insights[:i], p.Insights[i+1:]...)
			break
		}
	}
	writeEnvelope(w, nil)
}
