package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/api/handlers"
	"github.com/maxaizer/job-board/internal/api/routes"
	"github.com/maxaizer/job-board/internal/config"
	"github.com/maxaizer/job-board/internal/repositories"
	"github.com/maxaizer/job-board/internal/services"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {

	store := repositories.NewCachedTaxonomies(repositories.NewMemory())
	sessions := services.NewSessions()
	jobs := services.NewJobs(store, EventBus.New())

	cfg := config.ServerConfig{Addr: ":0", MaxRequestsPerSecond: 1000}
	return NewRouter(cfg, routes.Deps{
		Catalog:  handlers.NewCatalogHandler(store),
		Jobs:     handlers.NewJobHandler(jobs),
		Auth:     handlers.NewAuthHandler(sessions),
		Sessions: sessions,
	})
}

func doJSON(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func login(t *testing.T, router *gin.Engine) *http.Cookie {

	w := doJSON(router, http.MethodPost, "/api/login", gin.H{"username": "recruiter", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == handlers.SessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func Test_Api_HiringFlowEndToEnd(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	posted := doJSON(router, http.MethodPost, "/api/hire", gin.H{
		"title":        "Warehouse Manager",
		"description":  "Run the night shift.",
		"location":     "Pune, Maharashtra",
		"companyName":  "Acme Logistics",
		"requirements": "Forklift license, 2 years experience",
	}, cookie)
	assert.Equal(t, http.StatusCreated, posted.Code)

	job := decodeBody(t, posted)
	jobID := job["id"].(string)
	assert.NotEmpty(t, jobID)
	assert.NotNil(t, job["companyId"])
	assert.Equal(t, []any{"Forklift license", "2 years experience"}, job["requirements"])

	fetched := doJSON(router, http.MethodGet, "/api/jobs/"+jobID, nil)
	assert.Equal(t, http.StatusOK, fetched.Code)
	details := decodeBody(t, fetched)
	company := details["company"].(map[string]any)
	assert.Equal(t, "Acme Logistics", company["name"])

	applied := doJSON(router, http.MethodPost, "/api/jobs/"+jobID+"/apply", gin.H{
		"applicantName":  "Ann",
		"applicantEmail": "ann@example.com",
		"applicantPhone": "111-222",
	})
	assert.Equal(t, http.StatusCreated, applied.Code)

	applications := doJSON(router, http.MethodGet, "/api/jobs/"+jobID+"/applications", nil)
	assert.Equal(t, http.StatusOK, applications.Code)
	var list []map[string]any
	assert.NoError(t, json.Unmarshal(applications.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0]["applicantName"])
}

func Test_Api_ApplicationsListingNeedsNoSession(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	posted := doJSON(router, http.MethodPost, "/api/hire", gin.H{"title": "Driver"}, cookie)
	assert.Equal(t, http.StatusCreated, posted.Code)
	jobID := decodeBody(t, posted)["id"].(string)

	w := doJSON(router, http.MethodGet, "/api/jobs/"+jobID+"/applications", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func Test_Api_HireRequiresSession(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/hire", gin.H{"title": "Driver"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeBody(t, w)["message"])
}

func Test_Api_HireRequiresTitle(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	w := doJSON(router, http.MethodPost, "/api/hire", gin.H{"description": "No title"}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title is required", decodeBody(t, w)["message"])
}

func Test_Api_LoginRequiresBothCredentials(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/login", gin.H{"username": "recruiter"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username and password are required", decodeBody(t, w)["message"])
}

func Test_Api_MeReflectsSessionState(t *testing.T) {
	router := newTestRouter()

	anonymous := doJSON(router, http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	cookie := login(t, router)
	me := doJSON(router, http.MethodGet, "/api/me", nil, cookie)
	assert.Equal(t, http.StatusOK, me.Code)
	user := decodeBody(t, me)["user"].(map[string]any)
	assert.Equal(t, "recruiter", user["username"])

	logout := doJSON(router, http.MethodPost, "/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, logout.Code)

	after := doJSON(router, http.MethodGet, "/api/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func Test_Api_UnknownJobIsNotFound(t *testing.T) {
	router := newTestRouter()

	fetched := doJSON(router, http.MethodGet, "/api/jobs/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, fetched.Code)
	assert.Equal(t, "Job not found", decodeBody(t, fetched)["message"])

	applied := doJSON(router, http.MethodPost, "/api/jobs/no-such-id/apply", gin.H{
		"applicantName":  "Ann",
		"applicantEmail": "ann@example.com",
		"applicantPhone": "111-222",
	})
	assert.Equal(t, http.StatusNotFound, applied.Code)
}

func Test_Api_MissingJobOutranksInvalidApplication(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/jobs/no-such-id/apply", gin.H{"applicantName": "Ann"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decodeBody(t, w)["message"])
}

func Test_Api_ApplyValidatesApplicantFields(t *testing.T) {
	router := newTestRouter()

	jobs := doJSON(router, http.MethodGet, "/api/jobs", nil)
	assert.Equal(t, http.StatusOK, jobs.Code)
	page := decodeBody(t, jobs)
	jobID := page["jobs"].([]any)[0].(map[string]any)["id"].(string)

	w := doJSON(router, http.MethodPost, "/api/jobs/"+jobID+"/apply", gin.H{"applicantName": "Ann"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid application data", decodeBody(t, w)["message"])
}

func Test_Api_ListRejectsMalformedPagination(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/jobs?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid limit", decodeBody(t, w)["message"])
}

func Test_Api_CatalogEndpointsServeSeedData(t *testing.T) {
	router := newTestRouter()

	for path, count := range map[string]int{
		"/api/cities":         5,
		"/api/companies":      9,
		"/api/job-categories": 12,
		"/api/qualifications": 6,
		"/api/job-types":      5,
	} {
		w := doJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)

		var list []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, count, path)
	}
}

func Test_Api_JobListIncludesTotalBeforePagination(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/jobs?limit=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	page := decodeBody(t, w)
	assert.Equal(t, float64(4), page["total"])
	assert.Len(t, page["jobs"].([]any), 2)
}
