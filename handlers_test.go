package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	initDB(filepath.Join(t.TempDir(), "test.db"))
	c.Flush()

	srv := httptest.NewServer(newRouter())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func doDelete(t *testing.T, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func listProjectsHTTP(t *testing.T, srv *httptest.Server) []Project {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/projects")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []Project
	decodeInto(t, resp, &projects)
	return projects
}

func TestCreateAndListProjects(t *testing.T) {
	srv := setupServer(t)

	in := Project{
		Title:       "Chess Engine",
		Description: "A UCI chess engine",
		ImageURL:    "https://example.com/chess.png",
		Link:        "https://example.com/chess",
		Category:    CategoryFeatured,
	}
	resp := postJSON(t, srv.URL+"/api/projects", in)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID uint `json:"id"`
	}
	decodeInto(t, resp, &created)
	require.NotZero(t, created.ID)

	projects := listProjectsHTTP(t, srv)
	require.Len(t, projects, 1)

	// Round-trip: every field comes back exactly as sent, untransformed.
	got := projects[0]
	require.Equal(t, created.ID, got.ID)
	in.ID = created.ID
	require.Equal(t, in, got)
}

func TestCreateProjectMissingFieldsPassThrough(t *testing.T) {
	srv := setupServer(t)

	// An empty body is not rejected; absent fields store as zero values.
	resp := postJSON(t, srv.URL+"/api/projects", map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID uint `json:"id"`
	}
	decodeInto(t, resp, &created)
	require.NotZero(t, created.ID)

	projects := listProjectsHTTP(t, srv)
	require.Len(t, projects, 1)
	require.Empty(t, projects[0].Title)
	require.Empty(t, projects[0].Category)
}

func TestDeleteProjectMissingIDStillSucceeds(t *testing.T) {
	srv := setupServer(t)

	postJSON(t, srv.URL+"/api/projects", Project{Title: "Keep me"}).Body.Close()

	resp := doDelete(t, srv.URL+"/api/projects/9999")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply struct {
		Success bool `json:"success"`
	}
	decodeInto(t, resp, &reply)
	require.True(t, reply.Success)

	require.Len(t, listProjectsHTTP(t, srv), 1)
}

func TestDeleteProjectRemovesExactlyThatEntry(t *testing.T) {
	srv := setupServer(t)

	var first, second struct {
		ID uint `json:"id"`
	}
	decodeInto(t, postJSON(t, srv.URL+"/api/projects", Project{Title: "first"}), &first)
	decodeInto(t, postJSON(t, srv.URL+"/api/projects", Project{Title: "second"}), &second)

	resp := doDelete(t, fmt.Sprintf("%s/api/projects/%d", srv.URL, first.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	projects := listProjectsHTTP(t, srv)
	require.Len(t, projects, 1)
	require.Equal(t, second.ID, projects[0].ID)
	require.Equal(t, "second", projects[0].Title)
}

func TestDeleteProjectIsIdempotent(t *testing.T) {
	srv := setupServer(t)

	var created struct {
		ID uint `json:"id"`
	}
	decodeInto(t, postJSON(t, srv.URL+"/api/projects", Project{Title: "gone soon"}), &created)

	url := fmt.Sprintf("%s/api/projects/%d", srv.URL, created.ID)
	for i := 0; i < 2; i++ {
		resp := doDelete(t, url)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Success bool `json:"success"`
		}
		decodeInto(t, resp, &reply)
		require.True(t, reply.Success)
	}

	require.Empty(t, listProjectsHTTP(t, srv))
}

func TestListSeesWritesThroughCache(t *testing.T) {
	srv := setupServer(t)

	postJSON(t, srv.URL+"/api/projects", Project{Title: "one"}).Body.Close()
	require.Len(t, listProjectsHTTP(t, srv), 1)

	// The second write must invalidate the cached list.
	postJSON(t, srv.URL+"/api/projects", Project{Title: "two"}).Body.Close()
	require.Len(t, listProjectsHTTP(t, srv), 2)
}

func TestResumeEntriesPartitionByType(t *testing.T) {
	srv := setupServer(t)

	postJSON(t, srv.URL+"/api/resume", ResumeEntry{
		Title: "Backend Engineer", Company: "Acme", Duration: "2020 - 2023", Type: TypeExperience,
	}).Body.Close()
	postJSON(t, srv.URL+"/api/resume", ResumeEntry{
		Title: "BSc Computer Science", Company: "State University", Duration: "2016 - 2020", Type: TypeEducation,
	}).Body.Close()

	resp, err := http.Get(srv.URL + "/api/resume")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []ResumeEntry
	decodeInto(t, resp, &entries)
	require.Len(t, entries, 2)

	var experience, education []ResumeEntry
	for _, e := range entries {
		switch e.Type {
		case TypeExperience:
			experience = append(experience, e)
		case TypeEducation:
			education = append(education, e)
		}
	}
	require.Len(t, experience, 1)
	require.Len(t, education, 1)
	require.Equal(t, "Backend Engineer", experience[0].Title)
	require.Equal(t, "BSc Computer Science", education[0].Title)
}

func TestDeleteResumeEntry(t *testing.T) {
	srv := setupServer(t)

	var created struct {
		ID uint `json:"id"`
	}
	decodeInto(t, postJSON(t, srv.URL+"/api/resume", ResumeEntry{Title: "Old Job", Type: TypeExperience}), &created)

	resp := doDelete(t, fmt.Sprintf("%s/api/resume/%d", srv.URL, created.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply struct {
		Success bool `json:"success"`
	}
	decodeInto(t, resp, &reply)
	require.True(t, reply.Success)

	listResp, err := http.Get(srv.URL + "/api/resume")
	require.NoError(t, err)
	var entries []ResumeEntry
	decodeInto(t, listResp, &entries)
	require.Empty(t, entries)
}

func TestLoginRightPassword(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/admin/login", map[string]string{"password": "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply struct {
		Token string `json:"token"`
	}
	decodeInto(t, resp, &reply)
	require.NotEmpty(t, reply.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/admin/login", map[string]string{"password": "letmein"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var reply struct {
		Error string `json:"error"`
	}
	decodeInto(t, resp, &reply)
	require.Equal(t, "Unauthorized", reply.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := setupServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/projects", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/api/admin/login")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}
