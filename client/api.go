// Package client holds the browser-side half of the portfolio app: an HTTP
// client for the content API and the view-state controller that drives
// re-rendering. The types here mirror the API's JSON wire format; the wire
// format is the only contract between the two halves.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned by Login when the password is rejected.
var ErrUnauthorized = errors.New("unauthorized")

// Project mirrors the API's project object.
type Project struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// ResumeEntry mirrors the API's resume object. Type is "experience" or
// "education".
type ResumeEntry struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// API talks to the content API. Requests carry no timeout and are never
// cancelled once in flight.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (a *API) getJSON(path string, out interface{}) error {
	resp, err := a.HTTPClient.Get(a.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *API) postJSON(path string, body interface{}, out interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := a.HTTPClient.Post(a.BaseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func (a *API) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, a.BaseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("DELETE %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (a *API) FetchProjects() ([]Project, error) {
	var projects []Project
	if err := a.getJSON("/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (a *API) FetchResume() ([]ResumeEntry, error) {
	var entries []ResumeEntry
	if err := a.getJSON("/api/resume", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddProject submits a new project and returns the id the store assigned.
func (a *API) AddProject(p Project) (uint, error) {
	var reply struct {
		ID uint `json:"id"`
	}
	resp, err := a.postJSON("/api/projects", p, &reply)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("POST /api/projects: unexpected status %d", resp.StatusCode)
	}
	return reply.ID, nil
}

// AddResumeEntry submits a new resume entry and returns its id.
func (a *API) AddResumeEntry(e ResumeEntry) (uint, error) {
	var reply struct {
		ID uint `json:"id"`
	}
	resp, err := a.postJSON("/api/resume", e, &reply)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("POST /api/resume: unexpected status %d", resp.StatusCode)
	}
	return reply.ID, nil
}

func (a *API) DeleteProject(id uint) error {
	return a.delete(fmt.Sprintf("/api/projects/%d", id))
}

func (a *API) DeleteResumeEntry(id uint) error {
	return a.delete(fmt.Sprintf("/api/resume/%d", id))
}

// Login checks the admin password. The returned token is opaque; no other
// call ever sends it.
func (a *API) Login(password string) (string, error) {
	var reply struct {
		Token string `json:"token"`
	}
	resp, err := a.postJSON("/api/admin/login", map[string]string{"password": password}, &reply)
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("POST /api/admin/login: unexpected status %d", resp.StatusCode)
	}
	return reply.Token, nil
}
