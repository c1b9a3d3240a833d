package main

// handlers.go request handlers for the content API

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var c = cache.New(5*time.Minute, 10*time.Minute)

const (
	cacheKeyProjects = "projects"
	cacheKeyResume   = "resume"
)

func getCachedData(key string, fetchFunc func() (interface{}, error)) (interface{}, error) {
	if data, found := c.Get(key); found {
		return data, nil
	}

	data, err := fetchFunc()
	if err != nil {
		return nil, err
	}

	c.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func GetProjects(w http.ResponseWriter, r *http.Request) {
	data, err := getCachedData(cacheKeyProjects, func() (interface{}, error) {
		log.Println("Fetching projects from database")
		projects, err := listProjects()
		if err != nil {
			return nil, err
		}
		return projects, nil
	})
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	// No schema validation on purpose: absent or unknown fields pass
	// through and store as zero values.
	var project Project
	json.NewDecoder(r.Body).Decode(&project)

	id, err := insertProject(&project)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	c.Delete(cacheKeyProjects)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]uint{"id": id})
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/projects/")
	if err := deleteProject(id); err != nil {
		log.Printf("Error deleting project %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	c.Delete(cacheKeyProjects)

	// Deleting an id that was never there still reports success.
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func GetResume(w http.ResponseWriter, r *http.Request) {
	data, err := getCachedData(cacheKeyResume, func() (interface{}, error) {
		log.Println("Fetching resume entries from database")
		entries, err := listResumeEntries()
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		log.Printf("Error fetching resume entries: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func CreateResumeEntry(w http.ResponseWriter, r *http.Request) {
	var entry ResumeEntry
	json.NewDecoder(r.Body).Decode(&entry)

	id, err := insertResumeEntry(&entry)
	if err != nil {
		log.Printf("Error creating resume entry: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	c.Delete(cacheKeyResume)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]uint{"id": id})
}

func DeleteResumeEntry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/resume/")
	if err := deleteResumeEntry(id); err != nil {
		log.Printf("Error deleting resume entry %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	c.Delete(cacheKeyResume)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Login checks the admin password against the configured constant. On match
// it hands back a signed token. Nothing else in the API ever looks at the
// token; it is not a security boundary.
func Login(w http.ResponseWriter, r *http.Request) {
	var loginData struct {
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&loginData)

	if loginData.Password != envOr("ADMIN_PASSWORD", defaultAdminPassword) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(envOr("JWT_SECRET", "your-secret-key")))
	if err != nil {
		log.Printf("Error generating token: %v", err)
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": tokenString})
}
