// models.go this is our database models
package main

// Project is one portfolio item. Category is an open string; the client
// groups known values (Featured, Web, Creative) into rows and everything
// else implicitly under "other".
type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// ResumeEntry is one experience or education item. Type is an open string;
// "experience" and "education" are the values the client groups by.
type ResumeEntry struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Setting is a reserved key-value table. Nothing reads or writes it yet.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}

// Recognized category and type values. Advisory only, nothing enforces them.
const (
	CategoryFeatured = "Featured"
	CategoryWeb      = "Web"
	CategoryCreative = "Creative"

	TypeExperience = "experience"
	TypeEducation  = "education"
)
