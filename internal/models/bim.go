package models

import "time"

type ModelStatus string

const (
	// ModelStatusUploading marks a model whose simulated upload has not
	// completed yet.
	ModelStatusUploading ModelStatus = "uploading"
	ModelStatusActive    ModelStatus = "active"
	ModelStatusReview    ModelStatus = "review"
)

// BIMModel is one entry of the 3D model gallery. Uploads are simulated: a
// new model starts as uploading and becomes active after a bounded delay.
type BIMModel struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Discipline    string      `json:"discipline,omitempty"`
	Version       string      `json:"version,omitempty"`
	Thumbnail     string      `json:"thumbnail,omitempty"`
	Status        ModelStatus `json:"status"`
	Conflicts     int         `json:"conflicts"`
	Collaborators int         `json:"collaborators"`
	LastUpdated   time.Time   `json:"lastUpdated"`
}
