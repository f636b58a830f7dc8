package models

import "time"

// ResourceType enumerates the kinds of study resources.
type ResourceType string

const (
	ResourceTypePDF   ResourceType = "pdf"
	ResourceTypeLink  ResourceType = "link"
	ResourceTypeNotes ResourceType = "notes"
)

// IsValid reports whether t is one of the known resource types.
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceTypePDF, ResourceTypeLink, ResourceTypeNotes:
		return true
	}
	return false
}

// Resource defines a shared study resource. The payload field that applies
// depends on Type: FileURL for pdf, LinkURL for link, Content for notes.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" example:"Complete React.js Cheat Sheet"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type" example:"pdf" enums:"pdf,link,notes"`
	FileURL     string       `json:"fileUrl,omitempty"` // Stored file reference, pdf only
	LinkURL     string       `json:"linkUrl,omitempty"` // External URL, link only
	Content     string       `json:"content,omitempty"` // Free text, notes only
	Tags        []string     `json:"tags"`
	Author      Author       `json:"author"` // Immutable after creation
	Likes       []string     `json:"likes"`  // Set of liker user ids
	Comments    []Comment    `json:"comments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// EntityID implements store.Entity.
func (r Resource) EntityID() string { return r.ID }

// Clone returns a deep copy so store snapshots never alias caller memory.
func (r Resource) Clone() Resource {
	cp := r
	cp.Tags = append([]string(nil), r.Tags...)
	cp.Likes = append([]string(nil), r.Likes...)
	cp.Comments = cloneComments(r.Comments)
	return cp
}

// Touch returns a copy with UpdatedAt refreshed.
func (r Resource) Touch(t time.Time) Resource {
	r.UpdatedAt = t
	return r
}
