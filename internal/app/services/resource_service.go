package services

import (
	"context"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
	"github.com/vikass-pal/campusconnect/internal/pkg/filestorage"
	"github.com/vikass-pal/campusconnect/internal/pkg/helpers"
)

// ResourceService defines the operations on study resources.
type ResourceService interface {
	GetAllResources(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error)
	GetResourceByID(ctx context.Context, id string) (models.Resource, error)
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, authorID string) (models.Resource, error)
	DeleteResource(ctx context.Context, id, userID string, isAdmin bool) error
	ToggleLike(ctx context.Context, id, userID string) (models.Resource, error)
	AddComment(ctx context.Context, id, authorID, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, id, commentID, userID string, isAdmin bool) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	store       *store.Store
	fileStorage *filestorage.LocalStorage
	logger      zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(st *store.Store, fileStorage *filestorage.LocalStorage, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		store:       st,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetAllResources returns a filtered, sorted page of resources.
func (s *resourceServiceImpl) GetAllResources(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error) {
	s.logger.Debug().Interface("filter", filter).Msg("Listing resources")

	filtered := store.FilterResources(s.store.Resources.Snapshot(), store.FilterSpec{
		Query:  filter.Query,
		Type:   filter.Type,
		Tags:   filter.Tags,
		SortBy: store.SortOrder(filter.SortBy),
	})

	total := len(filtered)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.PageSize, total)

	return &dto.ResourceListResponse{
		Resources:  filtered[start:end],
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetResourceByID returns a single resource.
func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, id string) (models.Resource, error) {
	resource, err := s.store.Resources.GetByID(id)
	if err != nil {
		return models.Resource{}, apperrors.NewNotFoundError("Resource not found")
	}
	return resource, nil
}

// CreateResource validates the submission, stores the uploaded file for pdf
// resources and inserts the new entity.
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, authorID string) (models.Resource, error) {
	author, err := s.store.Users.GetByID(authorID)
	if err != nil {
		return models.Resource{}, apperrors.NewNotFoundError("Author not found")
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return models.Resource{}, apperrors.NewValidationError("title must not be empty")
	}
	if description == "" {
		return models.Resource{}, apperrors.NewValidationError("description must not be empty")
	}

	resourceType := models.ResourceType(req.Type)
	if !resourceType.IsValid() {
		return models.Resource{}, apperrors.NewValidationError("type must be one of pdf, link, notes")
	}

	now := time.Now()
	resource := models.Resource{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Type:        resourceType,
		Tags:        splitTags(req.Tags),
		Author:      author.AuthorRef(),
		Likes:       []string{},
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch resourceType {
	case models.ResourceTypePDF:
		if file == nil {
			return models.Resource{}, apperrors.NewValidationError("pdf resources require a file")
		}
		fileURL, err := s.fileStorage.SaveFile(file)
		if err != nil {
			s.logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to store resource file")
			return models.Resource{}, err
		}
		resource.FileURL = fileURL
	case models.ResourceTypeLink:
		link := strings.TrimSpace(req.URL)
		if link == "" {
			return models.Resource{}, apperrors.NewValidationError("link resources require a url")
		}
		if _, err := url.ParseRequestURI(link); err != nil {
			return models.Resource{}, apperrors.NewValidationError("link resources require a valid url")
		}
		resource.LinkURL = link
	case models.ResourceTypeNotes:
		resource.Content = req.Content
	}

	if err := s.store.Resources.Insert(resource); err != nil {
		return models.Resource{}, err
	}

	s.logger.Info().Str("resourceId", resource.ID).Str("type", req.Type).Msg("Resource created")
	return resource, nil
}

// DeleteResource removes a resource and, with it, its comments. Only the
// owning author or an admin may delete.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id, userID string, isAdmin bool) error {
	resource, err := s.store.Resources.GetByID(id)
	if err != nil {
		return apperrors.NewNotFoundError("Resource not found")
	}

	if resource.Author.ID != userID && !isAdmin {
		return apperrors.NewForbiddenError("Only the author can delete this resource")
	}

	if err := s.store.Resources.Remove(id); err != nil {
		return err
	}

	if resource.FileURL != "" {
		if err := s.fileStorage.DeleteFile(resource.FileURL); err != nil {
			s.logger.Error().Err(err).Str("resourceId", id).Msg("Failed to delete stored file")
		}
	}

	s.logger.Info().Str("resourceId", id).Msg("Resource deleted")
	return nil
}

// ToggleLike flips the caller's membership in the likes set and returns the
// fresh post-mutation resource.
func (s *resourceServiceImpl) ToggleLike(ctx context.Context, id, userID string) (models.Resource, error) {
	updated, err := s.store.Resources.Update(id, func(resource *models.Resource) error {
		resource.Likes, _ = toggleMember(resource.Likes, userID)
		return nil
	})
	if err != nil {
		return models.Resource{}, err
	}
	return updated, nil
}

// AddComment appends a new comment to the resource and returns it.
func (s *resourceServiceImpl) AddComment(ctx context.Context, id, authorID, content string) (models.Comment, error) {
	author, err := s.store.Users.GetByID(authorID)
	if err != nil {
		return models.Comment{}, apperrors.NewNotFoundError("Comment author not found")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.Comment{}, apperrors.NewValidationError("comment content must not be empty")
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		Content:   trimmed,
		Author:    author.AuthorRef(),
		CreatedAt: time.Now(),
	}

	if _, err := s.store.Resources.Update(id, func(resource *models.Resource) error {
		resource.Comments = append(resource.Comments, comment)
		return nil
	}); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// DeleteComment removes a comment by id. A missing parent or comment is
// reported as NotFound.
func (s *resourceServiceImpl) DeleteComment(ctx context.Context, id, commentID, userID string, isAdmin bool) error {
	_, err := s.store.Resources.Update(id, func(resource *models.Resource) error {
		for i, comment := range resource.Comments {
			if comment.ID != commentID {
				continue
			}
			if comment.Author.ID != userID && !isAdmin {
				return apperrors.NewForbiddenError("Only the comment author can delete it")
			}
			resource.Comments = append(resource.Comments[:i], resource.Comments[i+1:]...)
			return nil
		}
		return apperrors.NewNotFoundError("Comment not found")
	})
	return err
}

// splitTags turns the comma-separated form field into a trimmed tag list.
func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
