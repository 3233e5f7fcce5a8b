package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"anoa.com/redsocial/pkg/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const publicationImageFolder = "publications"

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type PublicationService interface {
	Create(ctx context.Context, authorID uuid.UUID, text string) (*model.Publication, error)
	// Feed pages through publications by everyone in the caller's
	// visibility scope, newest first.
	Feed(ctx context.Context, callerID uuid.UUID, page int) (*dto.PaginatedPublications, error)
	ByAuthor(ctx context.Context, authorID uuid.UUID, page int) (*dto.PaginatedPublications, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Publication, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	AttachImage(ctx context.Context, callerID, id uuid.UUID, fileName string, file io.Reader) (*model.Publication, error)
}

type publicationService struct {
	publications repository.PublicationRepository
	relations    RelationService
	images       storage.ImageStorage
	redisClient  *redis.Client
	rateLimit    time.Duration
}

func NewPublicationService(
	publications repository.PublicationRepository,
	relations RelationService,
	images storage.ImageStorage,
	redisClient *redis.Client,
	rateLimit time.Duration,
) PublicationService {
	return &publicationService{
		publications: publications,
		relations:    relations,
		images:       images,
		redisClient:  redisClient,
		rateLimit:    rateLimit,
	}
}

func (s *publicationService) Create(ctx context.Context, authorID uuid.UUID, text string) (*model.Publication, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("publication must have text: %w", apperror.ErrBadRequest)
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, authorID, "publication", s.rateLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("publishing too fast: %w", apperror.ErrRateLimitExceeded)
	}

	publication := &model.Publication{
		Text:   text,
		UserID: authorID,
	}

	if err := s.publications.Create(ctx, publication); err != nil {
		return nil, err
	}

	return publication, nil
}

func (s *publicationService) Feed(ctx context.Context, callerID uuid.UUID, page int) (*dto.PaginatedPublications, error) {
	scope, err := s.relations.VisibilityScope(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return s.pageByAuthors(ctx, scope, page)
}

func (s *publicationService) ByAuthor(ctx context.Context, authorID uuid.UUID, page int) (*dto.PaginatedPublications, error) {
	return s.pageByAuthors(ctx, []uuid.UUID{authorID}, page)
}

func (s *publicationService) pageByAuthors(ctx context.Context, authorIDs []uuid.UUID, page int) (*dto.PaginatedPublications, error) {
	if page < 1 {
		page = 1
	}

	publications, total, err := s.publications.FindByAuthors(ctx, authorIDs, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedPublications{
		TotalItems:   total,
		Publications: publications,
		Page:         page,
		ItemsPerPage: dto.ItemsPerPage,
		Pages:        dto.TotalPages(total, dto.ItemsPerPage),
	}, nil
}

func (s *publicationService) Get(ctx context.Context, id uuid.UUID) (*model.Publication, error) {
	publication, err := s.publications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("publication does not exist: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return publication, nil
}

func (s *publicationService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	deleted, err := s.publications.DeleteByIDAndAuthor(ctx, id, callerID)
	if err != nil {
		return err
	}

	// Zero rows means either no such publication or not the author; the
	// source treats both as "not deleted".
	if deleted == 0 {
		return fmt.Errorf("publication was not deleted: %w", apperror.ErrForbidden)
	}

	return nil
}

func (s *publicationService) AttachImage(ctx context.Context, callerID, id uuid.UUID, fileName string, file io.Reader) (*model.Publication, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExts[ext] {
		return nil, fmt.Errorf("invalid image extension %q: %w", ext, apperror.ErrBadRequest)
	}

	publication, err := s.publications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("publication does not exist: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if publication.UserID != callerID {
		return nil, fmt.Errorf("publication belongs to another user: %w", apperror.ErrForbidden)
	}

	ref, err := s.images.UploadImage(ctx, file, publicationImageFolder, fileName)
	if err != nil {
		return nil, err
	}

	if err := s.publications.UpdateFile(ctx, id, ref); err != nil {
		return nil, err
	}

	// Replaced images are orphans; drop them best effort.
	if publication.File != nil {
		if err := s.images.DeleteImage(ctx, publicationImageFolder, *publication.File); err != nil {
			log.Printf("failed to delete replaced image %s: %v", *publication.File, err)
		}
	}

	publication.File = &ref
	return publication, nil
}
