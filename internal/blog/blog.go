// Package blog manages blog posts and their categories.
package blog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
	"mealmate/internal/slug"
	"mealmate/internal/store"
)

var (
	ErrNotFound         = errors.New("blog not found")
	ErrCategoryNotFound = errors.New("blog category not found")
	ErrNoIDs            = errors.New("ids must be a non-empty list")
)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing or invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) FieldErrors() map[string]string { return e.Fields }

type Store interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error)
	ViewBySlug(ctx context.Context, slug string) (models.Blog, error)
	List(ctx context.Context, q store.ListQuery) ([]models.Blog, int64, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, blog *models.Blog) error
	Replace(ctx context.Context, blog models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type Input struct {
	Category   string
	Title      string
	Summary    string
	CoverImage string
	Sections   []models.BlogSection
	Author     string
	Tags       []string
	Date       string
}

func (in Input) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Category) == "" {
		fields["category"] = "category is required"
	}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(in.Summary) == "" {
		fields["summary"] = "summary is required"
	}
	if strings.TrimSpace(in.Date) == "" {
		fields["date"] = "date is required"
	}
	if len(in.Sections) == 0 {
		fields["sections"] = "at least one section is required"
	} else {
		for _, section := range in.Sections {
			if strings.TrimSpace(section.Text) == "" {
				fields["sections"] = "every section needs text"
				break
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type Service struct {
	blogs Store
	now   func() time.Time
}

func NewService(blogs Store) *Service {
	return &Service{blogs: blogs, now: time.Now}
}

func (s *Service) apply(b *models.Blog, in Input) {
	b.Category = strings.TrimSpace(in.Category)
	b.Title = strings.TrimSpace(in.Title)
	b.Summary = strings.TrimSpace(in.Summary)
	b.CoverImage = strings.TrimSpace(in.CoverImage)
	b.Sections = in.Sections
	b.Author = strings.TrimSpace(in.Author)
	b.Tags = models.NormalizeStringList(in.Tags)
	b.Date = strings.TrimSpace(in.Date)
	b.UpdatedAt = s.now()
}

func (s *Service) Create(ctx context.Context, in Input) (models.Blog, error) {
	if err := in.Validate(); err != nil {
		return models.Blog{}, err
	}

	var b models.Blog
	s.apply(&b, in)
	b.CreatedAt = b.UpdatedAt

	blogSlug, err := uniqueSlug(ctx, b.Title, "blog", primitive.NilObjectID, s.blogs.SlugExists)
	if err != nil {
		return models.Blog{}, err
	}
	b.Slug = blogSlug

	if err := s.blogs.Insert(ctx, &b); err != nil {
		return models.Blog{}, err
	}
	logrus.WithFields(logrus.Fields{"area": "BLOG", "id": b.ID.Hex(), "slug": b.Slug}).Info("blog created")
	return b, nil
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in Input) (models.Blog, error) {
	if err := in.Validate(); err != nil {
		return models.Blog{}, err
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}

	oldTitle := b.Title
	s.apply(&b, in)
	if b.Title != oldTitle {
		blogSlug, err := uniqueSlug(ctx, b.Title, "blog", b.ID, s.blogs.SlugExists)
		if err != nil {
			return models.Blog{}, err
		}
		b.Slug = blogSlug
	}

	if err := s.blogs.Replace(ctx, b); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Blog{}, ErrNotFound
		}
		return models.Blog{}, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Blog{}, ErrNotFound
	}
	return b, err
}

// GetBySlug returns the post and counts a view.
func (s *Service) GetBySlug(ctx context.Context, blogSlug string) (models.Blog, error) {
	b, err := s.blogs.ViewBySlug(ctx, strings.ToLower(strings.TrimSpace(blogSlug)))
	if errors.Is(err, store.ErrNotFound) {
		return models.Blog{}, ErrNotFound
	}
	return b, err
}

func (s *Service) List(ctx context.Context, q store.ListQuery) ([]models.Blog, int64, error) {
	return s.blogs.List(ctx, q)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.blogs.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}
	return s.blogs.DeleteMany(ctx, ids)
}

func uniqueSlug(ctx context.Context, source, fallback string, exclude primitive.ObjectID, exists func(context.Context, string, primitive.ObjectID) (bool, error)) (string, error) {
	base := slug.Make(source)
	if base == "" {
		base = fallback
	}
	return slug.Unique(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return exists(ctx, candidate, exclude)
	})
}
