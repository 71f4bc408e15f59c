// Package daily keeps one nutrition-tracked menu per user per calendar day.
package daily

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/nutrition"
	"mealmate/internal/store"
)

var (
	ErrMissingFields = errors.New("date and meals are required")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD or RFC3339")
	ErrAlreadyExists = errors.New("a daily menu already exists for this date")
	ErrNotFound      = errors.New("daily menu not found")
)

type Store interface {
	FindByUserDate(ctx context.Context, user primitive.ObjectID, date time.Time) (models.DailyMenu, error)
	Insert(ctx context.Context, menu *models.DailyMenu) error
	Save(ctx context.Context, menu models.DailyMenu) error
}

// Input is a validated request: Meals is nil when the client omitted it.
type Input struct {
	Date  string
	Meals *models.Meals
}

type Service struct {
	menus   Store
	recipes nutrition.RecipeFinder
	now     func() time.Time
}

func NewService(menus Store, recipes nutrition.RecipeFinder) *Service {
	return &Service{menus: menus, recipes: recipes, now: time.Now}
}

// ParseDate accepts a calendar date or a timestamp and returns midnight UTC
// of that day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingFields
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (in Input) parse() (time.Time, models.Meals, error) {
	if strings.TrimSpace(in.Date) == "" || in.Meals == nil {
		return time.Time{}, models.Meals{}, ErrMissingFields
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return time.Time{}, models.Meals{}, err
	}
	return date, normalizeMeals(*in.Meals), nil
}

func normalizeMeals(m models.Meals) models.Meals {
	fix := func(entries []models.MealEntry) []models.MealEntry {
		out := make([]models.MealEntry, 0, len(entries))
		for _, e := range entries {
			e.Quantity = nutrition.EntryQuantity(e)
			out = append(out, e)
		}
		return out
	}
	return models.Meals{
		Breakfast: fix(m.Breakfast),
		Lunch:     fix(m.Lunch),
		Dinner:    fix(m.Dinner),
		Snack:     fix(m.Snack),
	}
}

// Create stores a new daily menu with freshly computed totals. A second menu
// for the same user and day is refused, never merged.
func (s *Service) Create(ctx context.Context, principal auth.Principal, in Input) (models.DailyMenu, error) {
	date, meals, err := in.parse()
	if err != nil {
		return models.DailyMenu{}, err
	}

	_, err = s.menus.FindByUserDate(ctx, principal.AccountID, date)
	if err == nil {
		return models.DailyMenu{}, ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.DailyMenu{}, err
	}

	totals, err := nutrition.Compute(ctx, s.recipes, meals)
	if err != nil {
		return models.DailyMenu{}, err
	}

	now := s.now()
	menu := models.DailyMenu{
		User:      principal.AccountID,
		Date:      date,
		Meals:     meals,
		CreatedAt: now,
		UpdatedAt: now,
	}
	totals.Apply(&menu)

	if err := s.menus.Insert(ctx, &menu); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.DailyMenu{}, ErrAlreadyExists
		}
		return models.DailyMenu{}, err
	}

	logrus.WithFields(logrus.Fields{
		"area":     "DAILY",
		"user":     principal.AccountID.Hex(),
		"date":     date.Format("2006-01-02"),
		"calories": menu.TotalCalories,
	}).Info("daily menu created")
	return menu, nil
}

// Update replaces the meals of an existing daily menu and recomputes every
// total from scratch.
func (s *Service) Update(ctx context.Context, principal auth.Principal, in Input) (models.DailyMenu, error) {
	date, meals, err := in.parse()
	if err != nil {
		return models.DailyMenu{}, err
	}

	menu, err := s.menus.FindByUserDate(ctx, principal.AccountID, date)
	if errors.Is(err, store.ErrNotFound) {
		return models.DailyMenu{}, ErrNotFound
	}
	if err != nil {
		return models.DailyMenu{}, err
	}

	totals, err := nutrition.Compute(ctx, s.recipes, meals)
	if err != nil {
		return models.DailyMenu{}, err
	}

	menu.Meals = meals
	totals.Apply(&menu)
	menu.UpdatedAt = s.now()

	if err := s.menus.Save(ctx, menu); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.DailyMenu{}, ErrNotFound
		}
		return models.DailyMenu{}, err
	}
	return menu, nil
}

func (s *Service) Get(ctx context.Context, principal auth.Principal, rawDate string) (models.DailyMenu, error) {
	date, err := ParseDate(rawDate)
	if err != nil {
		return models.DailyMenu{}, err
	}

	menu, err := s.menus.FindByUserDate(ctx, principal.AccountID, date)
	if errors.Is(err, store.ErrNotFound) {
		return models.DailyMenu{}, ErrNotFound
	}
	return menu, err
}
