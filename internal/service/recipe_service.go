package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

type RecipeServiceInterface interface {
	DailyRecipes(ctx context.Context) ([]models.Recipe, error)
	GenerateFromCart(ctx context.Context, customerName string) (string, error)
}

// RecipeService serves canned recipe content behind a generator-shaped
// interface: calls take a context and a simulated latency, so callers are
// already written for a real upstream generator.
type RecipeService struct {
	cartRepo repositories.CartRepositoryInterface
	latency  time.Duration
	logger   *logger.Logger
}

// NewRecipeService creates a new RecipeService. Latency simulates the
// round-trip of a generation backend; zero disables the delay.
func NewRecipeService(cartRepo repositories.CartRepositoryInterface, latency time.Duration, log *logger.Logger) *RecipeService {
	return &RecipeService{
		cartRepo: cartRepo,
		latency:  latency,
		logger:   log.WithComponent("recipe_service"),
	}
}

// DailyRecipes returns the recipe-of-the-day carousel
func (s *RecipeService) DailyRecipes(ctx context.Context) ([]models.Recipe, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, len(dailyRecipes))
	copy(recipes, dailyRecipes)
	return recipes, nil
}

// GenerateFromCart produces a recipe suggestion from the customer's cart
// contents. The cart must not be empty; the recipe text itself is canned.
func (s *RecipeService) GenerateFromCart(ctx context.Context, customerName string) (string, error) {
	if customerName == "" {
		return "", fmt.Errorf("customer name is required")
	}

	items := s.cartRepo.Items(customerName)
	if len(items) == 0 {
		return "", fmt.Errorf("cart is empty")
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	s.logger.Info("Generating recipe from cart",
		"customer", customerName,
		"ingredients", strings.Join(names, ", "))

	if err := s.simulateLatency(ctx); err != nil {
		return "", err
	}
	return generatedRecipeText, nil
}

func (s *RecipeService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
