package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"
)

// outfitService implements the OutfitService interface
type outfitService struct {
	itemRepository    clothing.ClothingItemRepository
	profileRepository profiles.ProfileRepository
	weatherService    weather.WeatherService
	stylist           outfits.Stylist
	logger            logger.Logger
}

// NewOutfitService creates a new instance of OutfitService
func NewOutfitService(
	itemRepository clothing.ClothingItemRepository,
	profileRepository profiles.ProfileRepository,
	weatherService weather.WeatherService,
	stylist outfits.Stylist,
	logger logger.Logger,
) (outfits.OutfitService, error) {
	return &outfitService{
		itemRepository:    itemRepository,
		profileRepository: profileRepository,
		weatherService:    weatherService,
		stylist:           stylist,
		logger:            logger,
	}, nil
}

// Generate runs the pipeline wardrobe, profile, weather, prompt, stylist and reply validation.
func (s *outfitService) Generate(ctx context.Context, userID, city string) (*outfits.Suggestion, error) {
	suggestion, err := s.generate(ctx, userID, city)
	if err != nil {
		metrics.CountOutfitGeneration(metrics.ResultError)
		return nil, err
	}
	metrics.CountOutfitGeneration(metrics.ResultSuccess)
	return suggestion, nil
}

// preparedOutfit is everything known before the stylist is asked
type preparedOutfit struct {
	items   []*clothing.ClothingItem
	weather outfits.WeatherSummary
	prompt  string
}

func (s *outfitService) prepare(ctx context.Context, userID, city string) (*preparedOutfit, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = outfits.DefaultCity
	}

	items, err := s.wardrobe(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, outfits.ErrEmptyWardrobe
	}

	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profiles.ErrProfileNotFound) {
			s.logger.Warn("continuing without profile", "user_id", userID, "error", err)
		}
		profile = nil
	}

	report, err := s.weatherService.Current(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for %q: %w", city, err)
	}

	reportCity := report.City
	if reportCity == "" {
		reportCity = city
	}

	prompt := outfits.BuildPrompt(items, profile, outfits.PromptWeather{
		City:        reportCity,
		Temperature: report.Temperature,
		Unit:        report.Unit,
		Condition:   report.Condition,
		Description: report.Description,
	})

	return &preparedOutfit{
		items: items,
		weather: outfits.WeatherSummary{
			City:        reportCity,
			Temperature: report.Temperature,
			Unit:        report.Unit,
			Condition:   report.Condition,
		},
		prompt: prompt,
	}, nil
}

// Prompt returns the prompt Generate would send for the same user and city
func (s *outfitService) Prompt(ctx context.Context, userID, city string) (string, error) {
	prepared, err := s.prepare(ctx, userID, city)
	if err != nil {
		return "", err
	}
	return prepared.prompt, nil
}

func (s *outfitService) generate(ctx context.Context, userID, city string) (*outfits.Suggestion, error) {
	prepared, err := s.prepare(ctx, userID, city)
	if err != nil {
		return nil, err
	}

	text, err := s.stylist.Complete(ctx, prepared.prompt)
	if err != nil {
		return nil, fmt.Errorf("stylist request failed: %w", err)
	}

	reply, err := outfits.ParseReply(text, prepared.items)
	if err != nil {
		s.logger.Error("unusable stylist reply", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("outfit generated",
		"user_id", userID,
		"city", prepared.weather.City,
		"wardrobe_size", len(prepared.items),
		"suggested", len(reply.ItemIDs))

	return &outfits.Suggestion{
		ItemIDs:     reply.ItemIDs,
		Items:       reply.Items,
		Explanation: reply.Explanation,
		Weather:     prepared.weather,
	}, nil
}

// FindGaps reports which essential categories the wardrobe lacks
func (s *outfitService) FindGaps(ctx context.Context, userID string) (*outfits.GapReport, error) {
	items, err := s.wardrobe(ctx, userID)
	if err != nil {
		return nil, err
	}
	return outfits.AnalyzeGaps(items), nil
}

func (s *outfitService) wardrobe(ctx context.Context, userID string) ([]*clothing.ClothingItem, error) {
	items, err := s.itemRepository.List(ctx, userID, clothing.NewClothingItemQuery())
	if err != nil {
		s.logger.Error("failed to fetch wardrobe", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", outfits.ErrWardrobeUnavailable, err)
	}
	return items, nil
}
