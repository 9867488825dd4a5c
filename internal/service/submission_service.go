package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usecase-market/internal/model"
	"usecase-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// centsPerUnit converts a decimal currency amount to minor units.
var centsPerUnit = decimal.NewFromInt(100)

// submissionService implements SubmissionService.
// Prices are stored canonically as integer minor units; the decimal form
// accepted from the form is converted exactly once at this boundary.
type submissionService struct {
	useCaseRepo repository.UseCaseRepository
	logger      zerolog.Logger
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(useCaseRepo repository.UseCaseRepository, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		useCaseRepo: useCaseRepo,
		logger:      logger.With().Str("service", "submission").Logger(),
	}
}

// Submit validates and normalises a submission draft and creates the listing.
func (s *submissionService) Submit(ctx context.Context, sellerID string, req *model.SubmissionRequest) (*model.UseCase, error) {
	if sellerID == "" {
		return nil, model.ErrAuthRequired
	}

	if err := validateSubmission(req); err != nil {
		s.logger.Warn().Err(err).Str("seller_id", sellerID).Msg("submission rejected")
		return nil, err
	}

	priceCents, err := priceToCents(req.Price)
	if err != nil {
		s.logger.Warn().Str("price", req.Price).Str("seller_id", sellerID).Msg("invalid submission price")
		return nil, model.ErrInvalidPrice
	}

	status := model.UseCaseStatusDraft
	if req.Status == string(model.UseCaseStatusPublished) {
		status = model.UseCaseStatusPublished
	}

	now := time.Now()
	useCase := &model.UseCase{
		ID:                  uuid.NewString(),
		Title:               strings.TrimSpace(req.Title),
		Description:         strings.TrimSpace(req.Description),
		ImplementationGuide: strings.TrimSpace(req.ImplementationGuide),
		Category:            strings.TrimSpace(req.Category),
		PriceCents:          priceCents,
		Tags:                splitList(req.Tags),
		ToolsRequired:       splitList(req.ToolsRequired),
		Status:              status,
		Seller:              model.Seller{ID: sellerID},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.useCaseRepo.Create(ctx, useCase); err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to create listing")
		return nil, fmt.Errorf("failed to submit use case: %w", err)
	}

	s.logger.Info().
		Str("use_case_id", useCase.ID).
		Str("seller_id", sellerID).
		Str("status", string(useCase.Status)).
		Int64("price_cents", priceCents).
		Msg("use case submitted")

	return useCase, nil
}

// validateSubmission checks the required fields before any outbound call.
func validateSubmission(req *model.SubmissionRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Request body is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Description is required")
	}
	if strings.TrimSpace(req.Price) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Price is required")
	}
	if req.Status != "" &&
		req.Status != string(model.UseCaseStatusDraft) &&
		req.Status != string(model.UseCaseStatusPublished) {
		return model.NewDomainError(model.ErrCodeMissingField, "Status must be draft or published")
	}
	return nil
}

// priceToCents converts a decimal price string ("49.99") to minor units
// via round(value x 100).
func priceToCents(price string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return 0, err
	}
	if d.IsNegative() || d.IsZero() {
		return 0, fmt.Errorf("price must be positive")
	}
	return d.Mul(centsPerUnit).Round(0).IntPart(), nil
}

// splitList normalises a comma-separated field into trimmed, non-empty
// entries.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
