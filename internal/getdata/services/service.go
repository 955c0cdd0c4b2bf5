package services

import (
	"context"
	"fmt"
	"strings"

	"go-datasvc/internal/getdata/dto"

	"github.com/go-playground/validator/v10"
)

// Service implements the four legacy GetDataService operations. All
// operations are stateless and idempotent; the DTOs they hand out are
// per-request value objects.
type Service struct {
	validate      *validator.Validate
	guestFallback bool
}

func NewService(guestFallback bool) *Service {
	return &Service{
		validate:      dto.NewValidator(),
		guestFallback: guestFallback,
	}
}

// Validator exposes the configured validator for boundary checks
func (s *Service) Validator() *validator.Validate {
	return s.validate
}

// HelloWorld returns the fixed legacy greeting
func (s *Service) HelloWorld(ctx context.Context) string {
	return "Hello World"
}

// GetData returns a greeting interpolating the caller-supplied name.
// Blank names substitute "Guest" when the fallback is enabled; with the
// fallback off the legacy "Hello, !" literal is reproduced.
func (s *Service) GetData(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" && s.guestFallback {
		name = "Guest"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// GetDataSet returns the canonical two-row sample dataset
func (s *Service) GetDataSet(ctx context.Context) (*dto.SampleDataResponse, error) {
	response := NewSampleDataResponse()

	// Responses are checked before crossing the service boundary.
	if err := dto.ValidateAndError(s.validate, response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetReport validates the report input and returns the canonical dataset
// enriched with report context. The report-specific generation logic was
// a stub in the legacy service and remains one here.
func (s *Service) GetReport(ctx context.Context, input *dto.ReportInput) (*dto.ReportDataResponse, error) {
	if input == nil {
		return nil, &dto.ValidationError{Errors: []string{"input is required"}}
	}

	input.ApplyDefaults()

	if messages := dto.ValidateStruct(s.validate, input); len(messages) > 0 {
		return nil, &dto.ValidationError{Errors: messages}
	}

	response := NewReportDataResponse(input.ReportName)

	if err := dto.ValidateAndError(s.validate, response); err != nil {
		return nil, err
	}

	return response, nil
}
