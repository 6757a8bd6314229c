package service

import (
	"context"
	"errors"
	"fmt"

	"hospital-assist-service/internal/config"
)

// ErrInferenceNotConfigured is returned before any storage or network
// activity when the watsonx credentials are missing from the config.
var ErrInferenceNotConfigured = errors.New("WATSONX_URL and/or WATSONX_APIKEY environment variables are not set")

// TextGenerator is the inference surface the assist flow depends on.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type AssistService struct {
	hospitalService *HospitalService
	generator       TextGenerator
	cfg             config.WatsonxConfig
}

func NewAssistService(hospitalService *HospitalService, generator TextGenerator, cfg config.WatsonxConfig) *AssistService {
	return &AssistService{
		hospitalService: hospitalService,
		generator:       generator,
		cfg:             cfg,
	}
}

// FindDoctorPhone aggregates the hospital data, builds the extraction prompt
// and forwards it to the model. The generated text is returned verbatim: the
// contract makes no guarantee it looks like a phone number. One linear
// request/response; no retries, no caching.
func (s *AssistService) FindDoctorPhone(ctx context.Context, userQuery string, hospitalID uint) (string, error) {
	if s.cfg.URL == "" || s.cfg.APIKey == "" {
		return "", ErrInferenceNotConfigured
	}

	detail, err := s.hospitalService.GetHospitalDetails(hospitalID)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve hospital data: %w", err)
	}

	prompt, err := BuildPhoneLookupPrompt(userQuery, detail)
	if err != nil {
		return "", err
	}

	return s.generator.GenerateText(ctx, prompt)
}
