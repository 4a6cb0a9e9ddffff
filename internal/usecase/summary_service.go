package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-recap/internal/domain/recap"
	"github.com/riskibarqy/match-recap/internal/grounding"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
)

type SummaryConfig struct {
	MaxTokens   int
	Temperature float64
}

func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{MaxTokens: 1800, Temperature: 0.2}
}

type SummariseRoundInput struct {
	Season string
	Round  int
	Angle  string
}

type RoundSummary struct {
	Season     string
	Round      int
	Angle      string
	Headline   string
	Bullets    []string
	Body       string
	Model      string
	Facts      []grounding.Fact
	Citations  []string
	Ungrounded []string
}

// SummaryService generates a round recap and checks its figures against the facts panel.
type SummaryService struct {
	contexts  *RoundContextService
	generator recap.Generator
	cfg       SummaryConfig
	logger    *logging.Logger
}

// NewSummaryService accepts a nil generator; SummariseRound then reports ErrDependencyUnavailable.
func NewSummaryService(contexts *RoundContextService, generator recap.Generator, cfg SummaryConfig, logger *logging.Logger) *SummaryService {
	if logger == nil {
		logger = logging.Default()
	}
	def := DefaultSummaryConfig()
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = def.Temperature
	}

	return &SummaryService{
		contexts:  contexts,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *SummaryService) SummariseRound(ctx context.Context, input SummariseRoundInput) (RoundSummary, error) {
	input.Season = strings.TrimSpace(input.Season)
	input.Angle = strings.TrimSpace(input.Angle)
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.SummariseRound", seasonAttrs(input.Season, input.Round)...)
	defer span.End()

	if err := validateSeasonRound(input.Season, input.Round); err != nil {
		return RoundSummary{}, err
	}
	if s.generator == nil {
		return RoundSummary{}, fmt.Errorf("%w: recap generator is not configured", ErrDependencyUnavailable)
	}

	rc, err := s.contexts.BuildRoundContext(ctx, input.Season, input.Round)
	if err != nil {
		return RoundSummary{}, err
	}

	facts := grounding.BuildFactsPanel(rc)
	headline, bullets := grounding.Headline(rc)

	prompt, err := buildRecapPrompt(rc, input.Angle, s.cfg.MaxTokens, s.cfg.Temperature)
	if err != nil {
		return RoundSummary{}, err
	}

	completion, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		// 4xx from the model API will not succeed on retry.
		if errors.Is(err, ErrUpstreamRejected) {
			return RoundSummary{}, fmt.Errorf("generate recap: %w", err)
		}
		return RoundSummary{}, fmt.Errorf("%w: generate recap: %v", ErrDependencyUnavailable, err)
	}

	ungrounded := grounding.UngroundedNumbers(completion.Text, facts)
	if len(ungrounded) > 0 {
		s.logger.WarnContext(ctx, "recap cites ungrounded numbers",
			"season", input.Season,
			"round", input.Round,
			"tokens", ungrounded,
		)
	}

	return RoundSummary{
		Season:     input.Season,
		Round:      input.Round,
		Angle:      input.Angle,
		Headline:   headline,
		Bullets:    bullets,
		Body:       grounding.AppendOmissionNote(completion.Text, ungrounded),
		Model:      completion.Model,
		Facts:      facts,
		Citations:  grounding.Citations(facts),
		Ungrounded: ungrounded,
	}, nil
}
