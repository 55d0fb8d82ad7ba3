package usecase

import (
	"context"
	"time"

	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/service/analysis"
)

// AnalysisService is the outbound dream interpretation capability consumed
// by the analyze use case
type AnalysisService interface {
	Analyze(ctx context.Context, content string, date time.Time) (*analysis.Result, error)
}

type UseCases struct {
	repo     interfaces.Repository
	analyzer AnalysisService
	auth     interfaces.Authenticator

	Dream   *DreamUseCase
	Analyze *AnalyzeUseCase
	Session *SessionUseCase
}

type Option func(*UseCases)

// WithAnalysisService enables the analyze use case
func WithAnalysisService(svc AnalysisService) Option {
	return func(uc *UseCases) {
		uc.analyzer = svc
	}
}

// WithAuthenticator enables the lock session gate
func WithAuthenticator(auth interfaces.Authenticator) Option {
	return func(uc *UseCases) {
		uc.auth = auth
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Dream = NewDreamUseCase(repo)
	uc.Analyze = NewAnalyzeUseCase(repo, uc.analyzer)
	uc.Session = NewSessionUseCase(uc.auth)

	return uc
}
