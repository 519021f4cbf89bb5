package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	accountRepository  repository.AccountRepository
	repRepository      repository.RepRepository
	dealRepository     repository.DealRepository
	activityRepository repository.ActivityRepository
	targetRepository   repository.TargetRepository
	policy             domain.RiskPolicy
}

func NewService(
	accountRepo repository.AccountRepository,
	repRepo repository.RepRepository,
	dealRepo repository.DealRepository,
	activityRepo repository.ActivityRepository,
	targetRepo repository.TargetRepository,
	policy domain.RiskPolicy,
) Reporter {
	return &Service{
		accountRepository:  accountRepo,
		repRepository:      repRepo,
		dealRepository:     dealRepo,
		activityRepository: activityRepo,
		targetRepository:   targetRepo,
		policy:             policy.WithDefaults(),
	}
}

func (s *Service) storeError(ctx context.Context, report string, err error) error {
	log.ForContext(ctx).
		WithError(err).
		WithField("report_name", report).
		Errorf("Erro ao consultar registros para o relatório %s", report)

	return NewReportError(ErrStoreUnavailable, apiErrors.ErrDatabaseOperation, report, err.Error())
}

func (s *Service) GetSummary(ctx context.Context, now time.Time) (*domain.Summary, error) {
	wonDeals, err := s.dealRepository.ListDeals(ctx, domain.DealFilter{Statuses: []domain.DealStatus{domain.DealStatusWon}})
	if err != nil {
		return nil, s.storeError(ctx, ReportSummary, err)
	}

	targets, err := s.targetRepository.ListTargets(ctx)
	if err != nil {
		return nil, s.storeError(ctx, ReportSummary, err)
	}

	return domain.CalculateSummary(wonDeals, targets, now), nil
}

func (s *Service) GetDrivers(ctx context.Context) (*domain.Drivers, error) {
	deals, err := s.dealRepository.ListDeals(ctx, domain.DealFilter{})
	if err != nil {
		return nil, s.storeError(ctx, ReportDrivers, err)
	}

	return domain.CalculateDrivers(deals), nil
}

func (s *Service) GetRiskFactors(ctx context.Context, now time.Time) (*domain.RiskFactors, error) {
	openDeals, err := s.dealRepository.ListDeals(ctx, domain.DealFilter{Statuses: []domain.DealStatus{domain.DealStatusOpen}})
	if err != nil {
		return nil, s.storeError(ctx, ReportRiskFactors, err)
	}

	reps, err := s.repRepository.ListReps(ctx)
	if err != nil {
		return nil, s.storeError(ctx, ReportRiskFactors, err)
	}

	counts, err := s.dealRepository.CountDealsByRepAndStatus(ctx, domain.ClosedDealStatuses)
	if err != nil {
		return nil, s.storeError(ctx, ReportRiskFactors, err)
	}

	accounts, err := s.accountRepository.ListAccounts(ctx)
	if err != nil {
		return nil, s.storeError(ctx, ReportRiskFactors, err)
	}

	// Um dia de folga no corte: a data é comparada como texto no banco e
	// timestamps com fuso podem cair no dia anterior. O corte exato é aplicado no cálculo.
	dateFrom := domain.LowActivityCutoff(now, s.policy.LowActivityDays).AddDate(0, 0, -1)
	activities, err := s.activityRepository.ListActivities(ctx, domain.ActivityFilter{DateFrom: &dateFrom})
	if err != nil {
		return nil, s.storeError(ctx, ReportRiskFactors, err)
	}

	return domain.DetectRiskFactors(openDeals, reps, counts, accounts, activities, now, s.policy), nil
}

// GetRecommendations calcula riscos e drivers em paralelo e junta os dois resultados
func (s *Service) GetRecommendations(ctx context.Context, now time.Time) ([]string, error) {
	var (
		risk    *domain.RiskFactors
		drivers *domain.Drivers
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		risk, err = s.GetRiskFactors(gctx, now)
		return err
	})

	g.Go(func() error {
		var err error
		drivers, err = s.GetDrivers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var reportErr *ReportError
		if errors.As(err, &reportErr) {
			return nil, NewReportError(reportErr.Err, reportErr.Code, ReportRecommendations, reportErr.Details)
		}
		return nil, err
	}

	recommendations := domain.BuildRecommendations(risk, drivers, s.policy)

	log.ForContext(ctx).Debugf("%d recomendações geradas", len(recommendations))

	return recommendations, nil
}

func (s *Service) GetRevenueTrend(ctx context.Context, now time.Time) (*domain.RevenueTrend, error) {
	wonDeals, err := s.dealRepository.ListDeals(ctx, domain.DealFilter{Statuses: []domain.DealStatus{domain.DealStatusWon}})
	if err != nil {
		return nil, s.storeError(ctx, ReportRevenueTrend, err)
	}

	targets, err := s.targetRepository.ListTargets(ctx)
	if err != nil {
		return nil, s.storeError(ctx, ReportRevenueTrend, err)
	}

	return domain.CalculateRevenueTrend(wonDeals, targets, now), nil
}
