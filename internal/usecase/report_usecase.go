package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salon-booking-engine/config"
	"salon-booking-engine/internal/converter"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/repository"
	"salon-booking-engine/internal/report"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const reportCacheKeyPrefix = "report:financial:"

type ReportUsecase interface {
	SummarizeFinancials(ctx context.Context, businessID uuid.UUID, referenceDate string) (*dto.FinancialSummaryResponse, error)
}

type reportUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	redisClient      *redis.Client
	cacheTTL         time.Duration
	businessRepo     repository.BusinessRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	redisClient *redis.Client,
	cfg config.ReportConfig,
	businessRepo repository.BusinessRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
) ReportUsecase {
	return &reportUsecase{
		db:               db,
		log:              log,
		redisClient:      redisClient,
		cacheTTL:         cfg.CacheTTL,
		businessRepo:     businessRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// SummarizeFinancials aggregates the completed-appointment history for
// the month of referenceDate. Results are cached briefly in Redis; cache
// failures are non-fatal and fall through to the database.
func (u *reportUsecase) SummarizeFinancials(ctx context.Context, businessID uuid.UUID, referenceDate string) (*dto.FinancialSummaryResponse, error) {
	refDate := time.Now().UTC()
	if referenceDate != "" {
		parsed, err := time.Parse("2006-01-02", referenceDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		refDate = parsed
	}

	cacheKey := fmt.Sprintf("%s%s:%s", reportCacheKeyPrefix, businessID, refDate.Format("2006-01"))
	if cached := u.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	db := u.db.WithContext(ctx)

	business, err := u.businessRepo.FindByID(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to find business %s: %+v", businessID, err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	// The window covers the reference year plus the preceding December,
	// so January growth has its baseline.
	yearStart := time.Date(refDate.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	from := yearStart.AddDate(0, -1, 0)
	to := yearStart.AddDate(1, 0, -1)

	appointments, err := u.appointmentRepo.FindCompletedByBusinessAndDateRange(db, businessID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load completed appointments for business %s: %+v", businessID, err)
		return nil, err
	}

	refData, err := u.loadRefData(db, businessID)
	if err != nil {
		return nil, err
	}

	summary := report.Summarize(appointments, refData, refDate)
	response := converter.SummaryToResponse(business, summary)

	u.toCache(ctx, cacheKey, response)
	return response, nil
}

func (u *reportUsecase) loadRefData(db *gorm.DB, businessID uuid.UUID) (report.RefData, error) {
	professionals, err := u.professionalRepo.FindByBusiness(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to load professionals for business %s: %+v", businessID, err)
		return report.RefData{}, err
	}
	services, err := u.serviceRepo.FindByBusiness(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to load services for business %s: %+v", businessID, err)
		return report.RefData{}, err
	}

	refData := report.RefData{
		ProfessionalNames: make(map[uuid.UUID]string, len(professionals)),
		ServiceNames:      make(map[uuid.UUID]string, len(services)),
	}
	for _, p := range professionals {
		refData.ProfessionalNames[p.ID] = p.Name
	}
	for _, s := range services {
		refData.ServiceNames[s.ID] = s.Name
	}
	return refData, nil
}

func (u *reportUsecase) fromCache(ctx context.Context, key string) *dto.FinancialSummaryResponse {
	if u.redisClient == nil {
		return nil
	}
	payload, err := u.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read report cache %s (non-fatal): %+v", key, err)
		}
		return nil
	}
	var response dto.FinancialSummaryResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		u.log.Warnf("Failed to decode cached report %s (non-fatal): %+v", key, err)
		return nil
	}
	return &response
}

func (u *reportUsecase) toCache(ctx context.Context, key string, response *dto.FinancialSummaryResponse) {
	if u.redisClient == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		u.log.Warnf("Failed to encode report for cache %s (non-fatal): %+v", key, err)
		return
	}
	if err := u.redisClient.Set(ctx, key, payload, u.cacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to write report cache %s (non-fatal): %+v", key, err)
	}
}
