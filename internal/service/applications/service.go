package applications

import (
	"context"
	"errors"
	"fmt"

	applicationRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/application"
	"github.com/m04kA/ACI-ReservationService/internal/service/applications/models"
)

// Service сервис для чтения заявок в админке
type Service struct {
	applicationRepo   ApplicationRepository
	preferredSlotRepo PreferredSlotRepository
	logger            Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	applicationRepo ApplicationRepository,
	preferredSlotRepo PreferredSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		applicationRepo:   applicationRepo,
		preferredSlotRepo: preferredSlotRepo,
		logger:            logger,
	}
}

// GetByID получает заявку по ID вместе с полной историей кандидатов,
// включая логически удалённые записи
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ApplicationDetailResponse, error) {
	s.logger.Info("GetByID: fetching application id=%d", id)

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, applicationRepo.ErrApplicationNotFound) {
			s.logger.Warn("GetByID: application id=%d not found", id)
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("GetByID: repository error for application id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slots, err := s.preferredSlotRepo.ListAll(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch preferred slots for application id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - preferred slots error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched application id=%d with %d preferred slots", id, len(slots))
	return &models.ApplicationDetailResponse{
		Application:    models.FromDomainApplication(app),
		PreferredSlots: models.FromDomainPreferredSlots(slots),
	}, nil
}

// List получает заявки с фильтрацией по статусу и периоду создания
func (s *Service) List(ctx context.Context, req *models.ListApplicationsRequest) (*models.ApplicationListResponse, error) {
	s.logger.Info("List: fetching applications, status=%v", req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	apps, err := s.applicationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d applications", len(apps))
	return models.FromDomainApplicationList(apps), nil
}
