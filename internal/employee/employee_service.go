package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	employeeerrors "github.com/SankalpGoel/HRMS-Lite/internal/employee/errors"
	"github.com/SankalpGoel/HRMS-Lite/internal/events"
	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeListCacheKey = "employees:list"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeListItem, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	var created Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// employee_id is checked before email; only the first conflict is
		// reported.
		if _, err := qtx.FindByEmployeeID(ctx, req.EmployeeID); err == nil {
			return employeeerrors.EmployeeIDTaken(req.EmployeeID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if _, err := qtx.FindByEmail(ctx, req.Email); err == nil {
			return employeeerrors.EmailTaken(req.Email)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := &Employee{
			EmployeeID: req.EmployeeID,
			FullName:   req.FullName,
			Email:      req.Email,
			Department: req.Department,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return mapRepositoryError(err)
		}
		created = *row

		if s.outbox != nil {
			event := events.EmployeeCreatedEvent{
				EventType:    "employee_created",
				RequestID:    rid,
				EmployeeID:   row.ID,
				EmployeeCode: row.EmployeeID,
				Email:        row.Email,
				OccurredAt:   time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   strconv.FormatUint(uint64(row.ID), 10),
				EventType:     event.EventType,
				Topic:         events.EmployeeCreatedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Warn("create employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("id", created.ID),
		zap.String("employee_id", created.EmployeeID),
	)

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeListItem, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListCacheKey).Result(); err == nil {
			var resp []EmployeeListItem
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeListCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeListCacheKey, data, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeListItem), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.EmployeeNotFound(id)
		}
		s.logger.Error("get employee by id failed", zap.Uint("id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.EmployeeNotFound(id)
			}
			return err
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return err
		}

		if s.outbox != nil {
			event := events.EmployeeDeletedEvent{
				EventType:    "employee_deleted",
				RequestID:    rid,
				EmployeeID:   existing.ID,
				EmployeeCode: existing.EmployeeID,
				OccurredAt:   time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   strconv.FormatUint(uint64(existing.ID), 10),
				EventType:     event.EventType,
				Topic:         events.EmployeeDeletedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.Uint("id", id),
			zap.Error(err),
		)
		return err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Uint("id", id),
	)
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListCacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID,
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Department: empl.Department,
		CreatedAt:  empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeListItem {
	res := make([]EmployeeListItem, len(empls))
	for i, e := range empls {
		res[i] = EmployeeListItem{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Email:      e.Email,
			Department: e.Department,
			CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return res
}
