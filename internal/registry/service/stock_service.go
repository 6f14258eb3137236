package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/internal/registry/dto"
	"golang-stock-registry/internal/registry/event"
	"golang-stock-registry/internal/registry/repository"
	"golang-stock-registry/pkg/logger"

	"gorm.io/gorm"
)

// StockService defines the interface for managing the stocks of a bearer.
type StockService interface {
	ListStocks(ctx context.Context, bearerID uint) ([]*dto.StockSummary, error)
	GetStock(ctx context.Context, bearerID, id uint) (*dto.StockResponse, error)
	CreateStock(ctx context.Context, bearerID uint, req *dto.CreateStockRequest) (*dto.StockResponse, error)
	UpdateStock(ctx context.Context, bearerID, id uint, req *dto.UpdateStockRequest) (*dto.UpdateStockResult, error)
	DeleteStock(ctx context.Context, bearerID, id uint) error
}

// NewStockService creates a new stock service.
func NewStockService(
	txRunner repository.TxRunner,
	bearerRepo repository.BearerRepository,
	stockRepo repository.StockRepository,
	bearerNames *BearerNameCache,
	publisher event.Publisher,
	log *logger.Logger,
) StockService {
	if publisher == nil {
		publisher = event.NewNopPublisher()
	}
	return &stockService{
		txRunner:    txRunner,
		bearerRepo:  bearerRepo,
		stockRepo:   stockRepo,
		bearerNames: bearerNames,
		publisher:   publisher,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type stockService struct {
	txRunner    repository.TxRunner
	bearerRepo  repository.BearerRepository
	stockRepo   repository.StockRepository
	bearerNames *BearerNameCache
	publisher   event.Publisher
	logger      *logger.Logger
	now         func() time.Time
}

// ListStocks returns the active stocks owned by a bearer. An unknown bearer owns nothing.
func (s *stockService) ListStocks(ctx context.Context, bearerID uint) ([]*dto.StockSummary, error) {
	stocks, err := s.stockRepo.FindAllByBearer(ctx, bearerID, false)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list stocks", logger.ErrorField(err), logger.UintField("bearer_id", bearerID))
		return nil, err
	}

	summaries := make([]*dto.StockSummary, 0, len(stocks))
	for _, stock := range stocks {
		summaries = append(summaries, &dto.StockSummary{ID: stock.ID, Name: stock.Name})
	}
	return summaries, nil
}

// GetStock returns an active stock within a bearer's scope.
func (s *stockService) GetStock(ctx context.Context, bearerID, id uint) (*dto.StockResponse, error) {
	stock, err := s.findStock(ctx, bearerID, id)
	if err != nil {
		return nil, err
	}
	return s.mapToStockResponse(ctx, stock)
}

// CreateStock validates and inserts a new stock under a bearer.
func (s *stockService) CreateStock(ctx context.Context, bearerID uint, req *dto.CreateStockRequest) (*dto.StockResponse, error) {
	if isBlank(req.Name) {
		return nil, nameBlankError()
	}

	if _, err := s.bearerRepo.FindByID(ctx, nil, bearerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "bearer", ID: bearerID}
		}
		return nil, fmt.Errorf("failed to find bearer: %w", err)
	}

	taken, err := s.stockRepo.NameTaken(ctx, nil, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check stock name: %w", err)
	}
	if taken {
		return nil, nameTakenError()
	}

	stock := &entity.Stock{Name: req.Name, BearerID: bearerID}
	if err := s.stockRepo.Insert(ctx, nil, stock); err != nil {
		if mapped := s.mapWriteError(err, stock); mapped != nil {
			s.logger.WarnContext(ctx, "Stock create rejected", logger.ErrorField(err), logger.UintField("bearer_id", bearerID))
			return nil, mapped
		}
		s.logger.ErrorContext(ctx, "Failed to create stock", logger.ErrorField(err), logger.UintField("bearer_id", bearerID))
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	s.logger.InfoContext(ctx, "Stock created", logger.UintField("stock_id", stock.ID), logger.UintField("bearer_id", bearerID))
	s.publish(ctx, event.StockEvent{Type: event.StockCreated, StockID: stock.ID, Name: stock.Name, BearerID: stock.BearerID})

	return s.mapToStockResponse(ctx, stock)
}

// UpdateStock renames a stock and optionally moves it to another bearer.
//
// The scoped read, the bearer lookup or creation, validation and the write share
// one transaction, so a bearer created for a rejected update is rolled back with it
// and the changes are computed against the locked row. Once committed,
// the stock is read again: if it no longer belongs to bearerID the result is Moved
// and carries no representation.
func (s *stockService) UpdateStock(ctx context.Context, bearerID, id uint, req *dto.UpdateStockRequest) (*dto.UpdateStockResult, error) {
	var (
		stock            *entity.Stock
		previousBearerID uint
		changed          bool
		newBearer        *entity.Bearer
	)
	err := s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		stock, err = s.stockRepo.LockByBearer(ctx, tx, bearerID, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &NotFoundError{Resource: "stock", ID: id}
			}
			return fmt.Errorf("failed to find stock: %w", err)
		}
		previousBearerID = stock.BearerID

		targetBearerID := stock.BearerID
		if req.BearerName != nil && !isBlank(*req.BearerName) {
			bearer, err := s.bearerRepo.FindOrCreate(ctx, tx, *req.BearerName)
			if err != nil {
				return fmt.Errorf("failed to resolve bearer %q: %w", *req.BearerName, err)
			}
			targetBearerID = bearer.ID
			newBearer = bearer
		}

		name := stock.Name
		if req.Name != nil {
			name = *req.Name
		}

		if isBlank(name) {
			return nameBlankError()
		}
		taken, err := s.stockRepo.NameTaken(ctx, tx, name, stock.ID)
		if err != nil {
			return fmt.Errorf("failed to check stock name: %w", err)
		}
		if taken {
			return nameTakenError()
		}

		var changes repository.StockChanges
		if name != stock.Name {
			changes.Name = &name
		}
		if targetBearerID != stock.BearerID {
			changes.BearerID = &targetBearerID
		}
		if changes.IsEmpty() {
			return nil
		}

		if err := s.stockRepo.Update(ctx, tx, stock, changes); err != nil {
			if mapped := s.mapWriteError(err, stock); mapped != nil {
				return mapped
			}
			return fmt.Errorf("failed to update stock: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		if _, ok := Reasons(err); ok || IsNotFound(err) {
			s.logger.WarnContext(ctx, "Stock update rejected", logger.ErrorField(err), logger.UintField("stock_id", id))
		} else {
			s.logger.ErrorContext(ctx, "Failed to update stock", logger.ErrorField(err), logger.UintField("stock_id", id))
		}
		return nil, err
	}

	if newBearer != nil {
		s.bearerNames.Remember(newBearer)
	}

	current, err := s.stockRepo.FindByID(ctx, nil, stock.ID, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "stock", ID: id}
		}
		return nil, fmt.Errorf("failed to reload stock: %w", err)
	}

	if changed {
		s.logger.InfoContext(ctx, "Stock updated", logger.UintField("stock_id", current.ID), logger.UintField("bearer_id", current.BearerID))
		s.publish(ctx, event.StockEvent{Type: event.StockUpdated, StockID: current.ID, Name: current.Name, BearerID: current.BearerID})
		if current.BearerID != previousBearerID {
			s.publish(ctx, event.StockEvent{
				Type:             event.StockTransferred,
				StockID:          current.ID,
				Name:             current.Name,
				BearerID:         current.BearerID,
				PreviousBearerID: previousBearerID,
			})
		}
	}

	if current.BearerID != bearerID {
		return &dto.UpdateStockResult{Moved: true}, nil
	}

	resp, err := s.mapToStockResponse(ctx, current)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateStockResult{Stock: resp}, nil
}

// DeleteStock soft-deletes an active stock within a bearer's scope.
func (s *stockService) DeleteStock(ctx context.Context, bearerID, id uint) error {
	stock, err := s.findStock(ctx, bearerID, id)
	if err != nil {
		return err
	}

	if err := s.stockRepo.SoftDelete(ctx, nil, stock, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "stock", ID: id}
		}
		s.logger.ErrorContext(ctx, "Failed to delete stock", logger.ErrorField(err), logger.UintField("stock_id", id))
		return &PersistenceError{Reasons: []string{"Stock could not be deleted"}, Err: err}
	}

	s.logger.InfoContext(ctx, "Stock deleted", logger.UintField("stock_id", id), logger.UintField("bearer_id", bearerID))
	s.publish(ctx, event.StockEvent{Type: event.StockDeleted, StockID: stock.ID, Name: stock.Name, BearerID: stock.BearerID})
	return nil
}

func (s *stockService) findStock(ctx context.Context, bearerID, id uint) (*entity.Stock, error) {
	stock, err := s.stockRepo.FindByBearer(ctx, nil, bearerID, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "stock", ID: id}
		}
		return nil, fmt.Errorf("failed to find stock: %w", err)
	}
	return stock, nil
}

// mapWriteError turns constraint violations raised by a write into service errors.
// It returns nil for errors that are not constraint related.
func (s *stockService) mapWriteError(err error, stock *entity.Stock) error {
	switch {
	case errors.Is(err, repository.ErrConflict):
		return nameTakenError()
	case errors.Is(err, repository.ErrBearerMissing):
		return &NotFoundError{Resource: "bearer", ID: stock.BearerID}
	case errors.Is(err, repository.ErrNotFound):
		return &NotFoundError{Resource: "stock", ID: stock.ID}
	}
	return nil
}

func (s *stockService) publish(ctx context.Context, evt event.StockEvent) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = s.now()
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish stock event", logger.ErrorField(err), logger.StringField("type", string(evt.Type)))
	}
}

// mapToStockResponse maps an entity.Stock to a dto.StockResponse.
func (s *stockService) mapToStockResponse(ctx context.Context, stock *entity.Stock) (*dto.StockResponse, error) {
	bearerName, err := s.bearerNames.Name(ctx, stock.BearerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bearer name: %w", err)
	}
	return &dto.StockResponse{
		ID:         stock.ID,
		Name:       stock.Name,
		BearerName: bearerName,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
