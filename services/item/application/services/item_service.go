package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	pkgcache "github.com/ghuser/itemsdemo/pkg/cache"
	"github.com/ghuser/itemsdemo/pkg/events"
	"github.com/ghuser/itemsdemo/pkg/logger"
	itemdomain "github.com/ghuser/itemsdemo/services/item/domain"
	itemevents "github.com/ghuser/itemsdemo/services/item/domain/events"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
	"github.com/ghuser/itemsdemo/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemsdemo/services/item/domain/services"
)

const meterName = "github.com/ghuser/itemsdemo/services/item"

// Outcome values recorded on the item.operations counter.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// ItemService applies the item policy on top of the store:
// reads never validate, unknown ids are NotFound, writes are validated,
// and update checks existence before validating.
//
// Successful mutations publish an item event on the bus (best effort) and
// invalidate the Redis cache. Single-item reads are served from the cache
// when one is configured.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
	bus   *events.EventBus
	log   logger.Logger
	ops   metric.Int64Counter
}

// Option customises an ItemService.
type Option func(*options)

type options struct {
	meter metric.Meter
}

// WithMeter records operation counters on m instead of the global meter provider.
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// NewItemService returns an ItemService wired with the given repository.
// itemCache and bus may be nil.
func NewItemService(
	repo repositories.ItemRepository,
	itemCache *pkgcache.ItemCache,
	bus *events.EventBus,
	log logger.Logger,
	opts ...Option,
) *ItemService {
	o := options{meter: otel.Meter(meterName)}
	for _, opt := range opts {
		opt(&o)
	}

	ops, err := o.meter.Int64Counter("item.operations",
		metric.WithDescription("Item operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		log.Warn("item metrics disabled", "error", err)
		ops, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("item.operations")
	}

	return &ItemService{repo: repo, cache: itemCache, bus: bus, log: log, ops: ops}
}

// List returns every item in insertion order. The slice is never nil.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.count(ctx, "list", outcomeError)
		return nil, internal("list items", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	s.count(ctx, "list", outcomeOK)
	return items, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the store.
//  3. Warm the cache with the store result, unless the item changed meanwhile.
//
// rawID that is not an integer is reported as NotFound.
func (s *ItemService) GetByID(ctx context.Context, rawID string) (models.Item, error) {
	id, ok := models.ParseItemID(rawID)
	if !ok {
		s.count(ctx, "get", outcomeNotFound)
		return models.Item{}, &itemdomain.NotFoundError{ID: rawID}
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, int64(id))
		if err == nil {
			s.count(ctx, "get", outcomeOK)
			return models.Item{ID: models.ItemID(cached.ID), Name: cached.Name, Description: cached.Description}, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, s.lookupFailed(ctx, "get", rawID, err)
	}

	s.warm(ctx, item)
	s.count(ctx, "get", outcomeOK)
	return item, nil
}

// warm caches item, then re-reads the store. A write that landed between the
// first read and the Set has already run its invalidation, so the entry just
// written may be stale; it is dropped unless the store still holds item.
func (s *ItemService) warm(ctx context.Context, item models.Item) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, &pkgcache.CachedItem{
		ID:          int64(item.ID),
		Name:        item.Name,
		Description: item.Description,
	}); err != nil {
		s.log.WarnContext(ctx, "item cache write failed", "item_id", item.ID, "error", err)
		return
	}
	current, err := s.repo.GetByID(ctx, item.ID)
	if err != nil || current != item {
		s.invalidate(ctx, item.ID)
	}
}

// Create validates the trimmed fields and inserts a new Item.
func (s *ItemService) Create(ctx context.Context, name, description string) (models.Item, error) {
	fields := models.ItemFields{Name: name, Description: description}.Trimmed()
	if details := domainsvcs.ValidateItemFields(fields); len(details) > 0 {
		s.count(ctx, "create", outcomeInvalid)
		return models.Item{}, &itemdomain.ValidationError{Details: details}
	}

	item, err := s.repo.Insert(ctx, fields)
	if err != nil {
		s.count(ctx, "create", outcomeError)
		return models.Item{}, internal("insert item", err)
	}

	s.publish(ctx, itemevents.TopicItemCreated, item)
	s.count(ctx, "create", outcomeOK)
	return item, nil
}

// Update replaces the name and description of an existing Item.
// An unknown id is reported before any validation failure.
func (s *ItemService) Update(ctx context.Context, rawID, name, description string) (models.Item, error) {
	id, ok := models.ParseItemID(rawID)
	if !ok {
		s.count(ctx, "update", outcomeNotFound)
		return models.Item{}, &itemdomain.NotFoundError{ID: rawID}
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		s.count(ctx, "update", outcomeError)
		return models.Item{}, internal("check item", err)
	}
	if !exists {
		s.count(ctx, "update", outcomeNotFound)
		return models.Item{}, &itemdomain.NotFoundError{ID: rawID}
	}

	fields := models.ItemFields{Name: name, Description: description}.Trimmed()
	if details := domainsvcs.ValidateItemFields(fields); len(details) > 0 {
		s.count(ctx, "update", outcomeInvalid)
		return models.Item{}, &itemdomain.ValidationError{Details: details}
	}

	item, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return models.Item{}, s.lookupFailed(ctx, "update", rawID, err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, itemevents.TopicItemUpdated, item)
	s.count(ctx, "update", outcomeOK)
	return item, nil
}

// Delete removes an Item and returns it as it was stored.
func (s *ItemService) Delete(ctx context.Context, rawID string) (models.Item, error) {
	id, ok := models.ParseItemID(rawID)
	if !ok {
		s.count(ctx, "delete", outcomeNotFound)
		return models.Item{}, &itemdomain.NotFoundError{ID: rawID}
	}

	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.Item{}, s.lookupFailed(ctx, "delete", rawID, err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, itemevents.TopicItemDeleted, item)
	s.count(ctx, "delete", outcomeOK)
	return item, nil
}

// lookupFailed converts a store miss into a NotFoundError carrying the id as
// the caller wrote it; anything else becomes ErrInternal.
func (s *ItemService) lookupFailed(ctx context.Context, op, rawID string, err error) error {
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		s.count(ctx, op, outcomeNotFound)
		return &itemdomain.NotFoundError{ID: rawID}
	}
	s.count(ctx, op, outcomeError)
	return internal(op+" item", err)
}

// internal marks a store failure as ErrInternal so the transport answers 500
// without exposing err.
func internal(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, itemdomain.ErrInternal, err)
}

func (s *ItemService) invalidate(ctx context.Context, id models.ItemID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, int64(id)); err != nil {
		s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
	}
}

// publish is best effort: the mutation has already happened, so a bus
// failure is logged and never returned.
func (s *ItemService) publish(ctx context.Context, topic string, item models.Item) {
	if s.bus == nil {
		return
	}
	msg, err := events.NewJSONMessage(itemevents.NewItemEvent(topic, item))
	if err == nil {
		err = s.bus.Publish(ctx, topic, msg)
	}
	if err != nil {
		s.log.WarnContext(ctx, "item event not published", "topic", topic, "item_id", item.ID, "error", err)
	}
}

func (s *ItemService) count(ctx context.Context, op, outcome string) {
	s.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
