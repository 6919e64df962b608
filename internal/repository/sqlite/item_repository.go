package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

type itemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new ItemRepository implementation
func NewItemRepository(db *sqlx.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ActiveItems(ctx context.Context) ([]models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("fetching active items")

	query, args, err := sqlBuilder.
		Select("i.id", "i.deck_id", "i.concept_id", "i.front", "i.back", "i.active", "i.created_at").
		From("items i").
		Where(activeOnly("i")).
		OrderBy("i.created_at", "i.id").
		ToSql()
	if err != nil {
		log.Error("failed to build items query: %v", err)
		return nil, err
	}

	var items []models.LearningItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		log.Error("failed to query items: %v", err)
		return nil, err
	}
	log.Debug("found %d active items", len(items))
	return items, nil
}
