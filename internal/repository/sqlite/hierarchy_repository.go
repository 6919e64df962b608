package sqlite

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/repository"
)

type hierarchyRepository struct {
	db *sqlx.DB
}

// NewHierarchyRepository creates a new HierarchyRepository implementation
func NewHierarchyRepository(db *sqlx.DB) repository.HierarchyRepository {
	return &hierarchyRepository{db: db}
}

// DeckIDsForCourse resolves the full course -> section -> lesson -> deck
// chain in a single server-side join.
func (r *hierarchyRepository) DeckIDsForCourse(ctx context.Context, courseID string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("hierarchy_repo")
	log.Debug("resolving decks for course (batched): course_id=%s", courseID)

	query, args, err := sqlBuilder.
		Select("d.id").
		From("decks d").
		Join("lessons l ON l.id = d.lesson_id").
		Join("sections s ON s.id = l.section_id").
		Join("courses c ON c.id = s.course_id").
		Where(activeOnly("d")).
		Where(activeOnly("l")).
		Where(activeOnly("s")).
		Where(activeOnly("c")).
		Where("c.id = ?", courseID).
		ToSql()
	if err != nil {
		log.Error("failed to build batched deck query: %v", err)
		return nil, err
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		log.Error("failed to resolve decks for course: %v", err)
		return nil, err
	}
	log.Debug("resolved %d decks", len(ids))
	return ids, nil
}

func (r *hierarchyRepository) SectionIDsForCourse(ctx context.Context, courseID string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("hierarchy_repo")
	log.Debug("fetching sections: course_id=%s", courseID)

	query, args, err := sqlBuilder.
		Select("s.id").
		From("sections s").
		Join("courses c ON c.id = s.course_id").
		Where(activeOnly("s")).
		Where(activeOnly("c")).
		Where("c.id = ?", courseID).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		log.Error("failed to query sections: %v", err)
		return nil, err
	}
	return ids, nil
}

func (r *hierarchyRepository) LessonIDsForSections(ctx context.Context, sectionIDs []string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("hierarchy_repo")
	log.Debug("fetching lessons for %d sections", len(sectionIDs))

	query, args, err := sqlBuilder.
		Select("l.id").
		From("lessons l").
		Where(activeOnly("l")).
		Where(squirrel.Eq{"l.section_id": sectionIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		log.Error("failed to query lessons: %v", err)
		return nil, err
	}
	return ids, nil
}

func (r *hierarchyRepository) DeckIDsForLessons(ctx context.Context, lessonIDs []string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("hierarchy_repo")
	log.Debug("fetching decks for %d lessons", len(lessonIDs))

	query, args, err := sqlBuilder.
		Select("d.id").
		From("decks d").
		Where(activeOnly("d")).
		Where(squirrel.Eq{"d.lesson_id": lessonIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		log.Error("failed to query decks: %v", err)
		return nil, err
	}
	return ids, nil
}
