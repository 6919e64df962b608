package sqlite

import "github.com/Masterminds/squirrel"

// Shared squirrel builder for all repository implementations.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// activeOnly restricts a table alias to active, non-deleted rows. Every
// hierarchy level applies this identically so the batched join and the
// sequential fallback resolve the same rows.
func activeOnly(alias string) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Eq{alias + ".active": 1},
		squirrel.Eq{alias + ".deleted_at": nil},
	}
}
