package database

import sq "github.com/Masterminds/squirrel"

// MaxPageLimit caps the page size of listing queries.
const MaxPageLimit = 500

// QB is the query builder with PostgreSQL placeholder format.
var QB = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Page applies LIMIT and OFFSET. A non-positive limit becomes 1 and a
// limit above MaxPageLimit is capped; a negative offset becomes 0.
func Page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	limit = min(max(limit, 1), MaxPageLimit)
	offset = max(offset, 0)
	return b.Limit(uint64(limit)).Offset(uint64(offset))
}
