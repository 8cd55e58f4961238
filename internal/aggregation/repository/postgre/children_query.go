package postgre

import "fmt"

// Child tables share one shape: (id, owner_kind, owner_id, term, count, rank).
const (
	tableKeywords = "analytics_keywords"
	tableTopics   = "analytics_topics"
	tableTags     = "analytics_tags"
)

func deleteChildrenQuery(table string) string {
	return fmt.Sprintf(`DELETE FROM %s WHERE owner_kind = $1 AND owner_id = $2`, table)
}

func insertChildrenQuery(table string) string {
	return fmt.Sprintf(`
INSERT INTO %s (id, owner_kind, owner_id, term, count, rank, created_at)
SELECT t.id, $2::text, $3::uuid, t.term, t.count, t.rank, NOW()
FROM unnest($1::uuid[], $4::text[], $5::int[], $6::int[]) AS t(id, term, count, rank)`, table)
}
