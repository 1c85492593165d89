package mysql

// Note: rows keep their load order through the auto-increment seq column.
const insertReviewsPrefix = "INSERT INTO reviews\n  (review_id, created_at, location, body)\nVALUES "

// Re-seeding the same dataset is a no-op for rows already present.
const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  created_at = VALUES(created_at),\n" +
	"  location   = VALUES(location),\n" +
	"  body       = VALUES(body)\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Column aliases match the CSV header so both sources map the same way.
const listReviewsSQL = `
SELECT
  review_id                                   AS ReviewId,
  DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s') AS Timestamp,
  location                                    AS Location,
  body                                        AS ReviewBody
FROM reviews
ORDER BY seq
`

const countReviewsSQL = `SELECT COUNT(*) FROM reviews`
