package tripdb

import (
	"context"
	"fmt"

	"taxidash.io/internal/logging"
)

// TableCounts returns the number of rows in every table.
func (c *Client) TableCounts(ctx context.Context) (map[string]int, error) {
	rows, err := c.DB.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "table_names")

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, tableName)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, table := range tables {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := c.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, err
		}
		counts[table] = count
	}

	return counts, nil
}

// CompanyCount is the number of mirrored trips for one company.
type CompanyCount struct {
	Company string
	Trips   int
}

// CompanyCounts returns trip counts per company for source, largest first.
func (c *Client) CompanyCounts(ctx context.Context, source string) ([]CompanyCount, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT t.company, COUNT(*) AS n
		FROM trips t
		JOIN sources s ON s.id = t.source_id
		WHERE s.source = ?
		GROUP BY t.company
		ORDER BY n DESC, t.company ASC
	`, source)
	if err != nil {
		return nil, fmt.Errorf("error counting trips per company: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "company_counts")

	var out []CompanyCount
	for rows.Next() {
		var cc CompanyCount
		if err := rows.Scan(&cc.Company, &cc.Trips); err != nil {
			return nil, fmt.Errorf("error scanning company count: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
