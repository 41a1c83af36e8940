package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

var errMissingID = errors.New("result has no id")

// Save a generated result under its assessment fingerprint
func (r *Repository) SaveResult(ctx context.Context, fingerprint string, res *domain.RecommendationResult) error {
	if res.ID == "" {
		return errMissingID
	}
	body, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result %s: %w", res.ID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO recommendation_results (id, fingerprint, market, skin_type, fallback, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, fingerprint, res.Market, res.UserProfile.SkinType, res.Fallback, body, res.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", res.ID, err)
	}
	return nil
}

// Get a single stored result
func (r *Repository) GetResultByID(ctx context.Context, id string) (*domain.RecommendationResult, error) {
	var body []byte
	err := r.pool.QueryRow(ctx,
		`SELECT result FROM recommendation_results WHERE id = $1`, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("query result id=%s: %w", id, err)
	}

	var res domain.RecommendationResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("unmarshal result id=%s: %w", id, err)
	}
	res.ID = id
	return &res, nil
}

// Most recent result summaries, newest first
func (r *Repository) ListRecentResults(ctx context.Context, limit int) ([]domain.StoredResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, fingerprint, market, skin_type, fallback, created_at
		 FROM recommendation_results
		 ORDER BY created_at DESC, id
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	defer rows.Close()

	items := []domain.StoredResult{}
	for rows.Next() {
		var s domain.StoredResult
		if err := rows.Scan(&s.ID, &s.Fingerprint, &s.Market, &s.SkinType, &s.Fallback, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result summary: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result summaries: %w", err)
	}
	return items, nil
}

// Count stored results
func (r *Repository) CountResults(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recommendation_results`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return total, nil
}
