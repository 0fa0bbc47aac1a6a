package roster

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the curated players table maintained by the migrator.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

var _ Source = (*PostgresSource)(nil)

func (s *PostgresSource) Fetch(ctx context.Context) ([]Player, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, COALESCE(college, ''), COALESCE(position, ''), COALESCE(team, ''), difficulty_score
		 FROM players ORDER BY name`)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.Name, &p.College, &p.Position, &p.Team, &p.DifficultyScore); err != nil {
			return nil, &LoadError{Source: "postgres", Err: fmt.Errorf("scan player: %w", err)}
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}
	return players, nil
}
