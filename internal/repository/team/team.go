package team

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
)

// Create inserts a new team.
func Create(ctx context.Context, exec repository.DBTX, code, name string) error {
	query := `INSERT INTO teams (team_code, team_name) VALUES ($1, $2)`
	_, err := exec.ExecContext(ctx, query, code, name)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// Get retrieves a team by its join code, without members or devices.
func Get(ctx context.Context, exec repository.DBTX, code string) (*domain.Team, error) {
	query := `SELECT team_code, team_name, created_at FROM teams WHERE team_code = $1`
	var t domain.Team
	err := exec.QueryRowContext(ctx, query, code).Scan(&t.Code, &t.Name, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	t.Members = make([]domain.TeamMember, 0)
	t.Devices = make([]domain.Device, 0)
	return &t, nil
}

// Exists checks if a team exists.
func Exists(ctx context.Context, exec repository.DBTX, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE team_code = $1)`
	err := exec.QueryRowContext(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

// ListByMember returns every team the email belongs to, with the email's role.
func ListByMember(ctx context.Context, exec repository.DBTX, email string) ([]domain.Team, error) {
	query := `
		SELECT t.team_code, t.team_name, t.created_at, m.role
		FROM teams t
		JOIN team_members m ON t.team_code = m.team_code
		WHERE m.email = $1
		ORDER BY t.created_at, t.team_code
	`
	rows, err := exec.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.Code, &t.Name, &t.CreatedAt, &t.Role); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		t.Members = make([]domain.TeamMember, 0)
		t.Devices = make([]domain.Device, 0)
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teams, nil
}

// Delete removes a team. Members cascade and devices are detached by the schema.
func Delete(ctx context.Context, exec repository.DBTX, code string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM teams WHERE team_code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
