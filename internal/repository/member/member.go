package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
)

// Add inserts a member into a team.
func Add(ctx context.Context, exec repository.DBTX, teamCode, email string, role domain.Role) error {
	query := `INSERT INTO team_members (team_code, email, role) VALUES ($1, $2, $3)`
	_, err := exec.ExecContext(ctx, query, teamCode, email, role)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// List returns the members of a team ordered by role priority, then by join time.
func List(ctx context.Context, exec repository.DBTX, teamCode string) ([]domain.TeamMember, error) {
	query := `
		SELECT email, role
		FROM team_members
		WHERE team_code = $1
		ORDER BY CASE role WHEN 'admin' THEN 1 WHEN 'assistant' THEN 2 ELSE 3 END, joined_at, email
	`
	rows, err := exec.QueryContext(ctx, query, teamCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.Email, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// GetRole returns the role of email in the team, or sql.ErrNoRows when not a member.
func GetRole(ctx context.Context, exec repository.DBTX, teamCode, email string) (domain.Role, error) {
	var role domain.Role
	query := `SELECT role FROM team_members WHERE team_code = $1 AND email = $2`
	err := exec.QueryRowContext(ctx, query, teamCode, email).Scan(&role)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("failed to get member role: %w", err)
	}
	return role, nil
}

// SetRole updates the role of a member and returns the updated member.
func SetRole(ctx context.Context, exec repository.DBTX, teamCode, email string, role domain.Role) (*domain.TeamMember, error) {
	query := `
		UPDATE team_members
		SET role = $1
		WHERE team_code = $2 AND email = $3
		RETURNING email, role
	`
	var m domain.TeamMember
	err := exec.QueryRowContext(ctx, query, role, teamCode, email).Scan(&m.Email, &m.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	return &m, nil
}

// Remove deletes a member from a team.
func Remove(ctx context.Context, exec repository.DBTX, teamCode, email string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM team_members WHERE team_code = $1 AND email = $2`, teamCode, email)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
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

// CountAdmins returns the number of admins in a team.
// Rows are locked so concurrent demotions serialise inside a transaction.
func CountAdmins(ctx context.Context, exec repository.DBTX, teamCode string) (int, error) {
	query := `
		SELECT email FROM team_members
		WHERE team_code = $1 AND role = 'admin'
		FOR UPDATE
	`
	rows, err := exec.QueryContext(ctx, query, teamCode)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	defer func() { _ = rows.Close() }()

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return count, nil
}
