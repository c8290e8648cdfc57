package device

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
)

const selectColumns = `
	SELECT device_id, nombre, categoria, watts, color, imagen, state, favorite, email, team_code
	FROM devices
`

// Create inserts a new device together with its first usage interval when it starts switched on.
func Create(ctx context.Context, exec repository.DBTX, d *domain.Device, now time.Time) error {
	query := `
		INSERT INTO devices (device_id, nombre, categoria, watts, color, imagen, state, favorite, email, team_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := exec.ExecContext(ctx, query,
		d.ID, d.Name, d.Category, d.Watts, d.Color, d.Image, d.State, d.Favorite, d.Email, d.TeamCode, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	if d.State {
		if err := OpenInterval(ctx, exec, d.ID, now); err != nil {
			return err
		}
		d.Intervals = []domain.UsageInterval{{Start: now}}
	}

	return nil
}

// Get retrieves a device by ID with its usage intervals.
func Get(ctx context.Context, exec repository.DBTX, id string) (*domain.Device, error) {
	return get(ctx, exec, selectColumns+` WHERE device_id = $1`, id)
}

// GetForUpdate retrieves a device and locks its row until the transaction ends.
func GetForUpdate(ctx context.Context, exec repository.DBTX, id string) (*domain.Device, error) {
	return get(ctx, exec, selectColumns+` WHERE device_id = $1 FOR UPDATE`, id)
}

func get(ctx context.Context, exec repository.DBTX, query, id string) (*domain.Device, error) {
	d, err := scanDevice(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	devices := []domain.Device{*d}
	if err := attachIntervals(ctx, exec, devices); err != nil {
		return nil, err
	}
	return &devices[0], nil
}

// ListByOwner returns every device registered by email, favorites first.
func ListByOwner(ctx context.Context, exec repository.DBTX, email string) ([]domain.Device, error) {
	return list(ctx, exec, selectColumns+` WHERE email = $1 ORDER BY favorite DESC, created_at, device_id`, email)
}

// ListByTeam returns every device attached to a team, favorites first.
func ListByTeam(ctx context.Context, exec repository.DBTX, teamCode string) ([]domain.Device, error) {
	return list(ctx, exec, selectColumns+` WHERE team_code = $1 ORDER BY favorite DESC, created_at, device_id`, teamCode)
}

// ListByTeamAndOwner returns the devices email registered in a team.
func ListByTeamAndOwner(ctx context.Context, exec repository.DBTX, teamCode, email string) ([]domain.Device, error) {
	return list(ctx, exec,
		selectColumns+` WHERE team_code = $1 AND email = $2 ORDER BY favorite DESC, created_at, device_id`,
		teamCode, email,
	)
}

func list(ctx context.Context, exec repository.DBTX, query string, args ...any) ([]domain.Device, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	devices := make([]domain.Device, 0)
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if err := attachIntervals(ctx, exec, devices); err != nil {
		return nil, err
	}

	return devices, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDevice(row scanner) (*domain.Device, error) {
	var (
		d        domain.Device
		teamCode sql.NullString
	)
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Category,
		&d.Watts,
		&d.Color,
		&d.Image,
		&d.State,
		&d.Favorite,
		&d.Email,
		&teamCode,
	)
	if err != nil {
		return nil, err
	}
	if teamCode.Valid {
		d.TeamCode = &teamCode.String
	}
	d.Intervals = make([]domain.UsageInterval, 0)
	return &d, nil
}

// attachIntervals loads the usage intervals of all devices in one query.
func attachIntervals(ctx context.Context, exec repository.DBTX, devices []domain.Device) error {
	if len(devices) == 0 {
		return nil
	}

	ids := make([]string, len(devices))
	index := make(map[string]int, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
		index[d.ID] = i
	}

	query := `
		SELECT device_id, started_at, ended_at
		FROM device_intervals
		WHERE device_id = ANY($1::uuid[])
		ORDER BY started_at, interval_id
	`
	rows, err := exec.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get usage intervals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			deviceID string
			interval domain.UsageInterval
			ended    sql.NullTime
		)
		if err := rows.Scan(&deviceID, &interval.Start, &ended); err != nil {
			return fmt.Errorf("failed to scan usage interval: %w", err)
		}
		interval.Start = interval.Start.UTC()
		if ended.Valid {
			end := ended.Time.UTC()
			interval.End = &end
		}
		if i, ok := index[deviceID]; ok {
			devices[i].Intervals = append(devices[i].Intervals, interval)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows iteration error: %w", err)
	}

	return nil
}

// SetState updates the on/off flag of a device.
func SetState(ctx context.Context, exec repository.DBTX, id string, state bool) error {
	result, err := exec.ExecContext(ctx, `UPDATE devices SET state = $1 WHERE device_id = $2`, state, id)
	if err != nil {
		return fmt.Errorf("failed to update device state: %w", err)
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

// OpenInterval starts a new usage interval at the given time.
func OpenInterval(ctx context.Context, exec repository.DBTX, id string, at time.Time) error {
	query := `INSERT INTO device_intervals (device_id, started_at) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("failed to open usage interval: %w", err)
	}
	return nil
}

// CloseIntervals ends every running interval of a device at the given time.
func CloseIntervals(ctx context.Context, exec repository.DBTX, id string, at time.Time) error {
	query := `UPDATE device_intervals SET ended_at = $1 WHERE device_id = $2 AND ended_at IS NULL`
	if _, err := exec.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("failed to close usage intervals: %w", err)
	}
	return nil
}

// SetFavorite stores the favorite flag. Setting the current value again is a no-op.
func SetFavorite(ctx context.Context, exec repository.DBTX, id string, favorite bool) error {
	result, err := exec.ExecContext(ctx, `UPDATE devices SET favorite = $2 WHERE device_id = $1`, id, favorite)
	if err != nil {
		return fmt.Errorf("failed to set favorite: %w", err)
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

// Delete removes a device and, through the schema, its usage intervals.
func Delete(ctx context.Context, exec repository.DBTX, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM devices WHERE device_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
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
