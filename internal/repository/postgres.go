package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// PostgresStore хранит состояние в PostgreSQL с PostGIS.
// Координаты лежат в колонках geography(Point, 4326).
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const incidentColumns = `
	incident_id,
	type,
	priority,
	status,
	ST_Y(location::geometry) AS lat,
	ST_X(location::geometry) AS lng,
	description,
	notes,
	assigned_units,
	created_at,
	updated_at,
	resolved_at`

// CreateIncident вставляет инцидент и сдвигает счетчик идентификаторов в одной транзакции
func (r *PostgresStore) CreateIncident(ctx context.Context, incident *models.Incident) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO incidents (incident_id, type, priority, status, location, description, notes, assigned_units, created_at, updated_at, resolved_at)
			VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11, $12);
		`
		_, err := tx.Exec(ctx, query,
			incident.IncidentID,
			incident.Type,
			incident.Priority,
			incident.Status,
			incident.Location.Lng,
			incident.Location.Lat,
			incident.Description,
			incident.Notes,
			incident.AssignedUnits,
			incident.CreatedAt,
			incident.UpdatedAt,
			incident.ResolvedAt,
		)
		if err != nil {
			return mapError(fmt.Sprintf("failed to create incident %s", incident.IncidentID), err)
		}
		return advanceSequence(ctx, tx, incident.IncidentID, models.IncidentPrefix)
	})
}

func (r *PostgresStore) GetIncident(ctx context.Context, incidentID string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE incident_id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *PostgresStore) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	if filter.Type != "" {
		w.add("type = ?", filter.Type)
	}
	query := `SELECT ` + incidentColumns + ` FROM incidents` + w.sql() + ` ORDER BY created_at, incident_id` + w.page(filter.Skip, filter.Limit)
	return r.queryIncidents(ctx, query, w.args...)
}

func (r *PostgresStore) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			type = $1,
			priority = $2,
			status = $3,
			location = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			description = $6,
			notes = $7,
			assigned_units = $8,
			updated_at = $9,
			resolved_at = $10
		WHERE incident_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Type,
		incident.Priority,
		incident.Status,
		incident.Location.Lng,
		incident.Location.Lat,
		incident.Description,
		incident.Notes,
		incident.AssignedUnits,
		incident.UpdatedAt,
		incident.ResolvedAt,
		incident.IncidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	// RowsAffected() == 0 - инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incident.IncidentID, models.ErrNotFound)
	}
	return nil
}

// DeleteIncident удаляет инцидент; назначения удаляются каскадно
func (r *PostgresStore) DeleteIncident(ctx context.Context, incidentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE incident_id = $1;`, incidentID)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound)
	}
	return nil
}

func (r *PostgresStore) ListResolvedIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = 'resolved' AND resolved_at IS NOT NULL ORDER BY created_at;`
	return r.queryIncidents(ctx, query)
}

func (r *PostgresStore) queryIncidents(ctx context.Context, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.IncidentID,
		&incident.Type,
		&incident.Priority,
		&incident.Status,
		&incident.Location.Lat,
		&incident.Location.Lng,
		&incident.Description,
		&incident.Notes,
		&incident.AssignedUnits,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	if incident.AssignedUnits == nil {
		incident.AssignedUnits = []string{}
	}
	return incident, nil
}

const unitColumns = `
	unit_id,
	type,
	status,
	ST_Y(location::geometry) AS lat,
	ST_X(location::geometry) AS lng,
	description,
	current_incident_id,
	last_updated,
	is_active`

func (r *PostgresStore) CreateUnit(ctx context.Context, unit *models.EmergencyUnit) error {
	query := `
		INSERT INTO emergency_units (unit_id, type, status, location, description, current_incident_id, last_updated, is_active)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		unit.UnitID,
		unit.Type,
		unit.Status,
		unit.Location.Lng,
		unit.Location.Lat,
		unit.Description,
		unit.CurrentIncidentID,
		unit.LastUpdated,
		unit.IsActive,
	)
	if err != nil {
		return mapError(fmt.Sprintf("failed to create unit %s", unit.UnitID), err)
	}
	return nil
}

func (r *PostgresStore) GetUnit(ctx context.Context, unitID string) (*models.EmergencyUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM emergency_units WHERE unit_id = $1;`
	unit, err := scanUnit(r.db.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", unitID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get unit by id: %w", err)
	}
	return unit, nil
}

func (r *PostgresStore) ListUnits(ctx context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	if filter.Type != "" {
		w.add("type = ?", filter.Type)
	}
	if filter.ActiveOnly {
		w.add("is_active = ?", true)
	}
	query := `SELECT ` + unitColumns + ` FROM emergency_units` + w.sql() + ` ORDER BY created_at, unit_id` + w.page(filter.Skip, filter.Limit)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	units := make([]*models.EmergencyUnit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return units, nil
}

func (r *PostgresStore) UpdateUnit(ctx context.Context, unit *models.EmergencyUnit) error {
	query := `
		UPDATE emergency_units SET
			type = $1,
			status = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			description = $5,
			current_incident_id = $6,
			last_updated = $7,
			is_active = $8
		WHERE unit_id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		unit.Type,
		unit.Status,
		unit.Location.Lng,
		unit.Location.Lat,
		unit.Description,
		unit.CurrentIncidentID,
		unit.LastUpdated,
		unit.IsActive,
		unit.UnitID,
	)
	if err != nil {
		return mapError("failed to update unit", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", unit.UnitID, models.ErrNotFound)
	}
	return nil
}

func (r *PostgresStore) DeleteUnit(ctx context.Context, unitID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergency_units WHERE unit_id = $1;`, unitID)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", unitID, models.ErrNotFound)
	}
	return nil
}

func scanUnit(row pgx.Row) (*models.EmergencyUnit, error) {
	unit := &models.EmergencyUnit{}
	err := row.Scan(
		&unit.UnitID,
		&unit.Type,
		&unit.Status,
		&unit.Location.Lat,
		&unit.Location.Lng,
		&unit.Description,
		&unit.CurrentIncidentID,
		&unit.LastUpdated,
		&unit.IsActive,
	)
	return unit, err
}

func (r *PostgresStore) CreateAssignment(ctx context.Context, assignment *models.UnitAssignment) error {
	query := `
		INSERT INTO unit_assignments (unit_id, incident_id, status, assigned_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		assignment.UnitID,
		assignment.IncidentID,
		assignment.Status,
		assignment.AssignedAt,
	).Scan(&assignment.ID)
	if err != nil {
		return mapError("failed to create assignment", err)
	}
	return nil
}

func (r *PostgresStore) GetAssignment(ctx context.Context, id int64) (*models.UnitAssignment, error) {
	a := &models.UnitAssignment{}
	query := `SELECT id, unit_id, incident_id, status, assigned_at FROM unit_assignments WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.UnitID, &a.IncidentID, &a.Status, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return a, nil
}

func (r *PostgresStore) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]*models.UnitAssignment, error) {
	var w where
	if filter.UnitID != "" {
		w.add("unit_id = ?", filter.UnitID)
	}
	if filter.IncidentID != "" {
		w.add("incident_id = ?", filter.IncidentID)
	}
	query := `SELECT id, unit_id, incident_id, status, assigned_at FROM unit_assignments` + w.sql() + ` ORDER BY id;`

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.UnitAssignment, 0)
	for rows.Next() {
		a := &models.UnitAssignment{}
		if err := rows.Scan(&a.ID, &a.UnitID, &a.IncidentID, &a.Status, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return assignments, nil
}

func (r *PostgresStore) UpdateAssignment(ctx context.Context, assignment *models.UnitAssignment) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE unit_assignments SET status = $1 WHERE id = $2;`, assignment.Status, assignment.ID)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment %d: %w", assignment.ID, models.ErrNotFound)
	}
	return nil
}

const trafficColumns = `
	incident_id,
	type,
	severity,
	ST_Y(location::geometry) AS lat,
	ST_X(location::geometry) AS lng,
	description,
	affected_roads,
	estimated_duration,
	created_at,
	resolved_at,
	is_active`

func (r *PostgresStore) CreateTraffic(ctx context.Context, traffic *models.TrafficIncident) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO traffic_incidents (incident_id, type, severity, location, description, affected_roads, estimated_duration, created_at, resolved_at, is_active)
			VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11);
		`
		_, err := tx.Exec(ctx, query,
			traffic.IncidentID,
			traffic.Type,
			traffic.Severity,
			traffic.Location.Lng,
			traffic.Location.Lat,
			traffic.Description,
			traffic.AffectedRoads,
			traffic.EstimatedDuration,
			traffic.CreatedAt,
			traffic.ResolvedAt,
			traffic.IsActive,
		)
		if err != nil {
			return mapError(fmt.Sprintf("failed to create traffic incident %s", traffic.IncidentID), err)
		}
		return advanceSequence(ctx, tx, traffic.IncidentID, models.TrafficPrefix)
	})
}

func (r *PostgresStore) GetTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error) {
	query := `SELECT ` + trafficColumns + ` FROM traffic_incidents WHERE incident_id = $1;`
	t, err := scanTraffic(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("traffic incident %s: %w", incidentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get traffic incident by id: %w", err)
	}
	return t, nil
}

func (r *PostgresStore) ListTraffic(ctx context.Context, filter models.TrafficFilter) ([]*models.TrafficIncident, error) {
	var w where
	if filter.ActiveOnly {
		w.add("is_active = ?", true)
	}
	query := `SELECT ` + trafficColumns + ` FROM traffic_incidents` + w.sql() + ` ORDER BY created_at, incident_id` + w.page(filter.Skip, filter.Limit)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list traffic incidents: %w", err)
	}
	defer rows.Close()

	list := make([]*models.TrafficIncident, 0)
	for rows.Next() {
		t, err := scanTraffic(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan traffic incident row: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}

func (r *PostgresStore) UpdateTraffic(ctx context.Context, traffic *models.TrafficIncident) error {
	query := `
		UPDATE traffic_incidents SET
			type = $1,
			severity = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			description = $5,
			affected_roads = $6,
			estimated_duration = $7,
			resolved_at = $8,
			is_active = $9
		WHERE incident_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		traffic.Type,
		traffic.Severity,
		traffic.Location.Lng,
		traffic.Location.Lat,
		traffic.Description,
		traffic.AffectedRoads,
		traffic.EstimatedDuration,
		traffic.ResolvedAt,
		traffic.IsActive,
		traffic.IncidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update traffic incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("traffic incident %s: %w", traffic.IncidentID, models.ErrNotFound)
	}
	return nil
}

func scanTraffic(row pgx.Row) (*models.TrafficIncident, error) {
	t := &models.TrafficIncident{}
	err := row.Scan(
		&t.IncidentID,
		&t.Type,
		&t.Severity,
		&t.Location.Lat,
		&t.Location.Lng,
		&t.Description,
		&t.AffectedRoads,
		&t.EstimatedDuration,
		&t.CreatedAt,
		&t.ResolvedAt,
		&t.IsActive,
	)
	if err != nil {
		return nil, err
	}
	if t.AffectedRoads == nil {
		t.AffectedRoads = []string{}
	}
	return t, nil
}

func (r *PostgresStore) CreateLog(ctx context.Context, entry *models.SystemLog) error {
	query := `
		INSERT INTO system_logs (timestamp, level, category, message, data)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.Timestamp,
		entry.Level,
		entry.Category,
		entry.Message,
		entry.Data,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to save system log: %w", err)
	}
	return nil
}

func (r *PostgresStore) ListLogs(ctx context.Context, filter models.LogFilter) ([]*models.SystemLog, error) {
	var w where
	if filter.Level != "" {
		w.add("level = ?", filter.Level)
	}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	query := `SELECT id, timestamp, level, category, message, data FROM system_logs` + w.sql() + ` ORDER BY timestamp DESC, id DESC` + w.page(filter.Skip, filter.Limit)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list system logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.SystemLog, 0)
	for rows.Next() {
		entry := &models.SystemLog{}
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Level, &entry.Category, &entry.Message, &entry.Data); err != nil {
			return nil, fmt.Errorf("failed to scan system log row: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}

// MaxSequence читает счетчик из entity_sequences; отсутствие строки означает 0
func (r *PostgresStore) MaxSequence(ctx context.Context, prefix string) (int, error) {
	var last int
	err := r.db.QueryRow(ctx, `SELECT last_value FROM entity_sequences WHERE prefix = $1;`, prefix).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sequence %s: %w", prefix, err)
	}
	return last, nil
}

func (r *PostgresStore) DashboardCounters(ctx context.Context, dayStart time.Time) (*models.DashboardCounters, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM incidents WHERE status = 'active'),
			(SELECT COUNT(*) FROM emergency_units WHERE status = 'available' AND is_active),
			(SELECT COUNT(*) FROM emergency_units WHERE status = 'responding' AND is_active),
			(SELECT COUNT(*) FROM traffic_incidents WHERE is_active),
			(SELECT COUNT(*) FROM incidents WHERE created_at >= $1);
	`
	c := &models.DashboardCounters{}
	err := r.db.QueryRow(ctx, query, dayStart).Scan(
		&c.ActiveIncidents,
		&c.AvailableUnits,
		&c.RespondingUnits,
		&c.TrafficIssues,
		&c.TotalIncidentsToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count dashboard stats: %w", err)
	}
	return c, nil
}

func (r *PostgresStore) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// advanceSequence поднимает счетчик префикса до суффикса вставленного идентификатора
func advanceSequence(ctx context.Context, tx pgx.Tx, id, prefix string) error {
	n, ok := models.ParseSequence(id, prefix)
	if !ok {
		return nil
	}
	query := `
		INSERT INTO entity_sequences (prefix, last_value) VALUES ($1, $2)
		ON CONFLICT (prefix) DO UPDATE SET last_value = GREATEST(entity_sequences.last_value, EXCLUDED.last_value);
	`
	if _, err := tx.Exec(ctx, query, prefix, n); err != nil {
		return fmt.Errorf("failed to advance sequence %s: %w", prefix, err)
	}
	return nil
}

// mapError переводит нарушения ограничений PostgreSQL в доменные ошибки
func mapError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", msg, models.ErrConflict)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", msg, models.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// where собирает условие WHERE, заменяя "?" на позиционные параметры
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.Replace(clause, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

func (w *where) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page добавляет LIMIT/OFFSET; limit <= 0 передается как NULL, то есть без ограничения
func (w *where) page(skip, limit int) string {
	var l any
	if limit > 0 {
		l = limit
	}
	w.args = append(w.args, l, skip)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d;", len(w.args)-1, len(w.args))
}
