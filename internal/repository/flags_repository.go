package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type FlagsRepository struct {
	conn PgConnection
}

func NewFlagsRepo(conn PgConnection) *FlagsRepository {
	if conn == nil {
		log.Fatal("on flags repo provided nil connection")
	}
	return &FlagsRepository{
		conn: conn,
	}
}

const flagColumns = `id, client_id, coach_id, flag_type, severity, title, description, suggestion, context_data, status, resolution_notes, resolved_at, created_at`

func (repo *FlagsRepository) CreateBatch(ctx context.Context, flags []*entity.TriageFlag) error {
	for _, f := range flags {
		contextRaw, err := sonic.ConfigDefault.Marshal(f.ContextData)
		if err != nil {
			return errors.New("flag context encoding error: " + err.Error())
		}
		_, err = repo.conn.Exec(
			ctx,
			`INSERT INTO coach_triage_flags (id, client_id, coach_id, flag_type, severity, title, description, suggestion, context_data, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
			f.ID,
			f.ClientID,
			f.CoachID,
			string(f.FlagType),
			string(f.Severity),
			f.Title,
			f.Description,
			f.Suggestion,
			contextRaw,
			string(f.Status),
		)
		if err != nil {
			return errors.New("creating flag error: " + err.Error())
		}
	}
	return nil
}

func (repo *FlagsRepository) OpenFlagTypes(ctx context.Context, clientID uuid.UUID) (map[entity.FlagType]struct{}, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT flag_type FROM coach_triage_flags WHERE client_id = $1 AND status IN ('open', 'acknowledged');`,
		clientID,
	)
	if err != nil {
		return nil, errors.New("getting open flag types error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[entity.FlagType]struct{})
	for rows.Next() {
		var flagType string
		if err := rows.Scan(&flagType); err != nil {
			return nil, errors.New("flag type row parsing error: " + err.Error())
		}
		result[entity.FlagType(flagType)] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected flag type rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (repo *FlagsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TriageFlag, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT `+flagColumns+` FROM coach_triage_flags WHERE id = $1;`,
		id,
	)
	f, err := scanFlag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFlagNotFound
		}
		return nil, errors.New("getting flag error: " + err.Error())
	}
	return f, nil
}

func (repo *FlagsRepository) List(ctx context.Context, filter FlagsFilter) ([]entity.TriageFlag, error) {
	var conditions []string
	var args []any
	if filter.CoachID != nil {
		args = append(args, *filter.CoachID)
		conditions = append(conditions, fmt.Sprintf("coach_id = $%d", len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	} else {
		conditions = append(conditions, "status IN ('open', 'acknowledged')")
	}

	query := `SELECT ` + flagColumns + ` FROM coach_triage_flags`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT 50;"

	rows, err := repo.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing flags error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.TriageFlag, 0, 4)
	for rows.Next() {
		f, err := scanFlag(rows)
		if err != nil {
			return nil, errors.New("flag row parsing error: " + err.Error())
		}
		result = append(result, *f)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected flag rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (repo *FlagsRepository) UpdateStatus(ctx context.Context, flag *entity.TriageFlag) error {
	ct, err := repo.conn.Exec(
		ctx,
		`UPDATE coach_triage_flags SET status = $2, resolution_notes = $3, resolved_at = $4 WHERE id = $1;`,
		flag.ID,
		string(flag.Status),
		flag.ResolutionNotes,
		flag.ResolvedAt,
	)
	if err != nil {
		return errors.New("updating flag status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFlagNotFound
	}
	return nil
}

func scanFlag(row pgx.Row) (*entity.TriageFlag, error) {
	f := entity.TriageFlag{}
	var flagType, severity, status string
	var contextRaw []byte
	err := row.Scan(
		&f.ID,
		&f.ClientID,
		&f.CoachID,
		&flagType,
		&severity,
		&f.Title,
		&f.Description,
		&f.Suggestion,
		&contextRaw,
		&status,
		&f.ResolutionNotes,
		&f.ResolvedAt,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.FlagType = entity.FlagType(flagType)
	f.Severity = entity.FlagSeverity(severity)
	f.Status = entity.FlagStatus(status)
	if len(contextRaw) > 0 {
		if err := sonic.ConfigDefault.Unmarshal(contextRaw, &f.ContextData); err != nil {
			return nil, errors.New("flag context parsing error: " + err.Error())
		}
	}
	return &f, nil
}
