package postgres

import (
	"context"
	"fmt"
	"strings"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
)

// AttendanceRepo implements ports.AttendanceRepository.
type AttendanceRepo struct {
	pool Pool
}

// NewAttendanceRepo creates a new AttendanceRepo.
func NewAttendanceRepo(pool Pool) *AttendanceRepo {
	return &AttendanceRepo{pool: pool}
}

// Append writes one presence event.
func (r *AttendanceRepo) Append(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `INSERT INTO attendance (id, student_id, context, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, rec.ID, rec.StudentID, rec.Context, rec.Date, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// List returns presence events joined with student attributes, newest
// first, narrowed by whichever filter fields are set.
func (r *AttendanceRepo) List(ctx context.Context, filter ports.AttendanceFilter) ([]ports.AttendanceListItem, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT a.id, a.student_id, a.context, a.date, a.created_at,
		s.name, s.roll_no, s.branch, s.section, s.program, s.year
		FROM attendance a
		JOIN students s ON s.id = a.student_id`)

	var conds []string
	var args []any
	addCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("s.%s = $%d", column, len(args)))
	}
	if filter.Branch != nil {
		addCond("branch", *filter.Branch)
	}
	if filter.Section != nil {
		addCond("section", *filter.Section)
	}
	if filter.Program != nil {
		addCond("program", *filter.Program)
	}
	if filter.Year != nil {
		addCond("year", *filter.Year)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY a.created_at DESC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var items []ports.AttendanceListItem
	for rows.Next() {
		var item ports.AttendanceListItem
		rec := &item.Record
		err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.Context, &rec.Date, &rec.CreatedAt,
			&item.StudentName, &item.RollNo,
			&item.Academic.Branch, &item.Academic.Section, &item.Academic.Program, &item.Academic.Year,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attendance row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return items, nil
}
