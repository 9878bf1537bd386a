package documents

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/platform/db"
)

const documentColumns = `id, employee_id, document_type, document_name, COALESCE(file_path, ''), generated_date, created_at`

func (s *Store) Create(ctx context.Context, document Document) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, document_type, document_name, file_path, generated_date)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, document.EmployeeID, document.DocumentType, document.DocumentName,
		nullIfEmpty(document.FilePath), document.GeneratedDate).Scan(&id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Document, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
	document, err := scanDocument(row)
	if err != nil {
		return Document{}, db.MapError(err)
	}
	return document, nil
}

func (s *Store) ListForEmployee(ctx context.Context, employeeID int64) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+documentColumns+`
    FROM documents
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		out = append(out, document)
	}
	return out, rows.Err()
}

func scanDocument(row pgx.Row) (Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.DocumentType, &d.DocumentName, &d.FilePath, &d.GeneratedDate, &d.CreatedAt)
	if err != nil {
		return Document{}, err
	}
	return d, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
