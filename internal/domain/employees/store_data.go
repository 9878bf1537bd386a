package employees

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/platform/db"
)

const employeeColumns = `
    id, first_name, last_name, pesel, address, phone, email,
    position, department, hire_date, contract_number, contract_type,
    contract_end_date, annual_leave_days, remaining_leave_days,
    work_mode, medical_exam_date, safety_training_date, created_at, updated_at`

func (s *Store) Create(ctx context.Context, employee Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      first_name, last_name, pesel, address, phone, email,
      position, department, hire_date, contract_number, contract_type,
      contract_end_date, annual_leave_days, remaining_leave_days,
      work_mode, medical_exam_date, safety_training_date
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
    RETURNING id
  `,
		employee.FirstName, employee.LastName, employee.Pesel,
		employee.Address, employee.Phone, employee.Email,
		employee.Position, employee.Department, employee.HireDate,
		employee.ContractNumber, string(employee.ContractType),
		employee.ContractEndDate, employee.AnnualLeaveDays,
		employee.RemainingLeaveDays, string(employee.WorkMode),
		employee.MedicalExamDate, employee.SafetyTrainingDate,
	).Scan(&id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT`+employeeColumns+` FROM employees WHERE id = $1`, id)
	employee, err := scanEmployee(row)
	if err != nil {
		return Employee{}, db.MapError(err)
	}
	return employee, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT`+employeeColumns+` FROM employees ORDER BY last_name, first_name`)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		out = append(out, employee)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, employee Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      first_name = $1, last_name = $2, pesel = $3, address = $4,
      phone = $5, email = $6, position = $7, department = $8,
      hire_date = $9, contract_number = $10, contract_type = $11,
      contract_end_date = $12, annual_leave_days = $13,
      remaining_leave_days = $14, work_mode = $15,
      medical_exam_date = $16, safety_training_date = $17,
      updated_at = now()
    WHERE id = $18
  `,
		employee.FirstName, employee.LastName, employee.Pesel,
		employee.Address, employee.Phone, employee.Email,
		employee.Position, employee.Department, employee.HireDate,
		employee.ContractNumber, string(employee.ContractType),
		employee.ContractEndDate, employee.AnnualLeaveDays,
		employee.RemainingLeaveDays, string(employee.WorkMode),
		employee.MedicalExamDate, employee.SafetyTrainingDate,
		employee.ID,
	)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	var contractType, workMode string
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Pesel, &e.Address, &e.Phone,
		&e.Email, &e.Position, &e.Department, &e.HireDate, &e.ContractNumber,
		&contractType, &e.ContractEndDate, &e.AnnualLeaveDays,
		&e.RemainingLeaveDays, &workMode, &e.MedicalExamDate,
		&e.SafetyTrainingDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Employee{}, err
	}
	e.ContractType = ContractType(contractType)
	e.WorkMode = WorkMode(workMode)
	return e, nil
}
