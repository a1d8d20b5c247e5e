package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/services"
)

func ListDepartments(db *sql.DB) ([]*models.Department, error) {
	rows, err := db.Query(`SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func GetDepartmentByID(db *sql.DB, id string) (*models.Department, error) {
	d := &models.Department{}
	if err := db.QueryRow(`SELECT id, name FROM departments WHERE id = $1`, id).Scan(&d.ID, &d.Name); err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT `+staffColumns+` FROM staff_members
		JOIN department_staff ds ON ds.staff_id = staff_members.id
		WHERE ds.department_id = $1 ORDER BY name`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		d.Members = append(d.Members, s)
	}
	return d, rows.Err()
}

// GetDepartmentOfStaff returns the department a staff member belongs
// to. Mirrors the scoping rule: a teacher reports damage only on their
// own department's assets.
func GetDepartmentOfStaff(db *sql.DB, staffID string) (*models.Department, error) {
	d := &models.Department{}
	query := `SELECT d.id, d.name FROM departments d
		JOIN department_staff ds ON ds.department_id = d.id
		WHERE ds.staff_id = $1 LIMIT 1`
	if err := db.QueryRow(query, staffID).Scan(&d.ID, &d.Name); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDepartment inserts the department and its membership rows in
// one transaction.
func CreateDepartment(db *sql.DB, d *models.Department, memberIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`INSERT INTO departments (name) VALUES ($1) RETURNING id`, d.Name).Scan(&d.ID); err != nil {
		return err
	}
	for _, staffID := range memberIDs {
		if _, err := tx.Exec(`INSERT INTO department_staff (department_id, staff_id) VALUES ($1, $2)`, d.ID, staffID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateDepartment replaces the name and membership set atomically.
func UpdateDepartment(db *sql.DB, d *models.Department, memberIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE departments SET name = $1 WHERE id = $2`, d.Name, d.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM department_staff WHERE department_id = $1`, d.ID); err != nil {
		return err
	}
	for _, staffID := range memberIDs {
		if _, err := tx.Exec(`INSERT INTO department_staff (department_id, staff_id) VALUES ($1, $2)`, d.ID, staffID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func ListAssetTypes(db *sql.DB) ([]*models.AssetType, error) {
	rows, err := db.Query(`SELECT id, name FROM asset_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.AssetType
	for rows.Next() {
		t := &models.AssetType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func GetAssetTypeByID(db *sql.DB, id string) (*models.AssetType, error) {
	t := &models.AssetType{}
	err := db.QueryRow(`SELECT id, name FROM asset_types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateAssetType(db *sql.DB, t *models.AssetType) error {
	return db.QueryRow(`INSERT INTO asset_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

func UpdateAssetType(db *sql.DB, t *models.AssetType) error {
	res, err := db.Exec(`UPDATE asset_types SET name = $1 WHERE id = $2`, t.Name, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteAssetType(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM asset_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const assetColumns = `a.id, a.name, a.condition, a.acquired_on, a.type_id, a.department_id,
	t.name, d.name`

func scanAsset(row interface{ Scan(...interface{}) error }) (*models.Asset, error) {
	a := &models.Asset{Type: &models.AssetType{}, Department: &models.Department{}}
	err := row.Scan(
		&a.ID, &a.Name, &a.Condition, &a.AcquiredOn, &a.TypeID, &a.DepartmentID,
		&a.Type.Name, &a.Department.Name,
	)
	if err != nil {
		return nil, err
	}
	a.Type.ID = a.TypeID
	a.Department.ID = a.DepartmentID
	return a, nil
}

const assetJoin = ` FROM assets a
	JOIN asset_types t ON t.id = a.type_id
	JOIN departments d ON d.id = a.department_id`

func ListAssets(db *sql.DB) ([]*models.Asset, error) {
	rows, err := db.Query(`SELECT ` + assetColumns + assetJoin + ` ORDER BY t.name, a.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// ListAssetsByDepartment narrows the asset set to one department, the
// choice list offered to a reporting teacher.
func ListAssetsByDepartment(db *sql.DB, departmentID string) ([]*models.Asset, error) {
	rows, err := db.Query(`SELECT `+assetColumns+assetJoin+` WHERE a.department_id = $1 ORDER BY t.name, a.name`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func GetAssetByID(db *sql.DB, id string) (*models.Asset, error) {
	return scanAsset(db.QueryRow(`SELECT `+assetColumns+assetJoin+` WHERE a.id = $1`, id))
}

func CreateAsset(db *sql.DB, a *models.Asset) error {
	query := `INSERT INTO assets (name, condition, acquired_on, type_id, department_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return db.QueryRow(query, a.Name, a.Condition, a.AcquiredOn, a.TypeID, a.DepartmentID).Scan(&a.ID)
}

func UpdateAsset(db *sql.DB, a *models.Asset) error {
	query := `UPDATE assets SET name = $1, condition = $2, acquired_on = $3, type_id = $4, department_id = $5 WHERE id = $6`
	res, err := db.Exec(query, a.Name, a.Condition, a.AcquiredOn, a.TypeID, a.DepartmentID, a.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteAsset(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const reportColumns = `r.id, r.note, r.status, r.opened_on, r.closed_on, r.asset_id, a.name`

func scanReport(row interface{ Scan(...interface{}) error }) (*models.DamageReport, error) {
	r := &models.DamageReport{Asset: &models.Asset{}}
	err := row.Scan(&r.ID, &r.Note, &r.Status, &r.OpenedOn, &r.ClosedOn, &r.AssetID, &r.Asset.Name)
	if err != nil {
		return nil, err
	}
	r.Asset.ID = r.AssetID
	return r, nil
}

func ListDamageReports(db *sql.DB) ([]*models.DamageReport, error) {
	rows, err := db.Query(`SELECT ` + reportColumns + ` FROM damage_reports r
		JOIN assets a ON a.id = r.asset_id ORDER BY r.opened_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.DamageReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func GetDamageReportByID(db *sql.DB, id string) (*models.DamageReport, error) {
	return scanReport(db.QueryRow(`SELECT `+reportColumns+` FROM damage_reports r
		JOIN assets a ON a.id = r.asset_id WHERE r.id = $1`, id))
}

func CreateDamageReport(db *sql.DB, r *models.DamageReport) error {
	query := `INSERT INTO damage_reports (note, asset_id) VALUES ($1, $2)
			  RETURNING id, status, opened_on`
	return db.QueryRow(query, r.Note, r.AssetID).Scan(&r.ID, &r.Status, &r.OpenedOn)
}

// ApplyDamageResolution persists a workflow resolution: the report's
// terminal status and close date, and the asset's condition when the
// decision damaged it. Both writes share one transaction.
func ApplyDamageResolution(db *sql.DB, res *services.DamageResolution) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	r := res.Report
	if _, err := tx.Exec(`UPDATE damage_reports SET note = $1, status = $2, closed_on = $3 WHERE id = $4`,
		r.Note, r.Status, r.ClosedOn, r.ID); err != nil {
		return err
	}
	if res.Asset != nil {
		if _, err := tx.Exec(`UPDATE assets SET condition = $1 WHERE id = $2`,
			res.Asset.Condition, res.Asset.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
