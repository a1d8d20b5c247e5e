package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
)

func ListRequestTypes(db *sql.DB) ([]*models.RequestType, error) {
	rows, err := db.Query(`SELECT id, name, cost FROM request_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.RequestType
	for rows.Next() {
		t := &models.RequestType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Cost); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func GetRequestTypeByID(db *sql.DB, id string) (*models.RequestType, error) {
	t := &models.RequestType{}
	err := db.QueryRow(`SELECT id, name, cost FROM request_types WHERE id = $1`, id).Scan(&t.ID, &t.Name, &t.Cost)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateRequestType(db *sql.DB, t *models.RequestType) error {
	return db.QueryRow(`INSERT INTO request_types (name, cost) VALUES ($1, $2) RETURNING id`, t.Name, t.Cost).Scan(&t.ID)
}

func UpdateRequestType(db *sql.DB, t *models.RequestType) error {
	res, err := db.Exec(`UPDATE request_types SET name = $1, cost = $2 WHERE id = $3`, t.Name, t.Cost, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteRequestType(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM request_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListStudentRequests(db *sql.DB) ([]*models.StudentRequest, error) {
	rows, err := db.Query(`SELECT r.id, r.reference, r.start_date, r.end_date, r.type_id, r.student_id, t.name, t.cost, st.name
		FROM student_requests r
		JOIN request_types t ON t.id = r.type_id
		JOIN students st ON st.id = r.student_id
		ORDER BY r.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.StudentRequest
	for rows.Next() {
		r := &models.StudentRequest{Type: &models.RequestType{}, Student: &models.Student{}}
		if err := rows.Scan(&r.ID, &r.Reference, &r.StartDate, &r.EndDate, &r.TypeID, &r.StudentID,
			&r.Type.Name, &r.Type.Cost, &r.Student.Name); err != nil {
			return nil, err
		}
		r.Type.ID = r.TypeID
		r.Student.ID = r.StudentID
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func GetStudentRequestByID(db *sql.DB, id string) (*models.StudentRequest, error) {
	r := &models.StudentRequest{Type: &models.RequestType{}, Student: &models.Student{}}
	err := db.QueryRow(`SELECT r.id, r.reference, r.start_date, r.end_date, r.type_id, r.student_id, t.name, t.cost, st.name
		FROM student_requests r
		JOIN request_types t ON t.id = r.type_id
		JOIN students st ON st.id = r.student_id
		WHERE r.id = $1`, id).
		Scan(&r.ID, &r.Reference, &r.StartDate, &r.EndDate, &r.TypeID, &r.StudentID,
			&r.Type.Name, &r.Type.Cost, &r.Student.Name)
	if err != nil {
		return nil, err
	}
	r.Type.ID = r.TypeID
	r.Student.ID = r.StudentID
	return r, nil
}

func CreateStudentRequest(db *sql.DB, r *models.StudentRequest) error {
	return db.QueryRow(`INSERT INTO student_requests (reference, start_date, end_date, type_id, student_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		r.Reference, r.StartDate, r.EndDate, r.TypeID, r.StudentID).Scan(&r.ID)
}

func UpdateStudentRequest(db *sql.DB, r *models.StudentRequest) error {
	res, err := db.Exec(`UPDATE student_requests SET reference = $1, start_date = $2, end_date = $3, type_id = $4, student_id = $5 WHERE id = $6`,
		r.Reference, r.StartDate, r.EndDate, r.TypeID, r.StudentID, r.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteStudentRequest(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM student_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListBooks(db *sql.DB) ([]*models.Book, error) {
	rows, err := db.Query(`SELECT id, name FROM books ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		b := &models.Book{}
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func GetBookByID(db *sql.DB, id string) (*models.Book, error) {
	b := &models.Book{}
	if err := db.QueryRow(`SELECT id, name FROM books WHERE id = $1`, id).Scan(&b.ID, &b.Name); err != nil {
		return nil, err
	}
	return b, nil
}

func CreateBook(db *sql.DB, b *models.Book) error {
	return db.QueryRow(`INSERT INTO books (name) VALUES ($1) RETURNING id`, b.Name).Scan(&b.ID)
}

func UpdateBook(db *sql.DB, b *models.Book) error {
	res, err := db.Exec(`UPDATE books SET name = $1 WHERE id = $2`, b.Name, b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteBook(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListLoans(db *sql.DB) ([]*models.Loan, error) {
	rows, err := db.Query(`SELECT l.id, l.start_date, l.end_date, l.note, l.book_id, l.student_id, b.name, st.name
		FROM loans l
		JOIN books b ON b.id = l.book_id
		JOIN students st ON st.id = l.student_id
		ORDER BY l.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*models.Loan
	for rows.Next() {
		l := &models.Loan{Book: &models.Book{}, Student: &models.Student{}}
		if err := rows.Scan(&l.ID, &l.StartDate, &l.EndDate, &l.Note, &l.BookID, &l.StudentID,
			&l.Book.Name, &l.Student.Name); err != nil {
			return nil, err
		}
		l.Book.ID = l.BookID
		l.Student.ID = l.StudentID
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func GetLoanByID(db *sql.DB, id string) (*models.Loan, error) {
	l := &models.Loan{Book: &models.Book{}, Student: &models.Student{}}
	err := db.QueryRow(`SELECT l.id, l.start_date, l.end_date, l.note, l.book_id, l.student_id, b.name, st.name
		FROM loans l
		JOIN books b ON b.id = l.book_id
		JOIN students st ON st.id = l.student_id
		WHERE l.id = $1`, id).
		Scan(&l.ID, &l.StartDate, &l.EndDate, &l.Note, &l.BookID, &l.StudentID, &l.Book.Name, &l.Student.Name)
	if err != nil {
		return nil, err
	}
	l.Book.ID = l.BookID
	l.Student.ID = l.StudentID
	return l, nil
}

func CreateLoan(db *sql.DB, l *models.Loan) error {
	return db.QueryRow(`INSERT INTO loans (start_date, end_date, note, book_id, student_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		l.StartDate, l.EndDate, l.Note, l.BookID, l.StudentID).Scan(&l.ID)
}

func UpdateLoan(db *sql.DB, l *models.Loan) error {
	res, err := db.Exec(`UPDATE loans SET start_date = $1, end_date = $2, note = $3, book_id = $4, student_id = $5 WHERE id = $6`,
		l.StartDate, l.EndDate, l.Note, l.BookID, l.StudentID, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteLoan(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
