package database

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/musicorai90/lca/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, COALESCE(email, ''), role, created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, COALESCE(email, ''), role, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UsernameTaken reports whether another identity already holds the
// username. excludeUserID skips the identity being edited.
func UsernameTaken(db *sql.DB, username, excludeUserID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)`
	if err := db.QueryRow(query, username, excludeUserID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateUser inserts an identity, hashing the initial password.
func CreateUser(db *sql.DB, user *models.User) error {
	return createUser(db, user)
}

// execer is satisfied by both *sql.DB and *sql.Tx, so identity writes
// can join a larger transaction.
type execer interface {
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func createUser(q execer, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	query := `INSERT INTO users (username, password, email, role, created_at, updated_at)
			  VALUES ($1, $2, NULLIF($3, ''), $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return q.QueryRow(query, user.Username, hashed, user.Email, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

// SetUserRole idempotently binds the identity to a role. An identity
// holds exactly one role at a time.
func SetUserRole(q execer, userID string, role models.Role) error {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`
	_, err := q.Exec(query, role, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, password string) error {
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err = db.Exec(query, hashed, userID)
	return err
}
