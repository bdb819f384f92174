// Package auth provides SQLite-backed user registration and login with
// salted password hashes.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store provides SQLite-backed persistence for user accounts.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at dbPath and creates tables if they don't exist.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		salt TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Register creates a new user account. Returns ErrUserExists if the username
// is taken.
func (s *Store) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	salt, err := newSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash := hashPassword(password, salt)

	_, err = s.db.Exec(
		`INSERT INTO users (id, username, password_hash, salt, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), username, hash, salt, time.Now(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Login verifies credentials. Returns ErrInvalidCredentials when the user is
// unknown or the password does not match.
func (s *Store) Login(username, password string) error {
	row := s.db.QueryRow(
		`SELECT password_hash, salt FROM users WHERE username = ?`,
		strings.TrimSpace(username),
	)

	var storedHash, salt string
	err := row.Scan(&storedHash, &salt)
	if err == sql.ErrNoRows {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("scan user: %w", err)
	}

	check := hashPassword(password, salt)
	if subtle.ConstantTimeCompare([]byte(check), []byte(storedHash)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func newSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
