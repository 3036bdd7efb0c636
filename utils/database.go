package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"softkom/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func OpenDB(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		fmt.Printf("Error parsing DSN: %v\n", err)
		return nil, err
	}

	config.MaxConns = 50
	config.MaxConnIdleTime = 20 * time.Second
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Printf("Unable to create connection pool: %v\n", err)
		return nil, err
	}

	// Test the connection
	err = pool.Ping(context.Background())
	if err != nil {
		return nil, err
	}

	return pool, nil
}

func EmailInUse(email string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)"

	var exists bool
	err := db.QueryRow(ctx, stmt, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database error checking email: %w", err)
	}

	return exists, nil
}

func PhoneInUse(phone string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1)"

	var exists bool
	err := db.QueryRow(ctx, stmt, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database error checking phone number: %w", err)
	}

	return exists, nil
}

// GetUserByEmail returns ErrEmailNotFound when no account has that address.
func GetUserByEmail(email string, db *pgxpool.Pool) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var u models.User
	stmt := "SELECT id, first_name, surname, email, phone_number, password_hash FROM users WHERE email = $1;"
	row := db.QueryRow(ctx, stmt, email)
	err := row.Scan(&u.ID, &u.FirstName, &u.Surname, &u.Email, &u.PhoneNumber, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, ErrEmailNotFound
		}
		return u, fmt.Errorf("database error looking up user: %w", err)
	}
	return u, nil
}

func GetUserFirstName(userID string, db *pgxpool.Pool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var name string
	stmt := "SELECT first_name FROM users WHERE id = $1;"
	err := db.QueryRow(ctx, stmt, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("database error looking up user name: %w", err)
	}
	return name, nil
}

// InsertUser persists a new account. A unique-index race that slips past the
// pre-checks surfaces here as ErrEmailTaken or ErrPhoneTaken; the insert is
// atomic, so nothing partial persists.
func InsertUser(firstName, surname, email, phone string, passwordHash []byte, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "INSERT INTO users (first_name, surname, email, phone_number, password_hash) VALUES ($1, $2, $3, $4, $5);"
	_, err := db.Exec(ctx, stmt, firstName, surname, email, phone, passwordHash)
	if err != nil {
		return MapUniqueViolation(err)
	}
	return nil
}

func UpdateLastActivityDB(db *pgxpool.Pool, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "UPDATE users SET last_activity = NOW() WHERE id = $1"
	_, err := db.Exec(ctx, stmt, userID)
	if err != nil {
		return fmt.Errorf("error updating last activity: %w", err)
	}

	return nil
}
