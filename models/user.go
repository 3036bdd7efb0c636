package models

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID `db:"id"`
	FirstName    string    `db:"first_name"`
	Surname      string    `db:"surname"`
	Email        string    `db:"email"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash []byte    `db:"password_hash"`
}
