package utils

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"softkom/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// RegisterUser validates the sign-up form and persists a new account with a
// bcrypt hash of the password. The plaintext is never stored.
func RegisterUser(firstName, surname, email, phone, password, confirmPassword string, db *pgxpool.Pool) error {
	if firstName == "" || surname == "" || email == "" || phone == "" || password == "" || confirmPassword == "" {
		return ErrMissingFields
	}
	if !SamePassword(password, confirmPassword) {
		return ErrPasswordMismatch
	}
	if err := ValidateEmail(email); err != nil {
		return ErrInvalidEmail
	}
	if err := ValidatePhoneNumber(phone); err != nil {
		return ErrInvalidPhone
	}

	// Pre-check both unique fields so the conflict names the right one.
	inUse, err := EmailInUse(email, db)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmailTaken
	}
	inUse, err = PhoneInUse(phone, db)
	if err != nil {
		return err
	}
	if inUse {
		return ErrPhoneTaken
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		log.Println("error hashing password", err)
		return err
	}

	return InsertUser(firstName, surname, email, phone, passwordHash, db)
}

// LoginUser verifies credentials and establishes a Redis-backed session.
// Unknown email and wrong password are distinct failures; the login page
// shows different messages for them.
func LoginUser(w http.ResponseWriter, r *http.Request, email string, password string, remember bool, db *pgxpool.Pool, client *redis.Client) error {
	user, err := GetUserByEmail(email, db)
	if err != nil {
		return err
	}

	if !CheckPasswordHash(password, string(user.PasswordHash)) {
		log.Printf("Password verification failed for user: %s", email)
		return ErrInvalidCredentials
	}

	if err := EstablishSession(w, r, user.ID.String(), remember, client); err != nil {
		return err
	}

	log.Printf("Login successful for user: %s", email)
	return nil
}

// EstablishSession creates the session record and only then sets the browser
// cookies, so a failed store never leaves orphan cookies behind.
func EstablishSession(w http.ResponseWriter, r *http.Request, userID string, remember bool, client *redis.Client) error {
	sessionToken := GenerateToken(32)
	csrfToken := GenerateToken(32)

	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}

	session := models.Session{
		SessionToken: sessionToken,
		UserID:       userID,
		CreatedAt:    time.Now().Format(time.RFC3339),
		ExpiresAt:    time.Now().Add(ttl).Format(time.RFC3339),
		LastActivity: time.Now().Format(time.RFC3339),
		CSRFToken:    csrfToken,
		UserAgent:    GetUserAgent(r),
		IPAddress:    GetIP(r),
	}

	if err := StoreSession(client, session, ttl); err != nil {
		log.Printf("Failed to store session: %v", err)
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		HttpOnly: false, // Needs to be accessible by JavaScript
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
	})

	return nil
}

// CurrentUserID resolves the caller's identity from the session cookie.
// Every protected operation short-circuits on ErrUnauthenticated.
func CurrentUserID(r *http.Request, client *redis.Client) (string, error) {
	st, err := r.Cookie("session_token")
	if err != nil || st.Value == "" {
		return "", ErrUnauthenticated
	}

	valid, err := ValidateSession(client, st.Value)
	if err != nil || !valid {
		return "", ErrUnauthenticated
	}

	userID, err := GetUserIDFromST(client, st.Value)
	if err != nil || userID == "" {
		return "", ErrUnauthenticated
	}
	return userID, nil
}

// AuthorizeRequest is CurrentUserID plus a CSRF check for mutating requests.
func AuthorizeRequest(r *http.Request, client *redis.Client) (string, error) {
	st, err := r.Cookie("session_token")
	if err != nil || st.Value == "" {
		return "", ErrUnauthenticated
	}

	valid, err := ValidateSession(client, st.Value)
	if err != nil || !valid {
		return "", ErrUnauthenticated
	}

	userID, err := AuthorizeSession(client, st.Value, r.Header.Get("X-CSRF-Token"))
	if err != nil {
		return "", ErrUnauthenticated
	}
	return userID, nil
}

// LogoutUser invalidates the current session and clears both cookies.
func LogoutUser(w http.ResponseWriter, r *http.Request, client *redis.Client) {
	if CookieExists(r, "session_token") {
		st, _ := r.Cookie("session_token")
		if err := DeleteSession(client, st.Value); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    "",
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func CookieExists(r *http.Request, name string) bool {
	c, err := r.Cookie(name)
	return err == nil && c.Value != ""
}

// GetUserAgent returns the User-Agent string recorded on the session
func GetUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// GetIP returns the client address for the session record, preferring the
// first X-Forwarded-For hop when a proxy added one.
func GetIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return r.RemoteAddr
}

func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), 10)
}
