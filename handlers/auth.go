package handlers

import (
	"errors"
	"log"
	"net/http"
	"text/template"

	"softkom/models"
	"softkom/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func renderForm(w http.ResponseWriter, page string, data models.PageData) {
	tmpl, err := template.ParseFiles("./ui/html/" + page)
	if err != nil {
		http.Error(w, "Error loading template: "+err.Error(), http.StatusInternalServerError)
		return
	}
	err = tmpl.Execute(w, data)
	if err != nil {
		http.Error(w, "Error rendering template: "+err.Error(), http.StatusInternalServerError)
	}
}

// LoginPageHandler renders the login form; a caller with a live session is
// sent home instead.
func LoginPageHandler(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) {
	if _, err := utils.CurrentUserID(r, redisClient); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderForm(w, "login.html", loginPageData(r))
}

// loginPageData carries the post-registration flash through the redirect
// from the sign-up form.
func loginPageData(r *http.Request) models.PageData {
	if r.URL.Query().Get("registered") != "" {
		return models.PageData{Flash: "Account created successfully. Please log in.", FlashKind: "success"}
	}
	return models.PageData{}
}

// LoginHandler validates the posted credentials and establishes a session.
// The two failure messages are deliberately distinct; they mirror the
// product's documented behavior.
func LoginHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	remember := r.FormValue("remember") != ""

	if email == "" || password == "" {
		renderForm(w, "login.html", models.PageData{Flash: "All fields are required", FlashKind: "error"})
		return
	}

	err := utils.LoginUser(w, r, email, password, remember, db, redisClient)
	if err != nil {
		log.Println("Login failed for", email, ":", err)
		switch {
		case errors.Is(err, utils.ErrEmailNotFound):
			renderForm(w, "login.html", models.PageData{Flash: "Email not found. Please check your login details and try again.", FlashKind: "error"})
		case errors.Is(err, utils.ErrInvalidCredentials):
			renderForm(w, "login.html", models.PageData{Flash: "Invalid password. Please try again.", FlashKind: "error"})
		default:
			renderForm(w, "login.html", models.PageData{Flash: "An unexpected error occurred. Please try again.", FlashKind: "error"})
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func SignUpPageHandler(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) {
	if _, err := utils.CurrentUserID(r, redisClient); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderForm(w, "sign-up.html", models.PageData{})
}

// SignUpHandler creates an account from the registration form. Conflicts name
// the colliding field so the user knows what to change.
func SignUpHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	firstName := r.FormValue("first_name")
	surname := r.FormValue("surname")
	email := r.FormValue("email")
	phone := r.FormValue("phone_number")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirm_password")

	err := utils.RegisterUser(firstName, surname, email, phone, password, confirmPassword, db)
	if err != nil {
		log.Println("sign-up failed for", email, ":", err)
		switch {
		case errors.Is(err, utils.ErrMissingFields):
			renderForm(w, "sign-up.html", models.PageData{Flash: "All fields are required", FlashKind: "error"})
		case errors.Is(err, utils.ErrPasswordMismatch):
			renderForm(w, "sign-up.html", models.PageData{Flash: "Passwords do not match", FlashKind: "error"})
		case errors.Is(err, utils.ErrInvalidEmail):
			renderForm(w, "sign-up.html", models.PageData{Flash: "Please enter a valid email address", FlashKind: "error"})
		case errors.Is(err, utils.ErrInvalidPhone):
			renderForm(w, "sign-up.html", models.PageData{Flash: "Please enter a valid phone number", FlashKind: "error"})
		case errors.Is(err, utils.ErrEmailTaken):
			renderForm(w, "sign-up.html", models.PageData{Flash: "Email address already exists", FlashKind: "error"})
		case errors.Is(err, utils.ErrPhoneTaken):
			renderForm(w, "sign-up.html", models.PageData{Flash: "Phone number already exists", FlashKind: "error"})
		default:
			renderForm(w, "sign-up.html", models.PageData{Flash: "An error occurred while creating your account. Please try again.", FlashKind: "error"})
		}
		return
	}

	if err := utils.SendWelcomeEmail(email, firstName); err != nil {
		log.Println("welcome email failed for", email, ":", err)
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func LogOutHandler(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) {
	utils.LogoutUser(w, r, redisClient)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
