package handlers

import (
	"log"
	"net/http"
	"text/template"

	"softkom/models"
	"softkom/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// renderPage serves a session-protected page. Unauthenticated callers go to
// the login form.
func renderPage(w http.ResponseWriter, r *http.Request, page string, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, err := utils.CurrentUserID(r, redisClient)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	name, err := utils.GetUserFirstName(userID, db)
	if err != nil {
		log.Println("error looking up user name:", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	st, _ := r.Cookie("session_token")
	csrfToken, err := utils.GetCSRFFromST(redisClient, st.Value)
	if err != nil {
		log.Println("error retrieving csrf token:", err)
	}

	if err := utils.UpdateLastActivityRedis(redisClient, st.Value); err != nil {
		log.Println("Error updating last activity in Redis:", err)
	}
	if err := utils.UpdateLastActivityDB(db, userID); err != nil {
		log.Println("Error updating last activity in database:", err)
	}

	tmpl, err := template.ParseFiles("./ui/html/" + page)
	if err != nil {
		log.Println("Error loading template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := models.PageData{
		Name:      name,
		CSRFtoken: csrfToken,
	}
	if err := tmpl.Execute(w, data); err != nil {
		log.Println("Error rendering template:", err)
		http.Error(w, "Error displaying page", http.StatusInternalServerError)
	}
}

func IndexHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	renderPage(w, r, "index.html", db, redisClient)
}

func AboutHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	renderPage(w, r, "about.html", db, redisClient)
}

func ContactHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	renderPage(w, r, "contact.html", db, redisClient)
}
