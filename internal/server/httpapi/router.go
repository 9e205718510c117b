package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler returns the routed API with logging and panic recovery applied.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.recoverer, s.requestLog)

	r.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	r.HandleFunc("/users/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/users/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}", s.updateProfile).Methods(http.MethodPut)

	r.HandleFunc("/listings", s.listListings).Methods(http.MethodGet)
	r.HandleFunc("/listings", s.createListing).Methods(http.MethodPost)
	r.HandleFunc("/photos/{name}", s.photo).Methods(http.MethodGet)

	r.HandleFunc("/cart/{id:[0-9]+}", s.listCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", s.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart", s.removeFromCart).Methods(http.MethodDelete)

	r.HandleFunc("/wishlist/{id:[0-9]+}", s.listWishlist).Methods(http.MethodGet)
	r.HandleFunc("/wishlist", s.addToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/wishlist", s.removeFromWishlist).Methods(http.MethodDelete)

	r.HandleFunc("/comments/{id:[0-9]+}", s.listComments).Methods(http.MethodGet)
	r.HandleFunc("/comments", s.createComment).Methods(http.MethodPost)
	r.HandleFunc("/comments/{id:[0-9]+}", s.deleteComment).Methods(http.MethodDelete)

	r.NotFoundHandler = s.requestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	}))
	r.MethodNotAllowedHandler = s.requestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))
	return r
}
