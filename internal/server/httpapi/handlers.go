package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/services"
	"github.com/gorilla/mux"
)

type userResponse struct {
	User *models.User `json:"user"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type pairRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type commentRequest struct {
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Text      string `json:"comment_text"`
}

type commentDeleteRequest struct {
	UserID int64 `json:"user_id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (s *HTTPServer) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var reg services.Registration
	if !decodeJSON(w, r, &reg) {
		return
	}
	u, err := s.svc.Users.Register(r.Context(), reg)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "user registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, userResponse{User: u})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if !decodeJSON(w, r, &c) {
		return
	}
	u, err := s.svc.Users.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: u})
}

func (s *HTTPServer) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd models.ProfileUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	u, err := s.svc.Users.UpdateProfile(r.Context(), id, upd)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) listListings(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Listings.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// createListing accepts the multipart form of the add-listing screen. The
// photo part is optional.
func (s *HTTPServer) createListing(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	in := services.NewListing{
		Name:        r.FormValue("listing_name"),
		Description: r.FormValue("description"),
		Condition:   r.FormValue("condition"),
	}

	priceText := strings.TrimSpace(r.FormValue("price"))
	if priceText == "" {
		writeError(w, http.StatusBadRequest, "price is required")
		return
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "price must be a number")
		return
	}
	in.Price = price

	userID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("user_id")), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "user_id must be a number")
		return
	}
	in.UserID = userID

	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid photo part")
		return
	default:
		defer file.Close()
		in.Photo = file
		in.PhotoName = header.Filename
	}

	l, err := s.svc.Listings.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "listing created", "listing_id", l.ID, "user_id", l.UserID)
	writeJSON(w, http.StatusCreated, l)
}

func (s *HTTPServer) photo(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	p := filepath.Join(s.svc.Photos.Dir(), filepath.Base(name))
	if info, err := os.Stat(p); err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}
	http.ServeFile(w, r, p)
}

func (s *HTTPServer) listCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := s.svc.Collections.Cart(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// addResult answers 201 for a new entry and 200 when it was already there.
func (s *HTTPServer) addResult(w http.ResponseWriter, r *http.Request, res models.AddResult, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyExists {
		status = http.StatusOK
	}
	writeJSON(w, status, res)
}

func (s *HTTPServer) addToCart(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := s.svc.Collections.AddToCart(r.Context(), req.UserID, req.ProductID, req.Quantity)
	s.addResult(w, r, res, err)
}

func (s *HTTPServer) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.svc.Collections.RemoveFromCart(r.Context(), req.UserID, req.ProductID); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *HTTPServer) listWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := s.svc.Collections.Wishlist(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *HTTPServer) addToWishlist(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := s.svc.Collections.AddToWishlist(r.Context(), req.UserID, req.ProductID)
	s.addResult(w, r, res, err)
}

func (s *HTTPServer) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.svc.Collections.RemoveFromWishlist(r.Context(), req.UserID, req.ProductID); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *HTTPServer) listComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, err := s.svc.Comments.List(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) createComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := s.svc.Comments.Create(r.Context(), req.UserID, req.ProductID, req.Text)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *HTTPServer) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req commentDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.svc.Comments.Delete(r.Context(), req.UserID, id); err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "comment deleted", "comment_id", id, "user_id", req.UserID)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
