package orders

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"kitten-shop/internal/ports/gateway"
)

// RegisterRoutes mounts the submission intake. The router guards both
// endpoints with the shared-secret middleware.
func RegisterRoutes(r chi.Router, svc *Service) {
	v := validator.New()
	r.Post("/order", acceptOrderHandler(svc, v))
	r.Post("/feedback", acceptFeedbackHandler(svc, v))
}

type orderRequest struct {
	Type    string           `json:"type"`
	Name    string           `json:"name" validate:"required,max=200"`
	Phone   string           `json:"phone" validate:"required,max=50"`
	Address string           `json:"address" validate:"max=500"`
	Comment string           `json:"comment" validate:"max=2000"`
	Items   []orderItemInput `json:"items" validate:"required,min=1,dive"`
	Total   int              `json:"total" validate:"gte=0"`
	TS      time.Time        `json:"ts"`
}

type orderItemInput struct {
	ID    int    `json:"id" validate:"gt=0"`
	Name  string `json:"name" validate:"required"`
	Breed string `json:"breed"`
	Price int    `json:"price" validate:"gte=0"`
}

type feedbackRequest struct {
	Type    string    `json:"type"`
	Name    string    `json:"name" validate:"required,max=200"`
	Contact string    `json:"contact" validate:"max=200"`
	Subject string    `json:"subject" validate:"required,max=100"`
	Message string    `json:"message" validate:"required,max=4000"`
	TS      time.Time `json:"ts"`
}

type acceptedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

func acceptOrderHandler(svc *Service, v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := v.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		items := make([]Item, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, Item(it))
		}

		ts := req.TS
		if ts.IsZero() {
			ts = time.Now()
		}

		rec, err := svc.AcceptOrder(r.Context(), Order{
			Type:    string(gateway.KindOrder),
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Comment: req.Comment,
			Items:   items,
			Total:   req.Total,
			TS:      ts,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to accept order")
			return
		}

		writeJSON(w, http.StatusCreated, acceptedResponse{OK: true, ID: rec.ID})
	}
}

func acceptFeedbackHandler(svc *Service, v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req feedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := v.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ts := req.TS
		if ts.IsZero() {
			ts = time.Now()
		}

		rec, err := svc.AcceptFeedback(r.Context(), Feedback{
			Type:    string(gateway.KindFeedback),
			Name:    req.Name,
			Contact: req.Contact,
			Subject: req.Subject,
			Message: req.Message,
			TS:      ts,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to accept feedback")
			return
		}

		writeJSON(w, http.StatusCreated, acceptedResponse{OK: true, ID: rec.ID})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
