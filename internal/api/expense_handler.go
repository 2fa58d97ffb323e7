package api

import (
	"net/http"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/api/middleware"
	"github.com/spendtrack/spendtrack-api/internal/api/shared"
	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/platform/logger"
	"github.com/spendtrack/spendtrack-api/internal/service"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// Named filter windows accepted by the list endpoint's period parameter.
const (
	periodWeek        = "week"
	periodMonth       = "month"
	periodThreeMonths = "3months"
)

// ExpenseHandler handles expense CRUD and filtering requests. All routes it
// serves sit behind the authentication middleware, which is responsible for
// placing the caller's user ID in the request context.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the given dependencies.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	if expenseService == nil {
		panic("expenseService cannot be nil")
	}
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /expenses. The expense is attributed to the
// authenticated caller; any user ID in the payload is ignored.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateExpenseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	expense, err := h.expenseService.Create(r.Context(), userID, req.Description, *req.Amount, req.Category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("expense created", "expense_id", expense.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusCreated, NewExpenseResponse(expense))
}

// Get handles GET /expenses/{id}.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.Find(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewExpenseResponse(expense))
}

// Update handles PUT /expenses/{id}. The payload must carry all mutable
// fields; the update timestamp is re-stamped server-side.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	var req UpdateExpenseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category := domain.NormalizeCategory(req.Category)
	update := store.ExpenseUpdate{
		Description: &req.Description,
		Amount:      req.Amount,
		Category:    &category,
	}

	expense, err := h.expenseService.Update(r.Context(), id, update)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("expense updated", "expense_id", expense.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, NewExpenseResponse(expense))
}

// Delete handles DELETE /expenses/{id}. Deleting an unknown ID reports 404;
// a successful delete carries no body.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	deleted, err := h.expenseService.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Expense not found")
		return
	}

	log.Debug("expense deleted", "expense_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /expenses. A period parameter selects a named trailing
// window; otherwise start/end select a custom inclusive range. With neither,
// every expense the caller owns is returned, most recently updated first.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var (
		expenses []*domain.Expense
		err      error
	)

	switch period := r.URL.Query().Get("period"); period {
	case periodWeek:
		expenses, err = h.expenseService.ListPastWeek(r.Context(), userID)
	case periodMonth:
		expenses, err = h.expenseService.ListPastMonth(r.Context(), userID)
	case periodThreeMonths:
		expenses, err = h.expenseService.ListPastThreeMonths(r.Context(), userID)
	case "":
		var start, end time.Time
		start, end, err = parseRangeParams(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date range")
			return
		}
		expenses, err = h.expenseService.ListByDateRange(r.Context(), userID, start, end)
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid period")
		return
	}

	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewExpenseListResponse(expenses))
}

// parseRangeParams reads the optional start/end query parameters as RFC 3339
// timestamps. A missing start falls back to the Unix epoch and a missing end
// to the current time, so omitting both yields an all-time window.
func parseRangeParams(r *http.Request) (start, end time.Time, err error) {
	start = time.Unix(0, 0).UTC()
	end = time.Now().UTC()

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return start, end, err
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}
