package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/models/response_models"
	"seoulplanner/internal/models/trip_models"
	"seoulplanner/internal/services"
	"seoulplanner/internal/state"
	"seoulplanner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	notices     *state.NoticeBoard
}

func NewTripController(tripService services.TripServiceInterface, notices *state.NoticeBoard) *TripController {
	return &TripController{
		tripService: tripService,
		notices:     notices,
	}
}

// GetTripHandler returns the full trip state. Sync-failure notices
// buffered since the previous read ride along once and are cleared.
func (tc *TripController) GetTripHandler(c *gin.Context) {
	snap := tc.tripService.Snapshot()
	resp := response_models.TripResponse{
		Meta:       snap.Meta,
		Itinerary:  snap.Itinerary,
		Logistics:  snap.Logistics,
		Checklists: snap.Checklists,
		Expenses:   snap.Expenses,
		Notices:    tc.notices.Drain(),
	}
	utils.RespondSuccess(c, resp, "Fetched trip state")
}

func (tc *TripController) UpdateTitleHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tc.tripService.UpdateTitle(c.Request.Context(), uid, req.Title)
	utils.RespondSuccess(c, nil, "Title updated")
}

func (tc *TripController) UpdateDatesHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.UpdateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := tc.tripService.UpdateDates(c.Request.Context(), uid, req.StartDate, req.EndDate); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Dates updated")
}

func (tc *TripController) AddItineraryItemHandler(c *gin.Context) {
	uid := c.GetString("uid")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	var req request_models.ItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := tc.tripService.AddItineraryItem(c.Request.Context(), uid, day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Itinerary item added")
}

func (tc *TripController) EditItineraryItemHandler(c *gin.Context) {
	uid := c.GetString("uid")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}
	id := c.Param("id")

	var req request_models.ItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := tc.tripService.EditItineraryItem(c.Request.Context(), uid, day, id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item updated")
}

func (tc *TripController) MoveItineraryItemHandler(c *gin.Context) {
	uid := c.GetString("uid")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	var req request_models.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	direction := trip_models.MoveDown
	if req.Direction == "up" {
		direction = trip_models.MoveUp
	}

	if err := tc.tripService.MoveItineraryItem(c.Request.Context(), uid, day, req.Index, direction); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item moved")
}

func (tc *TripController) DeleteItineraryItemHandler(c *gin.Context) {
	uid := c.GetString("uid")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true"

	if err := tc.tripService.DeleteItineraryItem(c.Request.Context(), uid, day, id, confirmed); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item deleted")
}

func (tc *TripController) DayBudgetHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	resp := response_models.DayBudgetResponse{
		Day:   day,
		Total: tc.tripService.DayBudget(day),
	}
	utils.RespondSuccess(c, resp, "Fetched day budget")
}

func (tc *TripController) AddChecklistItemHandler(c *gin.Context) {
	uid := c.GetString("uid")
	category := trip_models.ChecklistCategory(c.Param("category"))

	var req request_models.ChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := tc.tripService.AddChecklistItem(c.Request.Context(), uid, category, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Checklist item added")
}

func (tc *TripController) ToggleChecklistItemHandler(c *gin.Context) {
	uid := c.GetString("uid")
	category := trip_models.ChecklistCategory(c.Param("category"))
	id := c.Param("id")

	if err := tc.tripService.ToggleChecklistItem(c.Request.Context(), uid, category, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Checklist item toggled")
}

func (tc *TripController) DeleteChecklistItemHandler(c *gin.Context) {
	uid := c.GetString("uid")
	category := trip_models.ChecklistCategory(c.Param("category"))
	id := c.Param("id")

	if err := tc.tripService.DeleteChecklistItem(c.Request.Context(), uid, category, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Checklist item deleted")
}

func (tc *TripController) AddExpenseHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := tc.tripService.AddExpense(c.Request.Context(), uid, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Expense recorded")
}

func (tc *TripController) DeleteExpenseHandler(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	if err := tc.tripService.DeleteExpense(c.Request.Context(), uid, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted")
}

// ListExpensesHandler returns the ledger, optionally filtered to one
// day via ?date=YYYY-MM-DD.
func (tc *TripController) ListExpensesHandler(c *gin.Context) {
	expenses := tc.tripService.ListExpenses(c.Query("date"))
	utils.RespondSuccess(c, expenses, "Fetched expenses")
}

func (tc *TripController) ExpenseTotalsHandler(c *gin.Context) {
	totalKRW, totalTWD := tc.tripService.ExpenseTotals()
	resp := response_models.ExpenseTotalsResponse{
		TotalKRW: totalKRW,
		TotalTWD: totalTWD,
	}
	utils.RespondSuccess(c, resp, "Fetched expense totals")
}

func (tc *TripController) UpdateFlightsHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var info trip_models.FlightInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tc.tripService.UpdateFlights(c.Request.Context(), uid, info)
	utils.RespondSuccess(c, nil, "Flight details updated")
}

func (tc *TripController) UpdateHotelHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var info trip_models.HotelInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tc.tripService.UpdateHotel(c.Request.Context(), uid, info)
	utils.RespondSuccess(c, nil, "Hotel details updated")
}
