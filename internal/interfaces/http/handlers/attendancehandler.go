package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tongpass/internal/application/attendance/usecases"
	"tongpass/internal/domain/attendance"
	"tongpass/internal/interfaces/http/middleware"
	"tongpass/internal/shared/logger"
	"tongpass/internal/shared/utils"
)

// AttendanceHandler serves the attendance endpoints: QR token issuance for
// the worker app, ledger mutations from the gate scanner and the app, and
// the worker's own ledger views.
type AttendanceHandler struct {
	issueTokenUseCase  issueQRTokenUseCase
	checkInUseCase     checkInWithQRUseCase
	selfCheckInUseCase selfCheckInUseCase
	checkOutUseCase    checkOutUseCase
	todayUseCase       todayAttendanceUseCase
	monthlyUseCase     monthlyAttendanceUseCase
	logger             logger.Interface
}

func NewAttendanceHandler(
	issueTokenUC issueQRTokenUseCase,
	checkInUC checkInWithQRUseCase,
	selfCheckInUC selfCheckInUseCase,
	checkOutUC checkOutUseCase,
	todayUC todayAttendanceUseCase,
	monthlyUC monthlyAttendanceUseCase,
	logger logger.Interface,
) *AttendanceHandler {
	return &AttendanceHandler{
		issueTokenUseCase:  issueTokenUC,
		checkInUseCase:     checkInUC,
		selfCheckInUseCase: selfCheckInUC,
		checkOutUseCase:    checkOutUC,
		todayUseCase:       todayUC,
		monthlyUseCase:     monthlyUC,
		logger:             logger,
	}
}

type CheckOutWorkerRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
}

type CheckInWithQRRequest struct {
	SiteID    uint   `json:"site_id" binding:"required"`
	WorkerID  string `json:"worker_id" binding:"required"`
	Timestamp int64  `json:"timestamp" binding:"required"`
	ExpiresAt int64  `json:"expires_at" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	KeyID     string `json:"key_id"`
}

// IssueToken mints a short-lived QR payload for the authenticated worker.
func (h *AttendanceHandler) IssueToken(c *gin.Context) {
	result, err := h.issueTokenUseCase.Execute(c.Request.Context(), usecases.IssueQRTokenCommand{
		WorkerID: middleware.WorkerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":            result.Token,
		"validity_seconds": result.ValiditySeconds,
	})
}

// CheckInWithQR is called by the gate scanner with a scanned QR payload.
func (h *AttendanceHandler) CheckInWithQR(c *gin.Context) {
	var req CheckInWithQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.checkInUseCase.Execute(c.Request.Context(), usecases.CheckInWithQRCommand{
		SiteID: req.SiteID,
		Token: &attendance.Token{
			WorkerID:  req.WorkerID,
			Timestamp: req.Timestamp,
			ExpiresAt: req.ExpiresAt,
			Signature: req.Signature,
			KeyID:     req.KeyID,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "checked in", gin.H{
		"work_date": result.WorkDate,
		"record":    recordPayload(result.Record),
	})
}

// SelfCheckIn records attendance without a scanner, for sites that allow it.
func (h *AttendanceHandler) SelfCheckIn(c *gin.Context) {
	result, err := h.selfCheckInUseCase.Execute(c.Request.Context(), usecases.SelfCheckInCommand{
		WorkerID: middleware.WorkerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "checked in", gin.H{
		"work_date": result.WorkDate,
		"record":    recordPayload(result.Record),
	})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	result, err := h.checkOutUseCase.Execute(c.Request.Context(), usecases.CheckOutCommand{
		WorkerID: middleware.WorkerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checked out", gin.H{
		"work_date": result.WorkDate,
		"record":    recordPayload(result.Record),
	})
}

// CheckOutWorker closes another worker's open record, for the site
// administrator overriding an auto check-out or closing a forgotten day.
func (h *AttendanceHandler) CheckOutWorker(c *gin.Context) {
	var req CheckOutWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.checkOutUseCase.Execute(c.Request.Context(), usecases.CheckOutCommand{
		WorkerID: req.WorkerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checked out", gin.H{
		"work_date": result.WorkDate,
		"record":    recordPayload(result.Record),
	})
}

// Today reports the worker's state for the current work date.
func (h *AttendanceHandler) Today(c *gin.Context) {
	result, err := h.todayUseCase.Execute(c.Request.Context(), usecases.TodayAttendanceQuery{
		WorkerID: middleware.WorkerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{
		"work_date": result.WorkDate,
		"state":     string(result.State),
	}
	if result.Record != nil {
		payload["record"] = recordPayload(result.Record)
	}

	utils.SuccessResponse(c, http.StatusOK, "", payload)
}

// Monthly lists the worker's ledger rows for one month of work dates.
// The month arrives as ?month=YYYY-MM.
func (h *AttendanceHandler) Monthly(c *gin.Context) {
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "month must be formatted as YYYY-MM")
		return
	}

	result, err := h.monthlyUseCase.Execute(c.Request.Context(), usecases.MonthlyAttendanceQuery{
		WorkerID: middleware.WorkerID(c),
		Year:     month.Year(),
		Month:    month.Month(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	records := make([]gin.H, 0, len(result.Records))
	for _, record := range result.Records {
		records = append(records, recordPayload(record))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"year":                 result.Year,
		"month":                int(result.Month),
		"days_worked":          result.DaysWorked,
		"total_worked_minutes": int64(result.TotalWorked.Minutes()),
		"records":              records,
	})
}

func recordPayload(record *attendance.Record) gin.H {
	payload := gin.H{
		"id":            record.ID,
		"work_date":     attendance.FormatWorkDate(record.WorkDate),
		"state":         string(record.State()),
		"worker_name":   record.WorkerName,
		"is_senior":     record.IsSenior,
		"check_in_time": record.CheckInTime,
		"is_auto_out":   record.IsAutoOut,
	}
	if record.Age != nil {
		payload["age"] = *record.Age
	}
	if record.CheckOutTime != nil {
		payload["check_out_time"] = *record.CheckOutTime
	}
	return payload
}
