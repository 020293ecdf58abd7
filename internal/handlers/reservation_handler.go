package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/dto"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/httpresp"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/usecase/reservation"
)

// ======================================================
// USE CASES
// ======================================================

type weekdayLister interface {
	Execute(ctx context.Context, doctorID uint, year, month int) ([]int, error)
}

type slotLister interface {
	Execute(ctx context.Context, doctorID uint, date time.Time) (*domain.Slots, error)
}

type reservationCreator interface {
	Execute(ctx context.Context, in reservation.CreateReservationInput) (*models.Reservation, error)
}

type reservationCanceler interface {
	Execute(ctx context.Context, userID, reservationID uint) (*models.Reservation, error)
}

type reservationCompleter interface {
	Execute(ctx context.Context, doctorUserID, reservationID uint, opinion string) (*models.Reservation, error)
}

type reservationViewer interface {
	Execute(ctx context.Context, userID, reservationID uint) (*dto.ReservationDetailDTO, error)
}

type reservationLister interface {
	Execute(ctx context.Context, userID uint) ([]dto.ReservationListItemDTO, error)
}

// ReservationUseCases groups what ReservationHandler delegates to.
type ReservationUseCases struct {
	Weekdays weekdayLister
	Slots    slotLister
	Create   reservationCreator
	Cancel   reservationCanceler
	Complete reservationCompleter
	Detail   reservationViewer
	Mine     reservationLister
}

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	uc             ReservationUseCases
	maxUploadBytes int64
	logger         zerolog.Logger
}

func NewReservationHandler(
	uc ReservationUseCases,
	maxUploadBytes int64,
	logger zerolog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CompleteReservationRequest struct {
	Opinion string `json:"opinion" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /reservations/time/:doctorId?year&month[&dates]
//
// Without dates it lists the doctor's working weekdays in the month; with
// dates (day of month) it lists the offered and taken slots of that day.
func (h *ReservationHandler) Availability(c *gin.Context) {
	doctorID, ok := parseID(c.Param("doctorId"))
	if !ok {
		badRequest(c, codeInvalidID)
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		badRequest(c, domain.CodeInvalidMonth)
		return
	}

	dates, withDay := c.GetQuery("dates")
	if !withDay {
		weekdays, err := h.uc.Weekdays.Execute(c.Request.Context(), doctorID, year, month)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		httpresp.Result(c, weekdays)
		return
	}

	dayOfMonth, err := strconv.Atoi(dates)
	if err != nil {
		badRequest(c, domain.CodeInvalidDateOrTime)
		return
	}
	date, ok := calendarDate(year, month, dayOfMonth)
	if !ok {
		badRequest(c, domain.CodeInvalidDateOrTime)
		return
	}

	slots, err := h.uc.Slots.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ======================================================
// CREATE
// ======================================================

// POST /reservations (multipart)
func (h *ReservationHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpresp.Message(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		badRequest(c, codeInvalidRequest)
		return
	}

	files := form.File["images"]
	if len(files) > domain.MaxImages {
		badRequest(c, domain.CodeTooManyImages)
		return
	}

	doctorID, ok := parseID(c.PostForm("doctor_id"))
	if !ok {
		badRequest(c, codeInvalidID)
		return
	}

	images, closeAll, err := openImages(files)
	defer closeAll()
	if err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	r, err := h.uc.Create.Execute(c.Request.Context(), reservation.CreateReservationInput{
		PatientID: id.UserID,
		DoctorID:  doctorID,
		Date:      c.PostForm("date"),
		Time:      c.PostForm("time"),
		Symptom:   c.PostForm("symptom"),
		Images:    images,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "reservation created",
		"id":      r.ID,
	})
}

func openImages(files []*multipart.FileHeader) ([]reservation.Image, func(), error) {
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	images := make([]reservation.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		images = append(images, reservation.Image{Filename: fh.Filename, Content: f})
	}
	return images, closeAll, nil
}

// ======================================================
// READ
// ======================================================

// GET /reservations?res_id=
func (h *ReservationHandler) Detail(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	resID, ok := parseID(c.Query("res_id"))
	if !ok {
		badRequest(c, codeInvalidID)
		return
	}

	detail, err := h.uc.Detail.Execute(c.Request.Context(), id.UserID, resID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Result(c, detail)
}

// GET /reservations/mine
func (h *ReservationHandler) Mine(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	items, err := h.uc.Mine.Execute(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Result(c, items)
}

// ======================================================
// STATE CHANGES
// ======================================================

// PATCH /reservations?res_id=&work=cancel|complete
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	resID, ok := parseID(c.Query("res_id"))
	if !ok {
		badRequest(c, codeInvalidID)
		return
	}

	switch c.Query("work") {
	case "cancel":
		if _, err := h.uc.Cancel.Execute(c.Request.Context(), id.UserID, resID); err != nil {
			writeError(c, h.logger, err)
			return
		}
		httpresp.Message(c, http.StatusCreated, "canceled")

	case "complete":
		if !id.IsDoctor() {
			writeError(c, h.logger, httperr.ErrForbidden(domain.CodeForbidden))
			return
		}
		var req CompleteReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, codeInvalidRequest)
			return
		}
		if _, err := h.uc.Complete.Execute(c.Request.Context(), id.UserID, resID, req.Opinion); err != nil {
			writeError(c, h.logger, err)
			return
		}
		httpresp.Message(c, http.StatusCreated, "completed")

	default:
		badRequest(c, codeInvalidWork)
	}
}
