package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/httpresp"
	ucAppointment "github.com/aupetservices/petcare-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	listUC         *ucAppointment.ListAppointments
	listByTutorUC  *ucAppointment.ListAppointmentsByTutor
	findUC         *ucAppointment.FindAppointment
	updateUC       *ucAppointment.UpdateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	removeUC       *ucAppointment.RemoveAppointment
	countTodayUC   *ucAppointment.CountAppointmentsForToday
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	listByTutorUC *ucAppointment.ListAppointmentsByTutor,
	findUC *ucAppointment.FindAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	removeUC *ucAppointment.RemoveAppointment,
	countTodayUC *ucAppointment.CountAppointmentsForToday,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		listUC:         listUC,
		listByTutorUC:  listByTutorUC,
		findUC:         findUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		removeUC:       removeUC,
		countTodayUC:   countTodayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID      string  `json:"pet_id" binding:"required"`
	ProviderID string  `json:"provider_id" binding:"required"`
	ServiceID  *string `json:"service_id"`

	Date        string `json:"date" binding:"required"`
	DurationMin int    `json:"duration_min"`

	Reason   string  `json:"reason"`
	Notes    string  `json:"notes"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

type UpdateStatusRequest struct {
	Status  *string `json:"status"`
	IsRated *bool   `json:"is_rated"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PetID:        req.PetID,
		ProviderID:   req.ProviderID,
		ServiceID:    req.ServiceID,
		Date:         date,
		DurationMin:  req.DurationMin,
		Reason:       req.Reason,
		Notes:        req.Notes,
		Location:     req.Location,
		Price:        req.Price,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

// listQueryFromRequest monta a consulta tipada a partir da query
// string. Valores malformados são coagidos, nunca rejeitados.
func listQueryFromRequest(c *gin.Context) domain.ListQuery {
	q := domain.ListQuery{
		Page:      parseIntQuery(c, "page"),
		Limit:     parseIntQuery(c, "limit"),
		Sort:      c.Query("sort"),
		Ascending: c.Query("asc") == "true",
	}

	q.ProviderID = c.Query("provider_id")
	q.PetIDs = splitMulti(c.QueryArray("pet_id"))
	q.Statuses = domain.ParseStatuses(c.QueryArray("status"))
	q.Search = c.Query("q")
	q.From = parseTimeQuery(c, "from", false)
	q.To = parseTimeQuery(c, "to", true)
	q.MinPrice = parseFloatQuery(c, "min_price")
	q.MaxPrice = parseFloatQuery(c, "max_price")

	return q
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page, err := h.listUC.Execute(c.Request.Context(), listQueryFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, page)
}

func (h *AppointmentHandler) ListByTutor(c *gin.Context) {
	page, err := h.listByTutorUC.Execute(
		c.Request.Context(),
		c.Param("tutorId"),
		listQueryFromRequest(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, page)
}

// ======================================================
// DETAIL
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.findUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (patch esparso)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	// decodifica como mapa para distinguir "campo ausente"
	// de "campo presente com null"
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var in ucAppointment.UpdateAppointmentInput

	if err := patchString(raw, "pet_id", &in.PetID); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "provider_id", &in.ProviderID); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "reason", &in.Reason); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "notes", &in.Notes); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "location", &in.Location); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "contact_email", &in.ContactEmail); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := patchString(raw, "contact_phone", &in.ContactPhone); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// service_id presente com null limpa a referência
	if rawVal, ok := raw["service_id"]; ok {
		if string(rawVal) == "null" {
			in.ClearService = true
		} else {
			var v string
			if err := json.Unmarshal(rawVal, &v); err != nil {
				httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
				return
			}
			in.ServiceID = &v
		}
	}

	if rawVal, ok := raw["date"]; ok && string(rawVal) != "null" {
		var v string
		if err := json.Unmarshal(rawVal, &v); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
		date, err := parseDateTime(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data ou hora inválida.")
			return
		}
		in.Date = &date
	}

	if rawVal, ok := raw["duration_min"]; ok && string(rawVal) != "null" {
		var v int
		if err := json.Unmarshal(rawVal, &v); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
		in.DurationMin = &v
	}

	if rawVal, ok := raw["price"]; ok && string(rawVal) != "null" {
		var v float64
		if err := json.Unmarshal(rawVal, &v); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
		in.Price = &v
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateStatusInput{
		Status:  req.Status,
		IsRated: req.IsRated,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.removeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// TODAY
// ======================================================

func (h *AppointmentHandler) CountToday(c *gin.Context) {
	counters, err := h.countTodayUC.Execute(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, counters)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func patchString(raw map[string]json.RawMessage, key string, dst **string) error {
	rawVal, ok := raw[key]
	if !ok || string(rawVal) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(rawVal, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

// splitMulti aceita parâmetro repetido ou separado por vírgula.
func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
