package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/timezone"
)

// mensagens exibidas ao usuário, por código de erro
var errorMessages = map[string]string{
	"pet_not_found":          "Pet não encontrado.",
	"provider_not_found":     "Prestador não encontrado.",
	"provider_without_user":  "Prestador sem conta de usuário vinculada.",
	"invalid_provider_id":    "Prestador não encontrado.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"room_not_found":         "Sala não encontrada.",
	"invalid_participant_id": "Participante inválido.",
	"missing_participants":   "Informe os participantes da sala.",
	"invalid_status_patch":   "Informe exatamente um campo: status ou is_rated.",
}

func messageFor(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Erro ao processar a solicitação."
}

// respondError traduz erros de domínio para HTTP.
func respondError(c *gin.Context, err error) {
	var nf httperr.NotFoundError
	if errors.As(err, &nf) {
		httperr.NotFound(c, nf.Code, messageFor(nf.Code))
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, messageFor(be.Code))
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}

// --------------------------------------------------
// Parse leniente da query string (filtros nunca rejeitam)
// --------------------------------------------------

func parseIntQuery(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

func parseFloatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseTimeQuery aceita RFC3339 ou data simples (2006-01-02).
// endOfDay estende datas simples até o fim do dia (bound inclusivo).
func parseTimeQuery(c *gin.Context, key string, endOfDay bool) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}

	t, err := time.ParseInLocation("2006-01-02", raw, timezone.Location(""))
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t
}

// parseDateTime interpreta o horário do agendamento no fuso padrão.
func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", raw, timezone.Location(""))
}
