package appointment

import "time"

// ===============================
// Query Builder
// ===============================

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// colunas aceitas no sort explícito (sempre ascendente)
var sortColumns = map[string]string{
	"date":       "date",
	"price":      "price",
	"status":     "status",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

// Filter é o predicado conjuntivo sobre appointments. Campos zero
// significam "ausente": nenhum filtro é aplicado para eles.
type Filter struct {
	ProviderID string
	PetIDs     []string
	Statuses   []Status
	Search     string
	From       *time.Time
	To         *time.Time
	MinPrice   *float64
	MaxPrice   *float64
}

type OrderBy struct {
	Column string
	Desc   bool
}

// ListQuery é a descrição tipada de uma consulta de listagem,
// montada na borda (handler) a partir da query string.
type ListQuery struct {
	Filter

	Page      int
	Limit     int
	Sort      string
	Ascending bool
}

// Plan é a consulta normalizada, pronta para o repositório.
type Plan struct {
	Filter Filter
	Order  []OrderBy
	Page   int
	Limit  int
	Skip   int
}

// Build normaliza a consulta. Entradas malformadas nunca rejeitam:
// são coagidas para valores seguros.
//   - page = max(page, 1)
//   - limit ausente → DefaultLimit; senão clamp em [1, MaxLimit]
//   - skip = (page-1)*limit
//   - sort padrão: date DESC, created_at DESC
//   - sort explícito (coluna conhecida) → coluna ASC
//   - asc=true → date ASC
func (q ListQuery) Build() Plan {
	page := q.Page
	if page < 1 {
		page = 1
	}

	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	order := []OrderBy{
		{Column: "date", Desc: true},
		{Column: "created_at", Desc: true},
	}
	if col, ok := sortColumns[q.Sort]; ok && q.Sort != "" {
		order = []OrderBy{{Column: col}}
	} else if q.Ascending {
		order = []OrderBy{{Column: "date"}}
	}

	return Plan{
		Filter: q.Filter,
		Order:  order,
		Page:   page,
		Limit:  limit,
		Skip:   (page - 1) * limit,
	}
}

// Pages calcula o total de páginas do envelope: ceil(total/limit).
func Pages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
