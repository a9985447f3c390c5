package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsTerminal indica status que não contam como "ativos hoje".
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

func TerminalStatuses() []Status {
	return []Status{StatusCancelled, StatusCompleted}
}

// ParseStatuses normaliza o filtro de status: aceita valor único,
// string separada por vírgula ou lista: tudo vira um conjunto.
// Tokens vazios são descartados; tokens desconhecidos são mantidos
// (o predicado de pertencimento simplesmente não casa com nada).
func ParseStatuses(values []string) []Status {
	var out []Status
	seen := make(map[Status]bool)

	for _, v := range values {
		for _, token := range strings.Split(v, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			s := Status(token)
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	return out
}
