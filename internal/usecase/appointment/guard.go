package appointment

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/google/uuid"
)

// ======================================================
// EXISTENCE GUARD
// ======================================================
//
// Valida que referências (pet, prestador) apontam para registros
// vivos antes de qualquer mutação. Somente leitura.

type Guard struct {
	repo domain.Repository
}

func NewGuard(repo domain.Repository) *Guard {
	return &Guard{repo: repo}
}

func (g *Guard) AssertPetExists(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return httperr.ErrNotFound("pet_not_found")
	}

	ok, err := g.repo.PetExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrNotFound("pet_not_found")
	}
	return nil
}

func (g *Guard) AssertProviderExists(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return httperr.ErrNotFound("provider_not_found")
	}

	ok, err := g.repo.ProviderExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrNotFound("provider_not_found")
	}
	return nil
}
