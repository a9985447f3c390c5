package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

func newUpdateFixture(t *testing.T) (*UpdateAppointment, *UpdateAppointmentStatus, *RemoveAppointment, listFixture, *recorderReporter) {
	t.Helper()

	f := newListFixture(t)
	reporter := &recorderReporter{}
	find := NewFindAppointment(f.repo)

	update := NewUpdateAppointment(f.repo, NewGuard(f.repo), find, reporter)
	status := NewUpdateAppointmentStatus(f.repo, find, reporter)
	remove := NewRemoveAppointment(f.repo, reporter)

	return update, status, remove, f, reporter
}

func strPtr(s string) *string { return &s }

func TestUpdateSparsePatchKeepsOtherFields(t *testing.T) {
	update, _, _, f, reporter := newUpdateFixture(t)

	ap := f.appointment(t, func(a *models.Appointment) {
		a.Reason = "Banho"
		a.Notes = "usar shampoo neutro"
		a.Price = 80
	})

	got, err := update.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		Reason: strPtr("Banho e tosa"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Banho e tosa", got.Reason)
	// campos ausentes do patch ficam intactos
	assert.Equal(t, "usar shampoo neutro", got.Notes)
	assert.Equal(t, 80.0, got.Price)
	assert.Contains(t, reporter.actions(), "appointment_updated")
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	update, _, _, f, reporter := newUpdateFixture(t)

	ap := f.appointment(t, nil)

	got, err := update.Execute(context.Background(), ap.ID, UpdateAppointmentInput{})

	assert.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
	assert.NotContains(t, reporter.actions(), "appointment_updated")
}

func TestUpdateClearService(t *testing.T) {
	update, _, _, f, _ := newUpdateFixture(t)

	svc := models.Service{ProviderID: f.provider.ID, Name: "Banho", Active: true}
	assert.NoError(t, f.db.Create(&svc).Error)

	ap := f.appointment(t, func(a *models.Appointment) { a.ServiceID = &svc.ID })

	got, err := update.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		ClearService: true,
	})

	assert.NoError(t, err)
	assert.Nil(t, got.ServiceID)
}

func TestUpdateValidatesPatchedRefs(t *testing.T) {
	update, _, _, f, _ := newUpdateFixture(t)

	ap := f.appointment(t, nil)

	_, err := update.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		PetID: strPtr(uuid.NewString()),
	})
	assert.True(t, httperr.IsNotFound(err))

	_, err = update.Execute(context.Background(), ap.ID, UpdateAppointmentInput{
		ProviderID: strPtr("not-a-uuid"),
	})
	assert.True(t, httperr.IsNotFound(err))
}

func TestUpdateMissingAppointment(t *testing.T) {
	update, _, _, _, _ := newUpdateFixture(t)

	_, err := update.Execute(context.Background(), uuid.NewString(), UpdateAppointmentInput{
		Reason: strPtr("x"),
	})
	assert.True(t, httperr.IsNotFound(err))

	_, err = update.Execute(context.Background(), "oops", UpdateAppointmentInput{
		Reason: strPtr("x"),
	})
	assert.True(t, httperr.IsNotFound(err))
}

func TestUpdateStatusExactlyOneField(t *testing.T) {
	_, status, _, f, _ := newUpdateFixture(t)

	ap := f.appointment(t, nil)

	pending := "confirmed"
	rated := true

	_, err := status.Execute(context.Background(), ap.ID, UpdateStatusInput{})
	assert.Error(t, err)
	assert.False(t, httperr.IsNotFound(err))

	_, err = status.Execute(context.Background(), ap.ID, UpdateStatusInput{
		Status:  &pending,
		IsRated: &rated,
	})
	assert.Error(t, err)
	assert.False(t, httperr.IsNotFound(err))
}

func TestUpdateStatusLeavesOtherFields(t *testing.T) {
	_, status, _, f, reporter := newUpdateFixture(t)

	ap := f.appointment(t, func(a *models.Appointment) {
		a.Reason = "Consulta"
		a.Price = 120
	})

	confirmed := "confirmed"
	got, err := status.Execute(context.Background(), ap.ID, UpdateStatusInput{Status: &confirmed})

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "Consulta", got.Reason)
	assert.Equal(t, 120.0, got.Price)
	assert.Contains(t, reporter.actions(), "appointment_status_changed")
}

func TestUpdateRatedFlag(t *testing.T) {
	_, status, _, f, reporter := newUpdateFixture(t)

	ap := f.appointment(t, nil)

	rated := true
	got, err := status.Execute(context.Background(), ap.ID, UpdateStatusInput{IsRated: &rated})

	assert.NoError(t, err)
	assert.True(t, got.IsRated)
	assert.Equal(t, "pending", got.Status)
	assert.Contains(t, reporter.actions(), "appointment_rated_flag_changed")
}

func TestRemoveAppointment(t *testing.T) {
	_, _, remove, f, reporter := newUpdateFixture(t)

	ap := f.appointment(t, nil)

	assert.NoError(t, remove.Execute(context.Background(), ap.ID))
	assert.Contains(t, reporter.actions(), "appointment_deleted")

	var count int64
	f.db.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// segunda remoção do mesmo id é not found
	err := remove.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsNotFound(err))

	err = remove.Execute(context.Background(), "###")
	assert.True(t, httperr.IsNotFound(err))
}

func TestRemoveByPetIsIdempotent(t *testing.T) {
	_, _, remove, f, _ := newUpdateFixture(t)

	f.appointment(t, nil)
	f.appointment(t, nil)
	keep := seedAppointment(t, f.db, models.Appointment{
		PetID:      seedPet(t, f.db, f.tutor.ID, "Mia").ID,
		ProviderID: f.provider.ID,
		Date:       time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, remove.RemoveByPet(context.Background(), f.pet.ID))

	var ids []string
	f.db.Model(&models.Appointment{}).Pluck("id", &ids)
	assert.Equal(t, []string{keep.ID}, ids)

	// sem registros a apagar continua sendo sucesso
	assert.NoError(t, remove.RemoveByPet(context.Background(), f.pet.ID))
	// id malformado é no-op silencioso
	assert.NoError(t, remove.RemoveByPet(context.Background(), "###"))
}

func TestRemoveByProvider(t *testing.T) {
	_, _, remove, f, _ := newUpdateFixture(t)

	f.appointment(t, nil)

	assert.NoError(t, remove.RemoveByProvider(context.Background(), f.provider.ID))

	var count int64
	f.db.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
