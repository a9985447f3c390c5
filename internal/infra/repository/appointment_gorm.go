package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Directory lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPetByID(
	ctx context.Context,
	id string,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Tutor").
		Where("id = ?", id).
		First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) GetProviderByID(
	ctx context.Context,
	id string,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *AppointmentGormRepository) GetTutorByID(
	ctx context.Context,
	id string,
) (*models.Tutor, error) {

	var tutor models.Tutor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tutor).Error; err != nil {
		return nil, err
	}
	return &tutor, nil
}

func (r *AppointmentGormRepository) ListPetsByTutor(
	ctx context.Context,
	tutorID string,
) ([]models.Pet, error) {

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *AppointmentGormRepository) PetExists(
	ctx context.Context,
	id string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ProviderExists(
	ctx context.Context,
	id string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Provider{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentFields(
	ctx context.Context,
	id string,
	fields map[string]any,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields)

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) DeleteAppointmentsByPet(
	ctx context.Context,
	petID string,
) error {
	return r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) DeleteAppointmentsByProvider(
	ctx context.Context,
	providerID string,
) error {
	return r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet.Tutor").
		Preload("Provider").
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// applyFilter monta o predicado conjuntivo da listagem.
func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.ProviderID != "" {
		q = q.Where("provider_id = ?", f.ProviderID)
	}
	if len(f.PetIDs) > 0 {
		q = q.Where("pet_id IN ?", f.PetIDs)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(reason) LIKE ? OR LOWER(location) LIKE ? OR LOWER(notes) LIKE ?",
			term, term, term,
		)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	return q
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	plan domain.Plan,
) ([]models.Appointment, error) {

	q := applyFilter(
		r.db.WithContext(ctx).Model(&models.Appointment{}),
		plan.Filter,
	)

	for _, ord := range plan.Order {
		dir := "ASC"
		if ord.Desc {
			dir = "DESC"
		}
		q = q.Order(ord.Column + " " + dir)
	}

	var aps []models.Appointment
	if err := q.
		Preload("Pet.Tutor").
		Preload("Provider").
		Offset(plan.Skip).
		Limit(plan.Limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) CountAppointments(
	ctx context.Context,
	filter domain.Filter,
) (int64, error) {

	var count int64
	q := applyFilter(
		r.db.WithContext(ctx).Model(&models.Appointment{}),
		filter,
	)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Counters
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveInWindow(
	ctx context.Context,
	providerID string,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND date >= ? AND date < ? AND status NOT IN ?",
			providerID, start, end, domain.TerminalStatuses(),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountByStatusInWindow(
	ctx context.Context,
	providerID string,
	status domain.Status,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND date >= ? AND date < ? AND status = ?",
			providerID, start, end, status,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IsRecordNotFound mantém o mapeamento de erro do gorm fora dos use cases.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
