package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/residenhealth/patient-sync-api/internal/model"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
)

type fakeRepo struct {
	existing  *model.Patient
	getErr    error
	createErr error
	updateErr error
	updated   *model.Patient
}

func (f *fakeRepo) Exists(_ context.Context, _ int64) (bool, error) { return f.existing != nil, nil }

func (f *fakeRepo) Get(_ context.Context, _ int64) (*model.Patient, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakeRepo) Create(_ context.Context, patient *model.Patient) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	patient.ID = 42
	return 42, nil
}

func (f *fakeRepo) Update(_ context.Context, patient *model.Patient) error {
	f.updated = patient
	return f.updateErr
}

type fakeSyncer struct {
	created *model.Patient
	updated *model.Patient
	err     error
}

func (f *fakeSyncer) PatientCreated(_ context.Context, patient *model.Patient) error {
	f.created = patient
	return f.err
}

func (f *fakeSyncer) PatientUpdated(_ context.Context, patient *model.Patient) error {
	f.updated = patient
	return f.err
}

func newTestService(repo *fakeRepo, syncer *fakeSyncer) *Service {
	return NewService(repo, syncer, logger.NewLogger(nil))
}

func TestCreatePatient(t *testing.T) {
	syncer := &fakeSyncer{}
	svc := newTestService(&fakeRepo{}, syncer)

	created, err := svc.CreatePatient(context.Background(), &model.Patient{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NotEqual(t, uuid.Nil, created.UUID)
	require.NotNil(t, syncer.created, "creation must be pushed")
	assert.Equal(t, created.UUID, syncer.created.UUID)
}

func TestCreatePatient_Validation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeSyncer{})

	_, err := svc.CreatePatient(context.Background(), &model.Patient{LastName: "Lovelace"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCreatePatient_SyncFailureDoesNotFailCreate(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("endpoint down")}
	svc := newTestService(&fakeRepo{}, syncer)

	created, err := svc.CreatePatient(context.Background(), &model.Patient{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestUpdatePatient_KeepsExistingUUID(t *testing.T) {
	existingUUID := uuid.New()
	repo := &fakeRepo{existing: &model.Patient{ID: 42, UUID: existingUUID}}
	syncer := &fakeSyncer{}
	svc := newTestService(repo, syncer)

	updated, err := svc.UpdatePatient(context.Background(), 42, &model.Patient{
		FirstName: "Ada",
		LastName:  "King",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, existingUUID, updated.UUID)
	require.NotNil(t, syncer.updated, "update must be pushed")
}

func TestUpdatePatient_UnknownPatient(t *testing.T) {
	repo := &fakeRepo{existing: nil}
	svc := newTestService(repo, &fakeSyncer{})

	_, err := svc.UpdatePatient(context.Background(), 404, &model.Patient{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdatePatient_LookupFailureIsNotNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("connection reset")}
	svc := newTestService(repo, &fakeSyncer{})

	_, err := svc.UpdatePatient(context.Background(), 42, &model.Patient{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestGetPatient_UnknownPatient(t *testing.T) {
	svc := newTestService(&fakeRepo{existing: nil}, &fakeSyncer{})

	_, err := svc.GetPatient(context.Background(), 404)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetPatient_LookupFailureIsNotNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{getErr: errors.New("connection reset")}, &fakeSyncer{})

	_, err := svc.GetPatient(context.Background(), 42)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestUpdatePatient_StorageFailure(t *testing.T) {
	repo := &fakeRepo{
		existing:  &model.Patient{ID: 42, UUID: uuid.New()},
		updateErr: errors.New("connection reset"),
	}
	svc := newTestService(repo, &fakeSyncer{})

	_, err := svc.UpdatePatient(context.Background(), 42, &model.Patient{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}
