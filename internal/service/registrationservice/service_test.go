package registrationservice_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/service/registrationservice"
)

// MockRegistrationRepository é uma implementação mock da interface RegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindByID(ctx context.Context, id string) (domain.Registration, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindAll(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (domain.Registration, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Registration), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyApproval(reg domain.Registration) {
	m.Called(reg)
}

func newTestLogger() logger.Logger {
	return logger.New(io.Discard, "debug")
}

func TestCreate_ForcesPendingAndSanitizes(t *testing.T) {
	repo := new(MockRegistrationRepository)
	svc := registrationservice.NewService(repo, new(MockNotifier), newTestLogger())

	msg := `<script>alert(1)</script>Je veux un espace <b>coworking</b> & plus`
	input := domain.Registration{
		ID:        "client-chosen",
		FullName:  "  Amina <i>Benali</i> ",
		Email:     "amina@example.dz",
		Phone:     "0550123456",
		Type:      "individual",
		Center:    "Alger",
		SpaceType: "coworking",
		Message:   &msg,
		Status:    domain.StatusApproved,
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r domain.Registration) bool {
		return r.ID == "" &&
			r.Status == domain.StatusPending &&
			r.FullName == "Amina Benali" &&
			r.Message != nil && *r.Message == "Je veux un espace coworking & plus"
	})).Return(domain.Registration{ID: "r1", Status: domain.StatusPending}, nil)

	created, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_ApprovedNotifies(t *testing.T) {
	repo := new(MockRegistrationRepository)
	notifier := new(MockNotifier)
	svc := registrationservice.NewService(repo, notifier, newTestLogger())

	approved := domain.Registration{ID: "r1", Email: "amina@example.dz", Status: domain.StatusApproved}
	repo.On("UpdateStatus", mock.Anything, "r1", domain.StatusApproved).Return(approved, nil)
	notifier.On("NotifyApproval", approved).Return()

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.StatusApproved)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestUpdateStatus_RejectedDoesNotNotify(t *testing.T) {
	repo := new(MockRegistrationRepository)
	notifier := new(MockNotifier)
	svc := registrationservice.NewService(repo, notifier, newTestLogger())

	repo.On("UpdateStatus", mock.Anything, "r1", domain.StatusRejected).
		Return(domain.Registration{ID: "r1", Status: domain.StatusRejected}, nil)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.StatusRejected)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "NotifyApproval", mock.Anything)
}

func TestUpdateStatus_NotFoundDoesNotNotify(t *testing.T) {
	repo := new(MockRegistrationRepository)
	notifier := new(MockNotifier)
	svc := registrationservice.NewService(repo, notifier, newTestLogger())

	repo.On("UpdateStatus", mock.Anything, "missing", domain.StatusApproved).
		Return(domain.Registration{}, apperror.NewNotFoundError("Registration not found"))

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.StatusApproved)

	assert.True(t, apperror.IsNotFound(err))
	notifier.AssertNotCalled(t, "NotifyApproval", mock.Anything)
}

func TestCreate_MarkupOnlyRequiredFieldsRejected(t *testing.T) {
	repo := new(MockRegistrationRepository)
	svc := registrationservice.NewService(repo, new(MockNotifier), newTestLogger())

	_, err := svc.Create(context.Background(), domain.Registration{
		FullName:  "<script>alert(1)</script>",
		Email:     "amina@example.dz",
		Phone:     "0550123456",
		Type:      "<b></b>",
		Center:    "<i></i>",
		SpaceType: "<u></u>",
	})

	require.Error(t, err)
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)

	var paths []string
	for _, f := range apperror.Fields(err) {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"body.fullName", "body.type", "body.center", "body.spaceType"}, paths)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ApprovingTwiceStaysApproved(t *testing.T) {
	repo := new(MockRegistrationRepository)
	notifier := new(MockNotifier)
	svc := registrationservice.NewService(repo, notifier, newTestLogger())

	approved := domain.Registration{ID: "r1", Email: "amina@example.dz", Status: domain.StatusApproved}
	repo.On("UpdateStatus", mock.Anything, "r1", domain.StatusApproved).Return(approved, nil).Twice()
	notifier.On("NotifyApproval", approved).Return()

	first, err := svc.UpdateStatus(context.Background(), "r1", domain.StatusApproved)
	require.NoError(t, err)
	second, err := svc.UpdateStatus(context.Background(), "r1", domain.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, first.Status)
	assert.Equal(t, domain.StatusApproved, second.Status)
	repo.AssertExpectations(t)
}
