package project

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *Project) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 3 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Project), args.Error(1)
}

func (m *MockProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, q ListQuery) ([]Project, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageCleaner struct {
	mock.Mock
}

func (m *MockImageCleaner) DeleteProjectImages(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func validCreateRequest() CreateProjectRequest {
	return CreateProjectRequest{
		ProjectName:        "Meditation Hall Roof",
		Description:        "Replace the roof",
		DonationGoalAmount: decimal.NewFromInt(1000),
		ProjectType:        "Construction",
		ProjectNature:      NatureOneTime,
		DonationLinkTarget: TargetSpecialProjects,
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, new(MockImageCleaner))

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.True(t, resp.CurrentDonationAmount.IsZero(), "current amount defaults to 0")
	repo.AssertExpectations(t)
}

func TestService_Create_RejectsNonPositiveGoal(t *testing.T) {
	svc := NewService(new(MockProjectRepository), new(MockImageCleaner))

	for _, goal := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		req := validCreateRequest()
		req.DonationGoalAmount = goal

		_, err := svc.Create(context.Background(), req)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "donation_goal_amount", fe.Field)
	}
}

func TestService_Create_RejectsNegativeCurrent(t *testing.T) {
	svc := NewService(new(MockProjectRepository), new(MockImageCleaner))

	req := validCreateRequest()
	negative := decimal.NewFromInt(-1)
	req.CurrentDonationAmount = &negative

	_, err := svc.Create(context.Background(), req)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "current_donation_amount", fe.Field)
}

func TestService_Create_RejectsStartAfterEnd(t *testing.T) {
	svc := NewService(new(MockProjectRepository), new(MockImageCleaner))

	req := validCreateRequest()
	start := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	req.StartDate = &start
	req.EndDate = &end

	_, err := svc.Create(context.Background(), req)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "start_date", fe.Field)
}

func TestService_Create_AllowsOverFunding(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, new(MockImageCleaner))

	req := validCreateRequest()
	over := decimal.NewFromInt(1200)
	req.CurrentDonationAmount = &over

	resp, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	// storage keeps the raw figure; only the displayed percentage caps
	assert.True(t, resp.CurrentDonationAmount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, float64(100), resp.ProgressPercent)
}

func TestService_Update_DateOrderUsesStoredValues(t *testing.T) {
	repo := new(MockProjectRepository)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&Project{
		ID:      3,
		EndDate: &end,
		Photos:  "[]",
	}, nil)

	svc := NewService(repo, new(MockImageCleaner))

	// new start lands after the stored end date
	start := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), 3, UpdateProjectRequest{StartDate: &start})

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "start_date", fe.Field)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, ErrProjectNotFound)

	svc := NewService(repo, new(MockImageCleaner))

	name := "x"
	_, err := svc.Update(context.Background(), 404, UpdateProjectRequest{ProjectName: &name})

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProject_ProgressPercent(t *testing.T) {
	cases := []struct {
		name    string
		goal    int64
		current int64
		want    float64
	}{
		{"zero", 1000, 0, 0},
		{"halfway", 1000, 500, 50},
		{"exact", 1000, 1000, 100},
		{"over-funded caps at 100", 1000, 1200, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Project{
				DonationGoalAmount:    decimal.NewFromInt(tc.goal),
				CurrentDonationAmount: decimal.NewFromInt(tc.current),
			}
			assert.Equal(t, tc.want, p.ProgressPercent())
		})
	}
}
