package homepage

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/services/submission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContentReader struct {
	mock.Mock
}

func (m *MockContentReader) GetProfile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockContentReader) GetAcademy(ctx context.Context) (*models.AcademyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcademyProfile), args.Error(1)
}

func (m *MockContentReader) ListExperiences(ctx context.Context, f models.ExperienceFilter) ([]models.Experience, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockContentReader) ListCertifications(ctx context.Context, f models.CertificationFilter) ([]models.Certification, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Certification), args.Error(1)
}

func (m *MockContentReader) ListCompanyLogos(ctx context.Context, f models.CompanyFilter) ([]models.CompanyLogo, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.CompanyLogo), args.Error(1)
}

func (m *MockContentReader) ListTestimonials(ctx context.Context, f models.TestimonialFilter) ([]models.Testimonial, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockContentReader) ListProjects(ctx context.Context, f models.ProjectFilter) ([]models.Project, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockContentReader) ListActionPhotos(ctx context.Context, f models.ActionPhotoFilter) ([]models.ActionPhoto, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.ActionPhoto), args.Error(1)
}

func emptyStore() *MockContentReader {
	m := new(MockContentReader)
	m.On("GetProfile", mock.Anything).Return(nil, nil)
	emptyCollections(m)
	return m
}

// emptyCollections stubs everything except GetProfile.
func emptyCollections(m *MockContentReader) {
	m.On("GetAcademy", mock.Anything).Return(nil, nil)
	m.On("ListExperiences", mock.Anything, mock.Anything).Return([]models.Experience(nil), nil)
	m.On("ListCertifications", mock.Anything, mock.Anything).Return([]models.Certification(nil), nil)
	m.On("ListCompanyLogos", mock.Anything, mock.Anything).Return([]models.CompanyLogo(nil), nil)
	m.On("ListTestimonials", mock.Anything, mock.Anything).Return([]models.Testimonial(nil), nil)
	m.On("ListProjects", mock.Anything, mock.Anything).Return([]models.Project(nil), nil)
	m.On("ListActionPhotos", mock.Anything, mock.Anything).Return([]models.ActionPhoto(nil), nil)
}

func TestBuildHomepagePayload_EmptyStore(t *testing.T) {
	p, err := BuildHomepagePayload(context.Background(), emptyStore(), EmptyForm())

	require.NoError(t, err)
	assert.Nil(t, p.Profile)
	assert.Nil(t, p.Academy)
	assert.NotNil(t, p.Experiences)
	assert.Empty(t, p.Experiences)
	assert.Empty(t, p.Certifications)
	assert.Empty(t, p.Companies)
	assert.Empty(t, p.Testimonials)
	assert.Empty(t, p.Projects)
	assert.Empty(t, p.ActionPhotos)
	assert.Equal(t, "general", p.Form.Values.InterestType)
	assert.Empty(t, p.Form.Errors)
}

func TestBuildHomepagePayload_Filters(t *testing.T) {
	m := new(MockContentReader)
	profile := &models.Profile{ID: uuid.New(), Name: "Rohan"}

	m.On("GetProfile", mock.Anything).Return(profile, nil)
	m.On("GetAcademy", mock.Anything).Return(&models.AcademyProfile{Title: "Academy"}, nil)
	m.On("ListExperiences", mock.Anything, models.ExperienceFilter{}).Return([]models.Experience{{Company: "A"}}, nil)
	m.On("ListCertifications", mock.Anything, models.CertificationFilter{}).Return([]models.Certification{}, nil)
	m.On("ListCompanyLogos", mock.Anything, models.CompanyFilter{OnHomepage: models.Bool(true)}).
		Return([]models.CompanyLogo{{CompanyName: "ISL"}}, nil)
	m.On("ListTestimonials", mock.Anything, models.TestimonialFilter{Featured: models.Bool(true)}).Return([]models.Testimonial{}, nil)
	m.On("ListProjects", mock.Anything, models.ProjectFilter{Featured: models.Bool(true)}).Return([]models.Project{}, nil)
	m.On("ListActionPhotos", mock.Anything, models.ActionPhotoFilter{Featured: models.Bool(true)}).Return([]models.ActionPhoto{}, nil)

	p, err := BuildHomepagePayload(context.Background(), m, EmptyForm())

	require.NoError(t, err)
	assert.Equal(t, profile, p.Profile)
	assert.Len(t, p.Companies, 1)
	m.AssertExpectations(t)
}

func TestBuildHomepagePayload_Error(t *testing.T) {
	m := new(MockContentReader)
	m.On("GetProfile", mock.Anything).Return(nil, errors.New("db down"))

	_, err := BuildHomepagePayload(context.Background(), m, EmptyForm())
	assert.Error(t, err)
}

func TestFormWithErrors(t *testing.T) {
	verr := &submission.ValidationError{
		Fields: map[string]string{"age_group": submission.AgeGroupRequiredMessage},
		Input:  submission.RawSubmission{Name: "Jane", InterestType: "academy", Honeypot: "x"},
	}

	f := FormWithErrors(verr)

	assert.Equal(t, "Jane", f.Values.Name)
	assert.Empty(t, f.Values.Honeypot)
	assert.Equal(t, submission.AgeGroupRequiredMessage, f.Errors["age_group"])
	assert.Equal(t, models.AgeGroupChoices, f.AgeGroupChoices)
}

func TestService_CacheAndInvalidate(t *testing.T) {
	ctx := context.Background()
	m := emptyStore()
	svc := New(sl.NewDiscardLogger(), m, time.Minute)

	_, err := svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	_, err = svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	m.AssertNumberOfCalls(t, "GetProfile", 1)

	form := EmptyForm()
	form.Errors["email"] = "Enter a valid email address."
	p, err := svc.Build(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, form.Errors, p.Form.Errors)

	svc.Invalidate()
	_, err = svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	m.AssertNumberOfCalls(t, "GetProfile", 2)
}

func TestService_InvalidateDuringBuild(t *testing.T) {
	ctx := context.Background()
	m := new(MockContentReader)
	svc := New(sl.NewDiscardLogger(), m, time.Minute)

	// An admin write lands while the first build is still reading.
	m.On("GetProfile", mock.Anything).
		Run(func(mock.Arguments) { svc.Invalidate() }).
		Return(&models.Profile{Name: "Before"}, nil).Once()
	m.On("GetProfile", mock.Anything).Return(&models.Profile{Name: "After"}, nil)
	emptyCollections(m)

	p, err := svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	assert.Equal(t, "Before", p.Profile.Name)

	p, err = svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	assert.Equal(t, "After", p.Profile.Name)
	m.AssertNumberOfCalls(t, "GetProfile", 2)

	_, err = svc.Build(ctx, EmptyForm())
	require.NoError(t, err)
	m.AssertNumberOfCalls(t, "GetProfile", 2)
}
