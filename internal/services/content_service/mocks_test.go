package services

import (
	"context"
	"io"
	"mime/multipart"
	"sync"

	"portfolio/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, p models.Profile) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) GetProfile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfileFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockProfileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAcademyRepository struct {
	mock.Mock
}

func (m *MockAcademyRepository) CreateAcademy(ctx context.Context, a models.AcademyProfile) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAcademyRepository) GetAcademy(ctx context.Context) (*models.AcademyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcademyProfile), args.Error(1)
}

func (m *MockAcademyRepository) UpdateAcademyFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockAcademyRepository) DeleteAcademy(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAcademyRepository) AddGalleryImage(ctx context.Context, img models.GalleryImage) (uuid.UUID, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAcademyRepository) GetGalleryImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryImage), args.Error(1)
}

func (m *MockAcademyRepository) UpdateGalleryImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockAcademyRepository) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAcademyRepository) ListGalleryImages(ctx context.Context, academyID uuid.UUID) ([]models.GalleryImage, error) {
	args := m.Called(ctx, academyID)
	return args.Get(0).([]models.GalleryImage), args.Error(1)
}

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) CreateExperience(ctx context.Context, e models.Experience) (uuid.UUID, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockExperienceRepository) GetExperienceByID(ctx context.Context, id uuid.UUID) (models.Experience, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) UpdateExperienceFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockExperienceRepository) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExperienceRepository) ListExperiences(ctx context.Context, f models.ExperienceFilter) ([]models.Experience, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Experience), args.Error(1)
}

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) CreateTestimonial(ctx context.Context, t models.Testimonial) (uuid.UUID, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTestimonialRepository) GetTestimonialByID(ctx context.Context, id uuid.UUID) (models.Testimonial, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) UpdateTestimonialFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockTestimonialRepository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTestimonialRepository) ListTestimonials(ctx context.Context, f models.TestimonialFilter) ([]models.Testimonial, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) CreateProject(ctx context.Context, p models.Project) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectRepository) GetProjectByID(ctx context.Context, id uuid.UUID) (models.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, f models.ProjectFilter) ([]models.Project, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) AddProjectImage(ctx context.Context, img models.ProjectImage) (uuid.UUID, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectRepository) GetProjectImageByID(ctx context.Context, id uuid.UUID) (models.ProjectImage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ProjectImage), args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockProjectRepository) DeleteProjectImage(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectRepository) ListProjectImages(ctx context.Context, projectID uuid.UUID) ([]models.ProjectImage, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]models.ProjectImage), args.Error(1)
}

// fakeFiles records saved and released paths.
type fakeFiles struct {
	mu       sync.Mutex
	saveAs   string
	saveErr  error
	deleted  []string
	savedSub []string
}

func (f *fakeFiles) Save(_ context.Context, _ *multipart.FileHeader, subPath string) (string, int64, error) {
	return f.save(subPath)
}

func (f *fakeFiles) SaveReader(_ context.Context, _ io.Reader, _ string, subPath string) (string, int64, error) {
	return f.save(subPath)
}

func (f *fakeFiles) save(subPath string) (string, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedSub = append(f.savedSub, subPath)
	if f.saveErr != nil {
		return "", 0, f.saveErr
	}
	return f.saveAs, 1, nil
}

func (f *fakeFiles) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFiles) GetFullPath(p string) string { return "/media/" + p }
func (f *fakeFiles) URL(p string) string         { return "/media/" + p }
func (f *fakeFiles) BaseURL() string             { return "/media" }
func (f *fakeFiles) GetBaseDir() string          { return "/media" }

type countingCache struct {
	n int
}

func (c *countingCache) Invalidate() { c.n++ }
