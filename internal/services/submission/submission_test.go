package submission

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubmissionSaver struct {
	mock.Mock
}

func (m *MockSubmissionSaver) CreateSubmission(ctx context.Context, sub models.ContactSubmission) (uuid.UUID, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func validRaw() RawSubmission {
	return RawSubmission{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+1-555-0100",
		Subject:      "Inquiry",
		Message:      "Hello",
		InterestType: "general",
	}
}

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		mutate     func(r *RawSubmission)
		wantFields map[string]string
	}{
		{
			name:   "valid general inquiry",
			mutate: func(r *RawSubmission) {},
		},
		{
			name:   "interest defaults to general",
			mutate: func(r *RawSubmission) { r.InterestType = "" },
		},
		{
			name: "academy with age group",
			mutate: func(r *RawSubmission) {
				r.InterestType = "academy"
				r.AgeGroup = "U10"
			},
		},
		{
			name:       "academy without age group",
			mutate:     func(r *RawSubmission) { r.InterestType = "academy" },
			wantFields: map[string]string{"age_group": AgeGroupRequiredMessage},
		},
		{
			name:       "both without age group",
			mutate:     func(r *RawSubmission) { r.InterestType = "both" },
			wantFields: map[string]string{"age_group": AgeGroupRequiredMessage},
		},
		{
			name: "unknown age group on general inquiry",
			mutate: func(r *RawSubmission) {
				r.AgeGroup = "U18"
			},
			wantFields: map[string]string{"age_group": "Select a valid choice. U18 is not one of the available choices."},
		},
		{
			name:       "unknown interest",
			mutate:     func(r *RawSubmission) { r.InterestType = "newsletter" },
			wantFields: map[string]string{"interest_type": "Select a valid choice. newsletter is not one of the available choices."},
		},
		{
			name: "blank required fields",
			mutate: func(r *RawSubmission) {
				r.Name = "   "
				r.Message = ""
			},
			wantFields: map[string]string{
				"name":    "This field is required.",
				"message": "This field is required.",
			},
		},
		{
			name:       "bad email",
			mutate:     func(r *RawSubmission) { r.Email = "jane@" },
			wantFields: map[string]string{"email": "Enter a valid email address."},
		},
		{
			name:       "phone too long",
			mutate:     func(r *RawSubmission) { r.Phone = strings.Repeat("1", 21) },
			wantFields: map[string]string{"phone": "Ensure this value has at most 20 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			sub, err := v.Validate(raw, fixedNow)

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, fixedNow, sub.SubmittedAt)
				assert.False(t, sub.IsRead)
				assert.Empty(t, sub.AdminNotes)
				assert.True(t, sub.InterestType.Valid())
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
			assert.Equal(t, raw, verr.Input)
		})
	}
}

func TestValidator_TrimsInput(t *testing.T) {
	raw := validRaw()
	raw.Name = "  Jane Doe  "
	raw.InterestType = ""

	sub, err := NewValidator().Validate(raw, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", sub.Name)
	assert.Equal(t, models.InterestGeneral, sub.InterestType)
	assert.Equal(t, models.AgeGroupNone, sub.AgeGroup)
}

func TestValidator_Honeypot(t *testing.T) {
	v := NewValidator()

	raw := validRaw()
	raw.Honeypot = "http://spam.example"
	_, err := v.Validate(raw, fixedNow)
	assert.ErrorIs(t, err, ErrSpamSuspected)

	raw = RawSubmission{Honeypot: "x"}
	_, err = v.Validate(raw, fixedNow)
	assert.ErrorIs(t, err, ErrSpamSuspected)
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is stored once", func(t *testing.T) {
		repo := new(MockSubmissionSaver)
		svc := New(sl.NewDiscardLogger(), repo)
		svc.now = func() time.Time { return fixedNow }
		id := uuid.New()

		repo.On("CreateSubmission", ctx, mock.MatchedBy(func(s models.ContactSubmission) bool {
			return s.Name == "Jane Doe" && !s.IsRead && s.SubmittedAt.Equal(fixedNow)
		})).Return(id, nil).Once()

		sub, err := svc.Submit(ctx, validRaw())

		require.NoError(t, err)
		assert.Equal(t, id, sub.ID)
		repo.AssertNumberOfCalls(t, "CreateSubmission", 1)
	})

	t.Run("spam is never stored", func(t *testing.T) {
		repo := new(MockSubmissionSaver)
		svc := New(sl.NewDiscardLogger(), repo)

		raw := validRaw()
		raw.Honeypot = "filled"
		_, err := svc.Submit(ctx, raw)

		assert.ErrorIs(t, err, ErrSpamSuspected)
		repo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
	})

	t.Run("academy without age group is not stored", func(t *testing.T) {
		repo := new(MockSubmissionSaver)
		svc := New(sl.NewDiscardLogger(), repo)

		raw := validRaw()
		raw.InterestType = "academy"
		_, err := svc.Submit(ctx, raw)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "age_group")
		repo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockSubmissionSaver)
		svc := New(sl.NewDiscardLogger(), repo)
		repo.On("CreateSubmission", ctx, mock.Anything).Return(uuid.Nil, errors.New("db down")).Once()

		_, err := svc.Submit(ctx, validRaw())
		assert.Error(t, err)
	})
}
