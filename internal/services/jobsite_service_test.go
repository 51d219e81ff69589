package services

import (
	"testing"

	"hardware_store/internal/models"
	"hardware_store/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobSiteRepo struct {
	jobSites []*models.JobSite
}

func (r *fakeJobSiteRepo) Create(jobSite *models.JobSite) error {
	jobSite.ID = uint(len(r.jobSites) + 1)
	r.jobSites = append(r.jobSites, jobSite)
	return nil
}

func (r *fakeJobSiteRepo) ListByUser(userID uint) ([]models.JobSite, error) {
	var out []models.JobSite
	for _, js := range r.jobSites {
		if js.CreatedBy != nil && *js.CreatedBy == userID {
			out = append(out, *js)
		}
	}
	return out, nil
}

func (r *fakeJobSiteRepo) ListAll() ([]models.JobSite, error) {
	var out []models.JobSite
	for _, js := range r.jobSites {
		out = append(out, *js)
	}
	return out, nil
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  string
	}{
		{"local with trunk prefix", "0201234567", "+233201234567"},
		{"already international", "+15551234567", "+15551234567"},
		{"empty stays empty", "", ""},
		{"whitespace only stays empty", "   ", ""},
		{"local without trunk prefix", "201234567", "+233201234567"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.phone, "+233"))
		})
	}
}

func TestCreateJobSite_AttachesOwnerOnlyWhenAuthenticated(t *testing.T) {
	repo := &fakeJobSiteRepo{}
	svc := NewJobSiteService(repo, "+233")

	req := &validation.CreateJobSiteRequest{
		Name:         "Warehouse Extension",
		AddressLine1: "Plot 5, Spintex Road",
		ContactPhone: "0201234567",
	}

	owned, err := svc.CreateJobSite(req, customerUser(7))
	require.NoError(t, err)
	require.NotNil(t, owned.CreatedBy)
	assert.Equal(t, uint(7), *owned.CreatedBy)
	assert.Equal(t, "+233201234567", owned.ContactPhone)

	anonymous, err := svc.CreateJobSite(req, nil)
	require.NoError(t, err)
	assert.Nil(t, anonymous.CreatedBy)
}

func TestCreateJobSite_EmptyPhoneNotNormalized(t *testing.T) {
	repo := &fakeJobSiteRepo{}
	svc := NewJobSiteService(repo, "+233")

	jobSite, err := svc.CreateJobSite(&validation.CreateJobSiteRequest{
		Name:         "Site B",
		AddressLine1: "Ring Road",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", jobSite.ContactPhone)
}

func TestListJobSites_Visibility(t *testing.T) {
	repo := &fakeJobSiteRepo{}
	svc := NewJobSiteService(repo, "+233")

	req := &validation.CreateJobSiteRequest{Name: "Site A", AddressLine1: "Addr"}
	_, err := svc.CreateJobSite(req, customerUser(7))
	require.NoError(t, err)
	_, err = svc.CreateJobSite(req, customerUser(8))
	require.NoError(t, err)

	mine, err := svc.ListJobSites(customerUser(7))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListJobSites(staffUser())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListJobSites(nil)
	require.ErrorIs(t, err, ErrPermissionDenied)
}
