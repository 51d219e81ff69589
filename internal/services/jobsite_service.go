package services

import (
	"fmt"
	"strings"

	"hardware_store/internal/models"
	"hardware_store/internal/repository"
	"hardware_store/internal/validation"
)

type JobSiteService interface {
	CreateJobSite(req *validation.CreateJobSiteRequest, user *models.User) (*models.JobSite, error)
	ListJobSites(user *models.User) ([]models.JobSite, error)
}

type jobSiteService struct {
	jobSiteRepo        repository.JobSiteRepository
	defaultCountryCode string
}

func NewJobSiteService(jobSiteRepo repository.JobSiteRepository, defaultCountryCode string) JobSiteService {
	return &jobSiteService{jobSiteRepo: jobSiteRepo, defaultCountryCode: defaultCountryCode}
}

// NormalizePhone assumes numbers without a leading + are local: a leading
// trunk 0 is stripped and the default country code prefixed. Empty input is
// stored as empty.
func NormalizePhone(phone, defaultCountryCode string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if strings.HasPrefix(phone, "0") {
		return defaultCountryCode + phone[1:]
	}
	return defaultCountryCode + phone
}

func (s *jobSiteService) CreateJobSite(req *validation.CreateJobSiteRequest, user *models.User) (*models.JobSite, error) {
	jobSite := &models.JobSite{
		Name:                 req.Name,
		AddressLine1:         req.AddressLine1,
		AddressLine2:         req.AddressLine2,
		City:                 req.City,
		Region:               req.Region,
		ContactName:          req.ContactName,
		ContactPhone:         NormalizePhone(req.ContactPhone, s.defaultCountryCode),
		DeliveryInstructions: req.DeliveryInstructions,
	}
	// Owner is attached only for an authenticated, non-anonymous principal.
	if user != nil {
		jobSite.CreatedBy = &user.ID
	}

	if err := s.jobSiteRepo.Create(jobSite); err != nil {
		return nil, fmt.Errorf("failed to create job site: %w", err)
	}
	return jobSite, nil
}

func (s *jobSiteService) ListJobSites(user *models.User) ([]models.JobSite, error) {
	if user == nil {
		return nil, ErrPermissionDenied
	}
	if user.IsStaff() {
		return s.jobSiteRepo.ListAll()
	}
	return s.jobSiteRepo.ListByUser(user.ID)
}
