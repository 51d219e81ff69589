package repository

import (
	"hardware_store/internal/models"

	"gorm.io/gorm"
)

type JobSiteRepository interface {
	Create(jobSite *models.JobSite) error
	ListByUser(userID uint) ([]models.JobSite, error)
	ListAll() ([]models.JobSite, error)
}

type jobSiteRepository struct {
	db *gorm.DB
}

func NewJobSiteRepository(db *gorm.DB) JobSiteRepository {
	return &jobSiteRepository{db: db}
}

func (r *jobSiteRepository) Create(jobSite *models.JobSite) error {
	return r.db.Create(jobSite).Error
}

func (r *jobSiteRepository) ListByUser(userID uint) ([]models.JobSite, error) {
	var jobSites []models.JobSite
	err := r.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&jobSites).Error
	return jobSites, err
}

func (r *jobSiteRepository) ListAll() ([]models.JobSite, error) {
	var jobSites []models.JobSite
	err := r.db.Order("created_at DESC").Find(&jobSites).Error
	return jobSites, err
}
