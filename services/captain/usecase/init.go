package usecase

import (
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/services/captain"
)

type CaptainUC struct {
	captainRepo captain.CaptainRepo
	cfg         *models.Config
}

// NewCaptainUC creates a new captain usecase instance
func NewCaptainUC(captainRepo captain.CaptainRepo, cfg *models.Config) *CaptainUC {
	return &CaptainUC{
		captainRepo: captainRepo,
		cfg:         cfg,
	}
}
