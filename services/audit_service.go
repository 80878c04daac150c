package services

import (
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/types"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) GetAuditLogs(p types.Principal, params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Repos.Audit.GetAuditLogs(params)
}
