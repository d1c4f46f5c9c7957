package sharing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// DefaultExpirationHours é a validade padrão de um share link quando
// SHARING_DEFAULT_EXPIRATION_HOURS não está configurada.
const DefaultExpirationHours = 24

// CreateParams são os parâmetros para criação de um share link.
type CreateParams struct {
	BMID            string
	Target          domain.Target
	Selector        domain.DateSelector
	ExpirationHours int
}

// SharingService emite e valida share links de relatórios.
type SharingService interface {
	Create(params CreateParams) (*domain.SharedLink, error)
	Validate(token string) (*domain.ReportParams, error)
	DefaultExpiration() int
}

type Service struct {
	bmRepository      repository.BusinessManagerRepository
	reportRepo        repository.ReportRepository
	sharedLinkRepo    repository.SharedLinkRepository
	defaultExpiration int
	now               func() time.Time
}

func NewService(
	cfg *config.Config,
	bmRepo repository.BusinessManagerRepository,
	reportRepo repository.ReportRepository,
	sharedLinkRepo repository.SharedLinkRepository,
) *Service {
	defaultExpiration := cfg.Sharing.DefaultExpirationHours
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpirationHours
	}

	return &Service{
		bmRepository:      bmRepo,
		reportRepo:        reportRepo,
		sharedLinkRepo:    sharedLinkRepo,
		defaultExpiration: defaultExpiration,
		now:               time.Now,
	}
}

// DefaultExpiration devolve a validade padrão configurada, em horas.
func (s *Service) DefaultExpiration() int {
	return s.defaultExpiration
}

// Create emite um share link para os parâmetros informados. O relatório mais
// recente que casa com a consulta é referenciado de forma fraca: o link é
// criado mesmo quando nenhum relatório existe, pois a validação devolve
// parâmetros e a consulta é re-executada na visualização.
func (s *Service) Create(params CreateParams) (*domain.SharedLink, error) {
	bm, err := s.bmRepository.GetByBMID(params.BMID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": params.BMID,
			"error": err.Error(),
		}).Error("sharing: falha ao consultar business manager")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if bm == nil {
		return nil, tenancy.ErrInvalidBM
	}

	token, err := utils.GenerateShareToken()
	if err != nil {
		logrus.WithError(err).Error("sharing: falha ao gerar token")
		return nil, errors.Wrap(ErrTokenGeneration, err.Error())
	}

	expirationHours := params.ExpirationHours
	if expirationHours <= 0 {
		expirationHours = s.defaultExpiration
	}

	datePreset := params.Selector.StorageKey()

	var reportID *int
	report, err := s.reportRepo.FindLatest(params.BMID, params.Target.ObjectID(), params.Target.Type(), datePreset)
	if err != nil {
		// Referência fraca: sem relatório o link ainda é criado
		logrus.WithFields(logrus.Fields{
			"bm_id":     params.BMID,
			"object_id": params.Target.ObjectID(),
			"error":     err.Error(),
		}).Warn("sharing: falha ao buscar relatório correspondente")
	} else if report != nil {
		reportID = &report.ID
	}

	link := &domain.SharedLink{
		Token:      token,
		ReportID:   reportID,
		BMID:       params.BMID,
		DatePreset: datePreset,
		ExpiresAt:  s.now().Add(time.Duration(expirationHours) * time.Hour),
	}

	if adAccountID := params.Target.AdAccountID(); adAccountID != "" {
		link.AdAccountID = &adAccountID
	}
	if campaignID := params.Target.CampaignID(); campaignID != "" {
		link.CampaignID = &campaignID
	}

	linkID, err := s.sharedLinkRepo.Save(link)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": params.BMID,
			"error": err.Error(),
		}).Error("sharing: falha ao persistir share link")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	link.ID = linkID

	logrus.WithFields(logrus.Fields{
		"bm_id":      params.BMID,
		"object_id":  params.Target.ObjectID(),
		"expires_at": link.ExpiresAt,
	}).Info("sharing: share link criado")

	return link, nil
}

// Validate verifica um token e devolve os parâmetros originais da consulta
// para que o chamador re-execute a busca de insights.
func (s *Service) Validate(token string) (*domain.ReportParams, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	link, err := s.sharedLinkRepo.GetByToken(token)
	if err != nil {
		logrus.WithError(err).Error("sharing: falha ao consultar share link")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if link == nil {
		return nil, ErrInvalidToken
	}

	if link.Expired(s.now()) {
		return nil, ErrExpiredToken
	}

	params := link.Params()
	return &params, nil
}
