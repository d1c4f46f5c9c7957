package tenancy

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
)

// TenantService gerencia as credenciais dos Business Managers registrados e
// resolve o cliente da API do Meta vinculado a cada um.
type TenantService interface {
	Register(bmID, accessToken string) (bool, error)
	ListBMs() ([]string, error)
	DeleteBM(bmID string) error

	// ClientForBM resolve a credencial do BM e constrói um cliente da Graph
	// API exclusivo para a chamada. Falha com ErrInvalidBM quando o BM não
	// está registrado.
	ClientForBM(bmID string) (metaclient.Client, error)
}

type Service struct {
	bmRepository  repository.BusinessManagerRepository
	clientFactory metaclient.Factory
}

func NewService(bmRepo repository.BusinessManagerRepository, clientFactory metaclient.Factory) TenantService {
	return &Service{
		bmRepository:  bmRepo,
		clientFactory: clientFactory,
	}
}

// Register registra um Business Manager ou sobrescreve o access token de um
// já existente. Retorna true quando o BM já existia.
func (s *Service) Register(bmID, accessToken string) (bool, error) {
	if bmID == "" {
		return false, ErrBMIDRequired
	}

	if accessToken == "" {
		return false, ErrAccessTokenRequired
	}

	existing, err := s.bmRepository.GetByBMID(bmID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": bmID,
			"error": err.Error(),
		}).Error("tenancy: falha ao consultar business manager")
		return false, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if err := s.bmRepository.SaveOrUpdate(bmID, accessToken); err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": bmID,
			"error": err.Error(),
		}).Error("tenancy: falha ao salvar business manager")
		return false, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"bm_id":   bmID,
		"updated": existing != nil,
	}).Info("tenancy: business manager registrado")

	return existing != nil, nil
}

func (s *Service) ListBMs() ([]string, error) {
	bmIDs, err := s.bmRepository.List()
	if err != nil {
		logrus.WithError(err).Error("tenancy: falha ao listar business managers")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if bmIDs == nil {
		bmIDs = make([]string, 0)
	}

	return bmIDs, nil
}

func (s *Service) DeleteBM(bmID string) error {
	if bmID == "" {
		return ErrBMIDRequired
	}

	deleted, err := s.bmRepository.Delete(bmID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": bmID,
			"error": err.Error(),
		}).Error("tenancy: falha ao remover business manager")
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return ErrBMNotFound
	}

	logrus.WithField("bm_id", bmID).Info("tenancy: business manager removido")
	return nil
}

func (s *Service) ClientForBM(bmID string) (metaclient.Client, error) {
	if bmID == "" {
		return nil, ErrBMIDRequired
	}

	bm, err := s.bmRepository.GetByBMID(bmID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id": bmID,
			"error": err.Error(),
		}).Error("tenancy: falha ao resolver credencial do business manager")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if bm == nil {
		return nil, ErrInvalidBM
	}

	return s.clientFactory(bm.AccessToken), nil
}
