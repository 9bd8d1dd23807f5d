package factory

import (
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/adapters/httpserver"
	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/ports"
)

// IngressFactory creates the inbound transport serving the pipeline
type IngressFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.ClassifierService
}

// NewIngressFactory creates a new ingress factory
func NewIngressFactory(cfg *config.Config, logger *zap.Logger, service *core.ClassifierService) *IngressFactory {
	return &IngressFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateEmailIngress creates the HTTP ingress
func (f *IngressFactory) CreateEmailIngress() (ports.EmailIngress, error) {
	return httpserver.NewServer(f.service, f.logger, f.cfg.GetServer()), nil
}
