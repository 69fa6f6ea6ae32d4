package modkit

import (
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
)

// Deps holds what every module may use. Pipelines are module owned and
// built from Cfg, never shared here
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}
