package module

import "langid/internal/services/langid/domain"

// Ports holds the ports exposed by the langid module
type Ports struct {
	Service domain.ServicePort
	Experts domain.ExpertRepository
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
