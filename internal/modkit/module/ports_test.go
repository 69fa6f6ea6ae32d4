package module

import (
	"context"
	"testing"

	phttp "langid/internal/platform/net/http"

	"github.com/stretchr/testify/assert"
)

type pinger interface{ Ping(context.Context) error }

type repo struct{}

func (repo) Ping(context.Context) error { return nil }

type service struct{}

type bundle struct {
	Service any
	Experts pinger
	hidden  pinger
}

type fake struct{ ports any }

func (f fake) Name() string             { return "fake" }
func (f fake) Prefix() string           { return "/fake" }
func (f fake) MountRoutes(phttp.Router) {}
func (f fake) Ports() any               { return f.ports }

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		found bool
	}{
		{"direct", repo{}, true},
		{"struct field", bundle{Service: service{}, Experts: repo{}}, true},
		{"pointer to struct", &bundle{Experts: repo{}}, true},
		{"nil field", bundle{Service: service{}}, false},
		{"unexported only", bundle{hidden: repo{}}, false},
		{"nil pointer", (*bundle)(nil), false},
		{"nil", nil, false},
		{"scalar", 7, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[pinger](fake{ports: tc.ports})
			assert.Equal(t, tc.found, ok)
			if ok {
				assert.NoError(t, got.Ping(context.Background()))
			}
		})
	}
}
