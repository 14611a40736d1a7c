// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"net/http"
	"strings"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/pkg/authentication"
	"github.com/canonical/billing-service/pkg/billing"
)

const (
	ProjectsPath             = "/api/v1/collection"
	InvitePath               = "/api/v0/user/invite"
	InviteCollaboratorPath   = "/api/v0/user/invite/collaborator"
	TeamPath                 = "/api/v0/team"
	PluginPath               = "/api/v1/plugin"
	TrustedServicePath       = "/api/v0/trusted-service"
	BillingPath              = "/api/v0/billing"
	checkoutSessionPath      = "/api/v0/billing/create-checkout-session"
	webhookPath              = "/api/v0/billing/webhook"
	listProjectsPath         = "/api/v1/collection/list_multi"
	collaboratorDeniedReason = "Collaborators can't access this"
)

// admission is one guarded creation route and the dimension it consumes
type admission struct {
	path    string
	reached func(*billing.Limits) bool
	message string
}

var admissions = []admission{
	{ProjectsPath, (*billing.Limits).ProjectsReached, "Can't create a new project, limit is reached"},
	{InvitePath, (*billing.Limits).UsersReached, "Can't invite a new user, limit is reached"},
	{InviteCollaboratorPath, (*billing.Limits).CollaboratorsReached, "Can't invite a new collaborator, limit is reached"},
}

// collaboratorDenied lists the routes collaborators are kept out of, an empty method matches any
var collaboratorDenied = []struct {
	method string
	prefix string
}{
	{http.MethodPost, ProjectsPath},
	{http.MethodPost, InvitePath},
	{http.MethodGet, TeamPath},
	{http.MethodPost, PluginPath},
	{"", TrustedServicePath},
	{"", BillingPath},
}

// Gate rejects requests before they reach their handler when the caller's plan or role forbids them
type Gate struct {
	limits   LimitsReaderInterface
	resolver PrincipalResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// PlanLimits refuses creating a project or inviting a member once the team reached the limit
func (g *Gate) PlanLimits() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			rule := admissionFor(r.URL.Path)
			if rule == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := g.tracer.Start(r.Context(), "limits.Gate.PlanLimits")
			defer span.End()

			r = r.WithContext(ctx)

			p, r := g.principal(r)
			if !p.HasTeam() {
				next.ServeHTTP(w, r)
				return
			}

			limits, err := g.limits.GetLimits(ctx, p.TeamID)
			if err != nil {
				g.logger.Errorf("failed to read limits of team %d: %v", p.TeamID, err)
				g.write(w, http.StatusServiceUnavailable, "Unable to check plan limits")
				return
			}

			if rule.reached(limits) {
				g.logger.Security().AdmissionDenied(p.Username, r.URL.Path, rule.message)
				g.write(w, http.StatusUnauthorized, rule.message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Collaborators keeps collaborators out of project and plugin creation, invites, trusted services, the team view and billing
func (g *Gate) Collaborators() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !collaboratorRestricted(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			p, r := g.principal(r)
			if p == nil || !p.IsCollaborator {
				next.ServeHTTP(w, r)
				return
			}

			g.logger.Security().AdmissionDenied(p.Username, r.URL.Path, collaboratorDeniedReason)
			g.write(w, http.StatusUnauthorized, collaboratorDeniedReason)
		})
	}
}

// principal reuses the caller resolved upstream, or resolves it and keeps it on the request.
// Unresolvable callers are left to the authentication of the route itself.
func (g *Gate) principal(r *http.Request) (*authentication.Principal, *http.Request) {
	if p := authentication.GetPrincipal(r.Context()); p != nil {
		return p, r
	}

	credential := r.Header.Get("Authorization")
	if credential == "" {
		return nil, r
	}

	p, err := g.resolver.Resolve(r.Context(), credential)
	if err != nil {
		g.logger.Debugf("gate could not resolve the caller: %v", err)
		return nil, r
	}

	return p, r.WithContext(authentication.WithPrincipal(r.Context(), p))
}

func (g *Gate) write(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		g.logger.Errorf("failed to write response: %v", err)
	}
}

// admissionFor picks the most specific guarded route, trailing slashes are ignored
func admissionFor(path string) *admission {
	path = strings.TrimSuffix(path, "/")

	for i := len(admissions) - 1; i >= 0; i-- {
		if admissions[i].path == path {
			return &admissions[i]
		}
	}

	return nil
}

func collaboratorRestricted(method, path string) bool {
	if method == http.MethodOptions {
		return false
	}

	for _, allowed := range []string{checkoutSessionPath, webhookPath, listProjectsPath} {
		if strings.HasPrefix(path, allowed) {
			return false
		}
	}

	for _, denied := range collaboratorDenied {
		if (denied.method == "" || denied.method == method) && strings.HasPrefix(path, denied.prefix) {
			return true
		}
	}

	return false
}

func NewGate(limits LimitsReaderInterface, resolver PrincipalResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	g := new(Gate)

	g.limits = limits
	g.resolver = resolver

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
