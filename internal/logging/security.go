// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup   = "sys_startup"
	eventSystemShutdown  = "sys_shutdown"
	eventAuthnFailure    = "authn_login_fail"
	eventAuthzFailure    = "authz_fail"
	eventAdmissionDenied = "plan_limit_denied"
	eventAdminAction     = "admin_action"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String("event", eventAuthnFailure+":"+subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFailure+":"+subject+","+resource),
	)
}

func (s *SecurityLogger) AdmissionDenied(subject, route, reason string) {
	s.l.Info(
		"request denied by plan limits",
		zap.String("event", eventAdmissionDenied+":"+subject+","+route),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AdminAction(subject, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String("event", eventAdminAction+":"+subject+","+action),
		zap.String("resource", resource),
	)
}
