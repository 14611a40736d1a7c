// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TagSuspension = "trial-suspension"
	TagInvite     = "team-invite"
)

type Message struct {
	To       string
	Subject  string
	Tag      string
	HTMLBody string
	TextBody string
}

var suspensionTemplate = template.Must(template.New("suspension").Parse(
	`<p>Hello,</p>
<p>Your team <strong>{{.Team}}</strong> has used {{.UsageMB}} MB of storage, more than the {{.LimitMB}} MB included in the free plan.</p>
<p>Accounts in the team have been suspended. Contact <a href="mailto:{{.Support}}">{{.Support}}</a> to pick a plan and restore access.</p>`,
))

var inviteTemplate = template.Must(template.New("invite").Parse(
	`<p>Hello,</p>
<p>You have been invited to join <strong>{{.Team}}</strong>{{if .Collaborator}} as a collaborator{{end}}.</p>
<p><a href="{{.URL}}">Accept the invitation</a></p>`,
))

// SuspensionNotice tells a team owner why their accounts were disabled
func SuspensionNotice(to, team string, usageMB, limitMB int64, support string) (*Message, error) {
	var body bytes.Buffer

	err := suspensionTemplate.Execute(&body, map[string]interface{}{
		"Team":    team,
		"UsageMB": usageMB,
		"LimitMB": limitMB,
		"Support": support,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:       to,
		Subject:  "Your free plan storage limit was exceeded",
		Tag:      TagSuspension,
		HTMLBody: body.String(),
		TextBody: fmt.Sprintf("Team %s used %d MB of storage, more than the %d MB included in the free plan. Contact %s to restore access.", team, usageMB, limitMB, support),
	}, nil
}

func InviteNotice(to, team, acceptURL string, collaborator bool) (*Message, error) {
	var body bytes.Buffer

	err := inviteTemplate.Execute(&body, map[string]interface{}{
		"Team":         team,
		"URL":          acceptURL,
		"Collaborator": collaborator,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:       to,
		Subject:  fmt.Sprintf("You have been invited to %s", team),
		Tag:      TagInvite,
		HTMLBody: body.String(),
		TextBody: fmt.Sprintf("You have been invited to join %s: %s", team, acceptURL),
	}, nil
}
