// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RequestTimeout time.Duration `envconfig:"request_timeout" default:"30s"`

	StripeSecretKey     string        `envconfig:"stripe_secret_key" required:"true"`
	StripeWebhookSecret string        `envconfig:"stripe_webhook_secret" required:"true"`
	StripeTimeout       time.Duration `envconfig:"stripe_timeout" default:"20s"`
	SuccessURL          string        `envconfig:"success_url" default:"http://localhost:3000/billing/success"`
	CancelURL           string        `envconfig:"cancel_url" default:"http://localhost:3000/billing"`

	FreeTierID            int64   `envconfig:"free_tier_id" default:"1"`
	TrialDays             int64   `envconfig:"trial_days" default:"30"`
	DefaultTaxCountry     string  `envconfig:"default_tax_country" default:"GB"`
	FreeTierUsageLimitMB  int64   `envconfig:"free_tier_usage_limit_mb" default:"9000"`
	UsageAlertRatio       float64 `envconfig:"usage_alert_ratio" default:"0.9"`
	StorageTierUnitMB     int64   `envconfig:"storage_tier_unit_mb" default:"1000"`
	SupportEmail          string  `envconfig:"support_email" default:"support@example.com"`
	InviteAcceptURLFormat string  `envconfig:"invite_accept_url_format" default:"http://localhost:3000/signup?invite=%s"`

	TaskUpdateStorageHour   int    `envconfig:"task_update_storage_hour" default:"2"`
	TaskUpdateStorageMinute int    `envconfig:"task_update_storage_minute" default:"0"`
	TaskTimezone            string `envconfig:"task_timezone" default:"UTC"`

	UsageSource    string `envconfig:"usage_source" default:"s3"`
	UsageDirectory string `envconfig:"usage_directory" default:"/var/lib/sync/media"`

	S3Bucket          string `envconfig:"s3_bucket"`
	S3Prefix          string `envconfig:"s3_prefix" default:""`
	S3Region          string `envconfig:"s3_region" default:"us-east-1"`
	S3Endpoint        string `envconfig:"s3_endpoint" default:""`
	S3AccessKeyID     string `envconfig:"s3_access_key_id" default:""`
	S3SecretAccessKey string `envconfig:"s3_secret_access_key" default:""`
	S3UsePathStyle    bool   `envconfig:"s3_use_path_style" default:"false"`

	RedisURL    string        `envconfig:"redis_url" default:""`
	JobLockTTL  time.Duration `envconfig:"job_lock_ttl" default:"6h"`
	JobLockName string        `envconfig:"job_lock_name" default:"billing-service:update-team-storage-usage"`

	PostmarkServerToken  string `envconfig:"postmark_server_token" default:""`
	PostmarkAccountToken string `envconfig:"postmark_account_token" default:""`
	SenderEmail          string `envconfig:"sender_email" default:"noreply@example.com"`

	SyncBackendURL          string        `envconfig:"sync_backend_url"`
	SyncBackendIdentityPath string        `envconfig:"sync_backend_identity_path" default:"/api/v1/authentication/whoami/"`
	SyncBackendTimeout      time.Duration `envconfig:"sync_backend_timeout" default:"5s"`

	AdminJWTIssuer      string   `envconfig:"admin_jwt_issuer" default:""`
	AdminJWKSURL        string   `envconfig:"admin_jwks_url" default:""`
	AdminAllowedSubject []string `envconfig:"admin_allowed_subjects" default:""`
	AdminRequiredScope  string   `envconfig:"admin_required_scope" default:"billing:admin"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
