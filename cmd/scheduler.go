// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/billing-service/pkg/usage"
)

var runOnce bool

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "scheduler runs the daily storage usage update",
	Long:  `Recompute team storage usage, report it to the payment processor and suspend free teams over their allowance, every day at TASK_UPDATE_STORAGE_HOUR:TASK_UPDATE_STORAGE_MINUTE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScheduler(cmd.Context(), runOnce)
	},
}

func init() {
	schedulerCmd.Flags().BoolVar(&runOnce, "run-once", false, "Run the update immediately and exit")

	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(ctx context.Context, once bool) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	specs, logger, tracer, monitor := b.specs, b.logger, b.tracer, b.monitor

	var source usage.SourceInterface
	switch specs.UsageSource {
	case "s3":
		client, err := usage.NewS3Client(ctx, usage.S3Config{
			Bucket:          specs.S3Bucket,
			Prefix:          specs.S3Prefix,
			Region:          specs.S3Region,
			Endpoint:        specs.S3Endpoint,
			AccessKeyID:     specs.S3AccessKeyID,
			SecretAccessKey: specs.S3SecretAccessKey,
			UsePathStyle:    specs.S3UsePathStyle,
		})
		if err != nil {
			return fmt.Errorf("failed to create s3 client: %v", err)
		}
		source = usage.NewS3Source(client, specs.S3Bucket, specs.S3Prefix, tracer, monitor, logger)
	case "directory":
		source = usage.NewDirectorySource(specs.UsageDirectory, tracer, logger)
	default:
		return fmt.Errorf("unknown usage source %q, expected s3 or directory", specs.UsageSource)
	}

	var lock usage.LockInterface
	if specs.RedisURL != "" {
		client, err := usage.NewRedisClient(specs.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()

		lock = usage.NewRedisLock(client, specs.JobLockName, specs.JobLockTTL, logger)
	} else {
		logger.Info("REDIS_URL is not set, the usage update is only guarded within this process")
		lock = usage.NewLocalLock()
	}

	job := usage.NewJob(
		usage.NewCollector(source, b.storage, tracer, monitor, logger),
		usage.NewReporter(
			b.storage,
			b.processor,
			b.sender,
			usage.NewConfig(specs.FreeTierUsageLimitMB, specs.UsageAlertRatio, specs.StorageTierUnitMB, specs.SupportEmail),
			tracer,
			monitor,
			logger,
		),
		b.storage,
		lock,
		tracer,
		monitor,
		logger,
	)

	if once {
		return job.Run(ctx)
	}

	location, err := time.LoadLocation(specs.TaskTimezone)
	if err != nil {
		return fmt.Errorf("invalid TASK_TIMEZONE %q: %v", specs.TaskTimezone, err)
	}

	scheduler, err := usage.NewScheduler(job, specs.TaskUpdateStorageHour, specs.TaskUpdateStorageMinute, location, logger)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Security().SystemStartup()
	scheduler.Start()

	<-c

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	scheduler.Stop(stopCtx)

	return nil
}
