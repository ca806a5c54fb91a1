package pkg

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/logging"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/format"
)

// VerifyShowWithLogger verifies a show file step by step with a provided
// logger and returns an error describing every failed check.
func VerifyShowWithLogger(showPath string, logger hclog.Logger) error {
	reader := format.NewReaderWithLogger(showPath, logger)

	logger.Info("Verifying show integrity", "path", showPath)

	failures := []string{}

	if _, err := reader.ReadIndex(); err != nil {
		failures = append(failures, fmt.Sprintf("index verification failed: %v", err))
		logger.Error("Index verification failed", "error", err)
	} else {
		logger.Info("✓ Magic bookends and index checksum valid")
	}

	if _, err := reader.ReadMetadata(); err != nil {
		failures = append(failures, fmt.Sprintf("metadata verification failed: %v", err))
		logger.Error("Metadata verification failed", "error", err)
	} else {
		logger.Info("✓ Metadata checksum valid")
	}

	show, err := reader.ReadShow()
	if err != nil {
		failures = append(failures, fmt.Sprintf("event table verification failed: %v", err))
		logger.Error("Event table verification failed", "error", err)
	} else {
		logger.Info("✓ Event table checksum valid", "events", len(show.Events))
		if _, err := codec.Decode(show); err != nil {
			failures = append(failures, fmt.Sprintf("decode check failed: %v", err))
			logger.Error("Decode check failed", "error", err)
		} else {
			logger.Info("✓ Show decodes cleanly")
		}
	}

	if len(failures) > 0 {
		logger.Error("✗ Show verification failed", "error_count", len(failures))
		return fmt.Errorf("%w: %d check(s) failed", ErrVerifyFailed, len(failures))
	}
	logger.Info("✓ Show verification passed")
	return nil
}

// VerifyShow verifies a show using default logger settings
func VerifyShow(showPath string) error {
	logger := logging.NewLogger("luxbin-verify", logging.GetLogLevel(), nil)
	return VerifyShowWithLogger(showPath, logger)
}
