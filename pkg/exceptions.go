package pkg

import "errors"

var (
	// Input errors 📥
	ErrNoInput       = errors.New("❌ no input data")
	ErrInputTooLarge = errors.New("❌ input too large to encode")

	// Show errors 💡
	ErrShowNotFound = errors.New("❌ show file not found")
	ErrVerifyFailed = errors.New("❌ show verification failed")
)

// MaxInputSize caps encodable payloads. Every input byte becomes at least
// one 16-byte event record, so this bounds show files at roughly 1.4 GiB.
const MaxInputSize = 64 * 1024 * 1024
