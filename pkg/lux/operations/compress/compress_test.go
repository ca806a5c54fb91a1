package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/operations"
)

// TestCompressionRoundTrip tests apply/reverse for every compression operation
func TestCompressionRoundTrip(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "compress_test",
		Level: hclog.Trace,
	})

	payloads := map[string][]byte{
		"small":      []byte("hello light show"),
		"repetitive": bytes.Repeat([]byte{0x12, 0x00, 0x0F, 0x00}, 4096),
		"single":     {0x42},
	}

	rng := rand.New(rand.NewSource(0x1125))
	random := make([]byte, 32*1024)
	rng.Read(random)
	payloads["random"] = random

	ops := []operations.Operation{
		NewGzipOperation(),
		NewBzip2Operation(),
		NewZstdOperation(),
	}

	for _, op := range ops {
		for name, payload := range payloads {
			t.Run(op.Name()+"/"+name, func(t *testing.T) {
				logger.Info("🧪 Testing compression round-trip",
					"operation", op.Name(),
					"payload", name,
					"size", len(payload),
				)

				compressed, err := op.Apply(payload)
				if err != nil {
					t.Fatalf("Apply: %v", err)
				}

				logger.Debug("📦 Compressed",
					"in", len(payload),
					"out", len(compressed),
				)

				restored, err := op.Reverse(compressed)
				if err != nil {
					t.Fatalf("Reverse: %v", err)
				}
				if !bytes.Equal(restored, payload) {
					t.Errorf("%s round-trip corrupted %s payload", op.Name(), name)
				}
			})
		}
	}
}

// TestStreamRoundTrip tests the stream variants against the buffer variants
func TestStreamRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("LUXBIN"), 2048)

	ops := []operations.Operation{
		NewGzipOperation(),
		NewBzip2Operation(),
		NewZstdOperation(),
	}

	for _, op := range ops {
		t.Run(op.Name(), func(t *testing.T) {
			var compressed bytes.Buffer
			if err := op.ApplyStream(bytes.NewReader(payload), &compressed); err != nil {
				t.Fatalf("ApplyStream: %v", err)
			}

			var restored bytes.Buffer
			if err := op.ReverseStream(bytes.NewReader(compressed.Bytes()), &restored); err != nil {
				t.Fatalf("ReverseStream: %v", err)
			}
			if !bytes.Equal(restored.Bytes(), payload) {
				t.Errorf("%s stream round-trip corrupted payload", op.Name())
			}
		})
	}
}

// TestRegistryPopulated tests that init registered every compression operation
func TestRegistryPopulated(t *testing.T) {
	for _, id := range []uint8{operations.OP_GZIP, operations.OP_BZIP2, operations.OP_ZSTD} {
		op, err := operations.Get(id)
		if err != nil {
			t.Fatalf("Get(0x%02x): %v", id, err)
		}
		if op.ID() != id {
			t.Errorf("Get(0x%02x).ID() = 0x%02x", id, op.ID())
		}
		if !op.CanReverse() {
			t.Errorf("%s not reversible", op.Name())
		}
	}
}

// TestChainRoundTrip tests multi-operation chains through the registry
func TestChainRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x24, 0x04, 0x24, 0x04, 0x09}, 1000)

	chains := [][]uint8{
		{operations.OP_GZIP},
		{operations.OP_BZIP2},
		{operations.OP_ZSTD},
		{operations.OP_GZIP, operations.OP_ZSTD},
		{operations.OP_ZSTD, operations.OP_BZIP2},
	}

	for _, chain := range chains {
		t.Run(operations.OperationsToString(mustPack(t, chain)), func(t *testing.T) {
			transformed, err := operations.ApplyChain(payload, chain)
			if err != nil {
				t.Fatalf("ApplyChain: %v", err)
			}

			restored, err := operations.ReverseChain(transformed, chain)
			if err != nil {
				t.Fatalf("ReverseChain: %v", err)
			}
			if !bytes.Equal(restored, payload) {
				t.Errorf("chain round-trip corrupted payload")
			}
		})
	}

	// Unregistered op IDs fail closed.
	if _, err := operations.ApplyChain(payload, []uint8{0x7F}); err == nil {
		t.Error("expected error for unregistered operation")
	}
	if _, err := operations.ReverseChain(payload, []uint8{0x7F}); err == nil {
		t.Error("expected error for unregistered operation")
	}
}

func mustPack(t *testing.T, ops []uint8) uint64 {
	t.Helper()
	packed, err := operations.PackOperations(ops)
	if err != nil {
		t.Fatalf("PackOperations: %v", err)
	}
	return packed
}
