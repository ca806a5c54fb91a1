// Tests for operation chain packing/unpacking and name parsing.
package operations

import (
	"fmt"
	"testing"

	"github.com/hashicorp/go-hclog"
)

// TestOperationPacking tests packing operations into 64-bit integers
func TestOperationPacking(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "operations_test",
		Level: hclog.Trace,
	})

	testCases := []struct {
		name       string
		operations []uint8
		expected   uint64
	}{
		{
			name:       "empty/raw",
			operations: []uint8{},
			expected:   0x0,
		},
		{
			name:       "single GZIP",
			operations: []uint8{OP_GZIP},
			expected:   0x10,
		},
		{
			name:       "single BZIP2",
			operations: []uint8{OP_BZIP2},
			expected:   0x13,
		},
		{
			name:       "single ZSTD",
			operations: []uint8{OP_ZSTD},
			expected:   0x1b,
		},
		{
			name:       "GZIP + ZSTD",
			operations: []uint8{OP_GZIP, OP_ZSTD},
			expected:   0x1b10,
		},
		{
			name:       "max 8 operations",
			operations: []uint8{1, 2, 3, 4, 5, 6, 7, 8},
			expected:   0x0807060504030201,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Info("🧪 Testing operation packing",
				"test", tc.name,
				"operations", tc.operations,
			)

			packed, err := PackOperations(tc.operations)
			if err != nil {
				t.Fatalf("PackOperations(%v): %v", tc.operations, err)
			}

			logger.Debug("📦 Packed operations",
				"input", tc.operations,
				"output", fmt.Sprintf("0x%016x", packed),
				"expected", fmt.Sprintf("0x%016x", tc.expected),
			)

			if packed != tc.expected {
				t.Errorf("PackOperations(%v) = 0x%016x, want 0x%016x",
					tc.operations, packed, tc.expected)
			}
		})
	}
}

// TestOperationPackingTooMany tests the 8-operation chain limit
func TestOperationPackingTooMany(t *testing.T) {
	if _, err := PackOperations([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}); err == nil {
		t.Error("expected error for 9 operations")
	}
}

// TestOperationUnpacking tests unpacking 64-bit integers into operations
func TestOperationUnpacking(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "operations_test",
		Level: hclog.Trace,
	})

	testCases := []struct {
		name     string
		packed   uint64
		expected []uint8
	}{
		{
			name:     "empty/raw",
			packed:   0x0,
			expected: nil,
		},
		{
			name:     "single GZIP",
			packed:   0x10,
			expected: []uint8{OP_GZIP},
		},
		{
			name:     "GZIP + ZSTD",
			packed:   0x1b10,
			expected: []uint8{OP_GZIP, OP_ZSTD},
		},
		{
			name:     "OP_NONE terminates chain",
			packed:   0x1b0010,
			expected: []uint8{OP_GZIP},
		},
		{
			name:     "8 operations",
			packed:   0x0807060504030201,
			expected: []uint8{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Info("🔬 Testing operation unpacking",
				"test", tc.name,
				"packed", fmt.Sprintf("0x%016x", tc.packed),
			)

			operations := UnpackOperations(tc.packed)

			if !equalSlices(operations, tc.expected) {
				t.Errorf("UnpackOperations(0x%016x) = %v, want %v",
					tc.packed, operations, tc.expected)
			}
		})
	}
}

// TestOperationRoundTrip tests packing and unpacking are inverses
func TestOperationRoundTrip(t *testing.T) {
	testCases := [][]uint8{
		{OP_GZIP},
		{OP_BZIP2},
		{OP_ZSTD},
		{OP_GZIP, OP_ZSTD},
		{OP_BZIP2, OP_GZIP, OP_ZSTD},
		{1, 2, 3, 4, 5, 6, 7, 8},
	}

	for i, ops := range testCases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			packed, err := PackOperations(ops)
			if err != nil {
				t.Fatalf("PackOperations(%v): %v", ops, err)
			}
			unpacked := UnpackOperations(packed)
			if !equalSlices(unpacked, ops) {
				t.Errorf("Round-trip failed: %v -> 0x%016x -> %v",
					ops, packed, unpacked)
			}
		})
	}
}

// TestOperationStrings tests string <-> packed chain conversion
func TestOperationStrings(t *testing.T) {
	testCases := []struct {
		opString string
		packed   uint64
		rendered string
	}{
		{"raw", 0x0, "raw"},
		{"", 0x0, "raw"},
		{"gzip", 0x10, "gzip"},
		{"GZIP", 0x10, "gzip"},
		{"bzip2", 0x13, "bzip2"},
		{"zstd", 0x1b, "zstd"},
		{"gzip|zstd", 0x1b10, "gzip|zstd"},
		{" gzip | zstd ", 0x1b10, "gzip|zstd"},
	}

	for _, tc := range testCases {
		t.Run(tc.opString, func(t *testing.T) {
			packed, err := StringToOperations(tc.opString)
			if err != nil {
				t.Fatalf("StringToOperations(%q): %v", tc.opString, err)
			}
			if packed != tc.packed {
				t.Errorf("StringToOperations(%q) = 0x%016x, want 0x%016x",
					tc.opString, packed, tc.packed)
			}
			if s := OperationsToString(packed); s != tc.rendered {
				t.Errorf("OperationsToString(0x%016x) = %q, want %q",
					packed, s, tc.rendered)
			}
		})
	}

	if _, err := StringToOperations("lzma"); err == nil {
		t.Error("expected error for unsupported operation")
	}
}

// TestOperationNames tests operation constant to name mapping
func TestOperationNames(t *testing.T) {
	testCases := []struct {
		op   uint8
		name string
	}{
		{OP_NONE, "NONE"},
		{OP_GZIP, "GZIP"},
		{OP_BZIP2, "BZIP2"},
		{OP_ZSTD, "ZSTD"},
		{0x7F, "UNKNOWN_7f"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if name := GetName(tc.op); name != tc.name {
				t.Errorf("GetName(0x%02x) = %s, want %s", tc.op, name, tc.name)
			}
		})
	}
}

// Helper function to compare slices
func equalSlices(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
