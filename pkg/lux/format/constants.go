package format

// Core format constants that never change
// For defaults and configuration, see defaults.go

var (
	// Individual emoji bytes for the header bookends
	BulbEmojiBytes    = []byte{0xF0, 0x9F, 0x92, 0xA1} // 💡 as bytes (header start)
	RainbowEmojiBytes = []byte{0xF0, 0x9F, 0x8C, 0x88} // 🌈 as bytes (header end)
)

const (
	// Format version - immutable
	LXSVersion = 0x20260001

	// Fixed sizes - part of the format specification
	IndexSize       = 248 // Packed index block size
	MagicHeaderSize = 256 // 💡 (4) + index (248) + 🌈 (4)
	EventRecordSize = 16  // One packed light event
)
