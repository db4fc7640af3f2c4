package domain

// FileRef is an opaque transport identifier for a previously uploaded binary
type FileRef string

// FileKind determines which send method is used for a file reference
type FileKind string

const (
	KindDocument FileKind = "document"
	KindVideo    FileKind = "video"
	KindVoice    FileKind = "voice"

	// Inbound-only kinds; the catalogue never sends these
	KindAudio FileKind = "audio"
	KindPhoto FileKind = "photo"
)

// Media represents an inbound media message
type Media struct {
	ChatID    int64
	UserID    int64
	Kind      FileKind
	FileRef   FileRef
	GroupID   string // media group tag, empty for standalone files
	MessageID int    // provider-assigned sequence number, used to restore album order
}
