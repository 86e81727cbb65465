package wordpress

import (
	"encoding/json"
	"fmt"
)

// ConnectionMetadata is the connection blob assembled by the account linking
// flow. The helpdesk platform persists it opaquely and replays it verbatim on
// every pull and channelback call; the service itself never stores it.
type ConnectionMetadata struct {
	Name              string `json:"name,omitempty"`
	Login             string `json:"login"`
	Password          string `json:"password"`
	Author            string `json:"author,omitempty"`
	WordpressLocation string `json:"wordpress_location"`
}

// ParseConnectionMetadata decodes the metadata blob received from the
// platform. A missing blob yields zero-value metadata rather than an error so
// the admin UI can render an empty form.
func ParseConnectionMetadata(raw string) (ConnectionMetadata, error) {
	var meta ConnectionMetadata
	if raw == "" {
		return meta, nil
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return ConnectionMetadata{}, fmt.Errorf("invalid connection metadata: %w", err)
	}
	return meta, nil
}

// Serialize encodes the metadata into the blob handed back to the platform.
func (m ConnectionMetadata) Serialize() (string, error) {
	encoded, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to serialize connection metadata: %w", err)
	}
	return string(encoded), nil
}

// SyncState carries the pull watermark: the date_gmt of the most recent
// comment already imported. Raw preserves the serialized text exactly as
// received so an unchanged state round-trips byte for byte.
type SyncState struct {
	MostRecentItemTimestamp string `json:"most_recent_item_timestamp,omitempty"`
	Raw                     string `json:"-"`
}

// ParseSyncState decodes the state blob received from the platform. A missing
// blob is treated as an empty state.
func ParseSyncState(raw string) (SyncState, error) {
	if raw == "" {
		return SyncState{Raw: "{}"}, nil
	}
	state := SyncState{Raw: raw}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return SyncState{}, fmt.Errorf("invalid sync state: %w", err)
	}
	return state, nil
}

// RemoteComment is the read-only view of a comment as returned by the
// WordPress REST API.
type RemoteComment struct {
	Link       string          `json:"link"`
	ID         json.Number     `json:"id"`
	Parent     json.Number     `json:"parent"`
	Post       json.Number     `json:"post"`
	Content    RenderedContent `json:"content"`
	DateGMT    string          `json:"date_gmt"`
	Author     json.Number     `json:"author"`
	AuthorName string          `json:"author_name,omitempty"`
}

// RenderedContent wraps the rendered HTML of a comment body.
type RenderedContent struct {
	Rendered string `json:"rendered"`
}

// RemoteUser is the read-only view of a user as returned by the WordPress
// REST API.
type RemoteUser struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// CreatedComment is the slice of the create-comment response the reply flow
// needs: the id of the comment WordPress just created.
type CreatedComment struct {
	ID json.Number `json:"id"`
}

// TransformedComment is a WordPress comment reshaped into the resource the
// helpdesk platform ingests.
type TransformedComment struct {
	ExternalID string        `json:"external_id"`
	Message    string        `json:"message"`
	ParentID   string        `json:"parent_id"`
	CreatedAt  string        `json:"created_at"`
	Author     CommentAuthor `json:"author"`
}

// CommentAuthor identifies the WordPress author of a transformed comment.
type CommentAuthor struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
}
