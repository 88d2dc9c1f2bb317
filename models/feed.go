package models

// FeedItem pairs a post with its author, both kept as the raw documents the
// resource service returned.
type FeedItem struct {
	Post   Payload `json:"post"`
	Author Payload `json:"author"`
}
