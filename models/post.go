package models

// Post is a single blog-style post served by the resource service.
//
// The resource client treats posts as opaque [Payload] values; this type is
// the typed view used by the fixture server storage and by callers that
// decode payloads.
type Post struct {
	// UserID identifies the author of the post.
	UserID int64 `json:"userId" yaml:"userId"`

	// ID is the server-assigned identifier. Zero for posts that have not
	// been created yet.
	ID int64 `json:"id,omitempty" yaml:"id"`

	// Title is the short headline of the post.
	Title string `json:"title" yaml:"title"`

	// Body is the free-form text of the post.
	Body string `json:"body" yaml:"body"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostFilter narrows a post listing. Zero values mean "no constraint".
type PostFilter struct {
	// UserID limits the listing to posts written by a single author.
	UserID int64

	// Limit caps the number of returned posts.
	Limit uint64
}
