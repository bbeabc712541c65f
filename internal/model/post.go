package model

// Post is a single feed item. ID is assigned by the remote feed and identifies the post;
// Liked and ImageData are local to this client.
type Post struct {
	ID        int64
	Title     string
	Body      string
	Liked     bool
	ImageData []byte
}

// HasImage reports whether image content has been attached.
func (p Post) HasImage() bool {
	return len(p.ImageData) > 0
}

// Clone returns a copy that shares no memory with p.
func (p Post) Clone() Post {
	if p.ImageData != nil {
		p.ImageData = append([]byte(nil), p.ImageData...)
	}
	return p
}

// ClonePosts deep-copies a post slice.
func ClonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}

// FeedResponse is one element of the remote /posts payload.
type FeedResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
