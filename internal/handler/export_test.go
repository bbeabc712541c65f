package handler

// Export for testing
type PostResponse = postResponse
type PostListResponse = postListResponse
type LikeResponse = likeResponse
type AcceptedResponse = acceptedResponse
type StatusResponse = statusResponse

var WriteServiceError = writeServiceError
var ParsePostID = parsePostID
