package hashutil_test

import (
	"testing"

	"github.com/emmaderbe/SocialApp/internal/hashutil"

	"github.com/stretchr/testify/require"
)

func TestSHA256Hex(t *testing.T) {
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hashutil.SHA256Hex(nil))
	require.Len(t, hashutil.SHA256Hex([]byte("image-data")), 64)
}

func TestShortETag(t *testing.T) {
	etag := hashutil.ShortETag([]byte("image-data"))
	require.Len(t, etag, 18)
	require.Equal(t, `"`, etag[:1])
	require.Equal(t, etag, hashutil.ShortETag([]byte("image-data")))
	require.NotEqual(t, etag, hashutil.ShortETag([]byte("other")))
}
