package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/adapters/blobtest"
	"github.com/aretw0/scribe/pkg/adapters/mongo"
	"github.com/aretw0/scribe/pkg/core"
)

// The suite needs a reachable server: SCRIBE_TEST_MONGODB_URI=mongodb://localhost:27017
func TestStore_Contract(t *testing.T) {
	uri := os.Getenv("SCRIBE_TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("SCRIBE_TEST_MONGODB_URI not set")
	}

	n := 0
	blobtest.Run(t, func(t *testing.T) core.BlobStore {
		n++
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s, err := mongo.Connect(ctx, uri, fmt.Sprintf("scribe_test_%d_%d", time.Now().UnixNano(), n))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}
