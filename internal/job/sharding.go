package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes a serialized entity key to a stable small cardinality
// label (0-31) for metrics.
func ShardLabel(entityKey string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityKey))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
