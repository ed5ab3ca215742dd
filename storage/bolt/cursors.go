package bolt

import (
	"github.com/boltdb/bolt"
)

// walkNewest visits the values of a bucket from the last key to the first.
// The walk stops when visit returns false.
func walkNewest(bucket *bolt.Bucket, visit func(value []byte) bool) {
	cursor := bucket.Cursor()
	for key, value := cursor.Last(); key != nil; key, value = cursor.Prev() {
		if !visit(value) {
			return
		}
	}
}
