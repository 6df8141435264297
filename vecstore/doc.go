// Package vecstore persists named vectors in a blob store.
//
// A Collection binds one element type and a key prefix to a
// blobstore.BlobStore. Vectors are written as snapshot blobs and
// indexed by a MANIFEST document, so a collection can be inspected
// (names, counts, element kinds, checksums) without fetching any
// vector payload.
//
// # Quick Start
//
//	store := blobstore.NewLocal("./data")
//	ratings := vecstore.NewCollection[float64]("ratings", store)
//
//	if err := ratings.Save(ctx, "week-34", v); err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := ratings.Load(ctx, "week-34")
//	if errors.Is(err, blobstore.ErrNotFound) {
//	    // never saved
//	}
//
// SaveAll and LoadAll move several vectors concurrently; bound the
// transfer rate by wrapping the store in blobstore.NewThrottled.
//
// Collections are safe for concurrent use as long as distinct vector
// names are written concurrently; the manifest itself is updated
// atomically.
package vecstore
