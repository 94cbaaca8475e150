// Package blobstore abstracts where the compiled lemma artifact lives.
//
// The artifact is produced once by the builder and then served, unchanged,
// to any number of readers. Stores therefore only need two operations:
// Put for the builder and Open for readers. Local files are memory-mapped;
// remote backends (MinIO, S3) serve range reads.
package blobstore
