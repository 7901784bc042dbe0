// Package ingestion turns faculty page URLs into stored profile records.
//
// A Pipeline fetches each page through a PageSource, runs the extraction
// strategies over the HTML, and stores the resulting profiles. Pages are
// processed independently on a worker pool: one page failing to fetch or
// parse is logged and skipped without failing the batch.
package ingestion
