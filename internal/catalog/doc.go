// Package catalog persists product records in SQLite and exchanges them with
// the storefront's unified-products JSON format.
//
// The engine only reads records and proposes updates (main image paths and
// analysis metadata); record lifecycle belongs to the surrounding store
// tooling.
package catalog
