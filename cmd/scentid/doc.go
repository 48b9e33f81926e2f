// Command scentid resolves product identity for catalog images: it
// cross-references numbered exports against descriptive images, derives names
// from analysis results, and keeps the product catalog in sync.
package main
