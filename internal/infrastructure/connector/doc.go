// Package connector implements clothing photo storage on Azure Blob Storage
// and on the local filesystem.
package connector
