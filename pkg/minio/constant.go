package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

// URLScheme prefixes object references passed around as strings, e.g. s3://bucket/path/file.jsonl.
const URLScheme = "s3://"
