// Package client posts conference records to the external creation endpoint
// and classifies the outcome into transport failures, application-level
// rejections and malformed responses.
package client
