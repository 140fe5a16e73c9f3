package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrLoadCertificate      = errors.New("failed to load TLS certificate")
	ErrShutdown             = errors.New("server shutdown failed")
)
