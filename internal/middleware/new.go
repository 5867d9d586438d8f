package middleware

import (
	"time"

	"notes-api/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigin  string
	requestTimeout time.Duration
}

func New(l log.Logger, allowedOrigin string, requestTimeout time.Duration) Middleware {
	return Middleware{
		l:              l,
		allowedOrigin:  allowedOrigin,
		requestTimeout: requestTimeout,
	}
}
