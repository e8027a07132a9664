package http

import (
	"github.com/quantumauth-io/payment-info/internal/payment"
)

type methodsResponse struct {
	Methods []payment.Method `json:"methods"`
	Count   int              `json:"count"`
}

type viewResponse struct {
	ID          string `json:"id"`
	CopiedIndex *int   `json:"copiedIndex"`
}

type copyResponse struct {
	ID          string         `json:"id"`
	CopiedIndex *int           `json:"copiedIndex"`
	Method      payment.Method `json:"method"`
	ExpiresInMs int64          `json:"expiresInMs,omitempty"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
