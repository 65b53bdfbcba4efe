// Package response provides the uniform JSON envelope used by every API
// endpoint. Error messages that reach clients go through this package so
// internal details (DB errors, stack traces) never leak.
package response

// Envelope is the canonical body for all JSON responses.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for total items at the given limit.
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 && total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(data interface{}, msg string) Envelope {
	return Envelope{Success: true, Data: data, Message: msg}
}

func Page(data interface{}, p *Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: p}
}

func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}
