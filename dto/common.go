package dto

import "github.com/mikosha12/Hulu-beand-mern-b/response"

// PaginatedResponse is one page of a listing together with its pagination
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
