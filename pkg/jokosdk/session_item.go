package jokosdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FetchUserItems retrieves the user's item collection for their current job.
func (s *Session) FetchUserItems(ctx context.Context, userID int64) (*UserItemsResponse, error) {
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/item/users", query, nil)
	if err != nil {
		return nil, err
	}

	var items UserItemsResponse
	if err := decodeJSON(resp, &items, http.StatusOK); err != nil {
		return nil, err
	}
	return &items, nil
}
