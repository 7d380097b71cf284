package jokosdk

import (
	"context"
	"net/http"
)

// FetchAllItems lists every shop item grouped by rank tier.
func (s *Session) FetchAllItems(ctx context.Context) ([]RankItemGroup, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/shop/all", nil, nil)
	if err != nil {
		return nil, err
	}

	var groups []RankItemGroup
	if err := decodeJSON(resp, &groups, http.StatusOK); err != nil {
		return nil, err
	}
	return groups, nil
}
