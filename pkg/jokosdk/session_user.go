package jokosdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FetchUserID asks the backend for the authenticated user's id. This is the
// fallback for sessions whose token carried no userId claim.
func (s *Session) FetchUserID(ctx context.Context) (int64, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/user/id", nil, nil)
	if err != nil {
		return 0, err
	}

	var user userIDResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return 0, err
	}
	return user.UserID, nil
}

// FetchUserInfo retrieves profile and balance for the given user.
func (s *Session) FetchUserInfo(ctx context.Context, userID int64) (*UserInfoResponse, error) {
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/user/info", query, nil)
	if err != nil {
		return nil, err
	}

	var info UserInfoResponse
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// ChangeEra moves the user to a different historical era.
func (s *Session) ChangeEra(ctx context.Context, userID int64, era string) (*EraChangeResponse, error) {
	query := url.Values{
		"userId": {strconv.FormatInt(userID, 10)},
		"era":    {era},
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/user/change", query, nil)
	if err != nil {
		return nil, err
	}

	var change EraChangeResponse
	if err := decodeJSON(resp, &change, http.StatusOK); err != nil {
		return nil, err
	}
	return &change, nil
}
