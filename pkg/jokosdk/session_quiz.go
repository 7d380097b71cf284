package jokosdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// FetchQuizIDs lists the ids of the quizzes currently available.
func (s *Session) FetchQuizIDs(ctx context.Context) ([]int, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/quiz/ids", nil, nil)
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := decodeJSON(resp, &ids, http.StatusOK); err != nil {
		return nil, err
	}
	return ids, nil
}

// FetchQuiz retrieves a single quiz by id.
func (s *Session) FetchQuiz(ctx context.Context, id int) (*Quiz, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/quiz/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := decodeJSON(resp, &quiz, http.StatusOK); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// SubmitQuiz submits an answer for the current user. The user id rides as a
// query parameter, matching the backend's contract. Returns ErrUserIDUnknown
// when the session is valid but the token never carried a userId claim.
func (s *Session) SubmitQuiz(ctx context.Context, quizID, selectedIndex int) (*QuizSubmitResponse, error) {
	userID, ok := s.UserID()
	if !ok {
		return nil, ErrUserIDUnknown
	}

	body, err := jsonBody(quizSubmitRequest{QuizID: quizID, SelectedIndex: selectedIndex})
	if err != nil {
		return nil, err
	}

	query := url.Values{"id": {strconv.FormatInt(userID, 10)}}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/quiz/submit", query, body)
	if err != nil {
		return nil, err
	}

	var result QuizSubmitResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}
