package jokosdk

// ============================================================================
// Auth
// ============================================================================

// TokenResponse is the body of a successful login or signup. Expiry fields
// are RFC 3339 strings as the backend formats them; the authoritative expiry
// for session checks is the exp claim inside the access token itself.
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	AccessTokenExpiresAt  string `json:"accessTokenExpiresAt"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresAt string `json:"refreshTokenExpiresAt"`
}

type loginRequest struct {
	AccountID string `json:"accountId"`
	Password  string `json:"password"`
}

type signUpRequest struct {
	Username  string `json:"username"`
	AccountID string `json:"accountId"`
	Password  string `json:"password"`
}

// ============================================================================
// Shop
// ============================================================================

// ShopItem is a single purchasable item.
type ShopItem struct {
	ItemID     int     `json:"itemId"`
	Name       string  `json:"name"`
	Price      int     `json:"price"`
	ImageURL   *string `json:"imageUrl"`
	UserItemID *int    `json:"userItemId,omitempty"`
}

// RankItemGroup groups shop items by rank tier.
type RankItemGroup struct {
	Rank  string     `json:"rank"`
	Items []ShopItem `json:"items"`
}

// FlattenItems collapses rank groups into a single item list in group order.
func FlattenItems(groups []RankItemGroup) []ShopItem {
	var items []ShopItem
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}

// ============================================================================
// Quiz
// ============================================================================

// Quiz is a single question with its answer options.
type Quiz struct {
	QuizID   int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Coin     int      `json:"coin"`
	ImageURL *string  `json:"imageUrl"`
}

type quizSubmitRequest struct {
	QuizID        int `json:"quizId"`
	SelectedIndex int `json:"selectedIndex"`
}

// QuizSubmitResponse reports whether the answer was correct and the reward.
type QuizSubmitResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	CoinReward    int    `json:"coinReward"`
}

// ============================================================================
// User
// ============================================================================

type userIDResponse struct {
	UserID int64 `json:"userId"`
}

// UserInfoResponse is the authenticated user's profile and balance.
type UserInfoResponse struct {
	UserID int64  `json:"userId"`
	Coin   int    `json:"coin"`
	Era    string `json:"era"`
	Job    string `json:"job"`
	Rank   string `json:"rank"`
}

// EraChangeResponse describes the historical event the user moved to.
type EraChangeResponse struct {
	Era              string  `json:"era"`
	EventName        string  `json:"eventName"`
	EventYear        int     `json:"eventYear"`
	EventDescription string  `json:"eventDescription"`
	Multiplier       float64 `json:"multiplier"`
}

// ============================================================================
// Items
// ============================================================================

// ItemInfo is one entry in a user's item collection.
type ItemInfo struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Owned    bool   `json:"owned"`
}

// UserItemsResponse is a user's collection progress for their current job.
type UserItemsResponse struct {
	Job        string     `json:"job"`
	TotalCount int        `json:"totalCount"`
	OwnedCount int        `json:"ownedCount"`
	Items      []ItemInfo `json:"items"`
}

// errorResponse is the backend's error body shape, parsed best-effort.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
