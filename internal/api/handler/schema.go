package handler

import "time"

type errorResponse struct {
	Error string `json:"error"`
}

// --- auth ---

type credentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type sessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- profile ---

type profileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	IsPremium bool   `json:"is_premium"`
	Tier      string `json:"tier"`
}

// --- focus ---

type focusRequest struct {
	FocusText string `json:"focus_text" validate:"required"`
}

type focusItemResponse struct {
	ID        string    `json:"id"`
	FocusText string    `json:"focus_text"`
	CreatedAt time.Time `json:"created_at"`
}

type focusHistoryResponse struct {
	Current string              `json:"current"`
	Items   []focusItemResponse `json:"items"`
}

// --- ticker ---

type quoteResponse struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h float64 `json:"change_24h"`
	Trend     string  `json:"trend"`
}

type tickerResponse struct {
	Quotes    []quoteResponse `json:"quotes"`
	FetchedAt time.Time       `json:"fetched_at"`
	Stale     bool            `json:"stale"`
}

// --- links & billing ---

type linkResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// --- webhook ---

type webhookSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type webhookReceivedResponse struct {
	Received bool `json:"received"`
}
