// Package client is the Go client for the HaatBazar Jobs API: a thin REST
// wrapper plus the stateful pieces the mobile and web frontends share
// (verification cache, action gate, booking manager, polling chat session).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNetwork wraps any transport-level failure. Callers branch on it to
// show a "check your connection" message instead of a backend one.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response decoded from the standard error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is the REST wrapper. It is safe for concurrent use once the token
// is set.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the JWT all subsequent calls carry.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if jsonErr := json.Unmarshal(data, &envelope); jsonErr == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Code = envelope.Code
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// --- wire types ---

type User struct {
	ID              string `json:"id"`
	FirebaseUID     string `json:"firebaseUid"`
	UserType        string `json:"userType"`
	DisplayName     string `json:"displayName"`
	Email           string `json:"email,omitempty"`
	PhoneNumber     string `json:"phoneNumber"`
	ProfileComplete bool   `json:"profileComplete"`
	IsVerified      bool   `json:"isVerified"`
	Status          string `json:"status"`
}

type JobOffer struct {
	ID               string   `json:"id"`
	OwnerFirebaseUID string   `json:"ownerFirebaseUid"`
	OwnerType        string   `json:"ownerType"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Skills           []string `json:"skills"`
	Area             string   `json:"area"`
	District         string   `json:"district"`
	Rate             float64  `json:"rate"`
	RateType         string   `json:"rateType"`
	PaymentType      string   `json:"paymentType"`
	Availability     string   `json:"availability"`
	IsApproved       bool     `json:"isApproved"`
	Status           string   `json:"status"`
}

type Booking struct {
	ID                  string     `json:"id"`
	EmployerFirebaseUID string     `json:"employerFirebaseUid"`
	WorkerFirebaseUID   string     `json:"workerFirebaseUid"`
	WorkerJobOfferID    string     `json:"workerJobOfferId"`
	JobTitle            string     `json:"jobTitle"`
	JobDescription      string     `json:"jobDescription"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	WorkDuration        string     `json:"workDuration"`
	AgreedRate          float64    `json:"agreedRate"`
	RateType            string     `json:"rateType"`
	TotalAmount         *float64   `json:"totalAmount,omitempty"`
	Area                string     `json:"area"`
	District            string     `json:"district"`
	Notes               string     `json:"notes,omitempty"`
	PaymentMethod       string     `json:"paymentMethod"`
	Status              string     `json:"status"`
}

type Chat struct {
	ID           string  `json:"id"`
	Participant1 string  `json:"participant1"`
	Participant2 string  `json:"participant2"`
	BookingID    *string `json:"bookingId,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"isRead"`
	Timestamp time.Time `json:"timestamp"`
}

// --- auth ---

func (c *Client) SendOTP(ctx context.Context, phoneNumber string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/send-otp",
		map[string]string{"phoneNumber": phoneNumber}, nil)
}

type VerifyOTPParams struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
	UserType    string `json:"userType,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) VerifyOTP(ctx context.Context, params VerifyOTPParams) (*AuthResult, error) {
	var resp AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", params, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) PhoneLogin(ctx context.Context, phoneNumber, password string) (*AuthResult, error) {
	var resp AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/phone-login",
		map[string]string{"phoneNumber": phoneNumber, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// GetUserProfile fetches the account flags the verification cache reads.
func (c *Client) GetUserProfile(ctx context.Context, firebaseUID string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile/"+url.PathEscape(firebaseUID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) CompleteProfile(ctx context.Context, firebaseUID string) error {
	return c.do(ctx, http.MethodPut, "/api/auth/profile/"+url.PathEscape(firebaseUID)+"/complete", nil, nil)
}

// --- offers ---

func (c *Client) ActiveWorkerOffers(ctx context.Context) ([]JobOffer, error) {
	var resp struct {
		JobOffers []JobOffer `json:"jobOffers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/worker-job-offers/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp.JobOffers, nil
}

// --- bookings ---

type CreateBookingParams struct {
	WorkerFirebaseUID string     `json:"workerFirebaseUid"`
	WorkerJobOfferID  string     `json:"workerJobOfferId"`
	JobTitle          string     `json:"jobTitle"`
	JobDescription    string     `json:"jobDescription,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	WorkDuration      string     `json:"workDuration,omitempty"`
	AgreedRate        float64    `json:"agreedRate,omitempty"`
	RateType          string     `json:"rateType,omitempty"`
	TotalAmount       *float64   `json:"totalAmount,omitempty"`
	Area              string     `json:"area,omitempty"`
	District          string     `json:"district,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	PaymentMethod     string     `json:"paymentMethod,omitempty"`
}

func (c *Client) CreateBooking(ctx context.Context, employerUID string, params CreateBookingParams) (*Booking, error) {
	var resp struct {
		Booking Booking `json:"booking"`
	}
	path := "/api/employer/" + url.PathEscape(employerUID) + "/bookings"
	if err := c.do(ctx, http.MethodPost, path, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (c *Client) EmployerBookings(ctx context.Context, employerUID, status string) ([]Booking, error) {
	return c.listBookings(ctx, "/api/employer/"+url.PathEscape(employerUID)+"/bookings", status)
}

func (c *Client) WorkerBookings(ctx context.Context, workerUID, status string) ([]Booking, error) {
	return c.listBookings(ctx, "/api/worker/"+url.PathEscape(workerUID)+"/bookings", status)
}

func (c *Client) listBookings(ctx context.Context, path, status string) ([]Booking, error) {
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var resp struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*Booking, error) {
	var resp struct {
		Booking Booking `json:"booking"`
	}
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// --- chat ---

func (c *Client) CreateOrGetChat(ctx context.Context, participant1, participant2 string, bookingID *string) (*Chat, error) {
	var resp struct {
		Chat Chat `json:"chat"`
	}
	body := map[string]interface{}{
		"participant1": participant1,
		"participant2": participant2,
	}
	if bookingID != nil {
		body["bookingId"] = *bookingID
	}
	if err := c.do(ctx, http.MethodPost, "/api/chats", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Chat, nil
}

func (c *Client) ChatMessages(ctx context.Context, chatID string) ([]Message, error) {
	var resp struct {
		Messages []Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chats/"+url.PathEscape(chatID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (c *Client) SendChatMessage(ctx context.Context, chatID, senderID, text string) (*Message, error) {
	var resp struct {
		Message Message `json:"message"`
	}
	path := "/api/chats/" + url.PathEscape(chatID) + "/messages"
	body := map[string]string{"senderId": senderID, "text": text}
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Message, nil
}

func (c *Client) MarkChatRead(ctx context.Context, chatID, firebaseUID string) error {
	path := "/api/chats/" + url.PathEscape(chatID) + "/read"
	return c.do(ctx, http.MethodPatch, path, map[string]string{"firebaseUid": firebaseUID}, nil)
}
