package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/matchllm/matchctl/internal/match"
)

// ErrEmptyRecipient is returned before any network call when an email send is
// attempted without a recipient.
var ErrEmptyRecipient = errors.New("recipient email is required")

// User is the public user record.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TokenResponse is the login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse wraps the authenticated user.
type MeResponse struct {
	User User `json:"user"`
}

// ProdutoRow is one saved product.
type ProdutoRow struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	AtributosJSON json.RawMessage `json:"atributos_json"`
	CriadoEm      string          `json:"criado_em,omitempty"`
}

// UploadEditalResponse is the tender upload acknowledgment.
type UploadEditalResponse struct {
	Message     string `json:"message,omitempty"`
	EditalID    int64  `json:"edital_id,omitempty"`
	TotalChunks int    `json:"total_chunks,omitempty"`
}

// UploadProdutoResponse is the datasheet upload acknowledgment.
type UploadProdutoResponse struct {
	Message string          `json:"message,omitempty"`
	Produto json.RawMessage `json:"produto,omitempty"`
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var user User
	body := map[string]string{"email": email, "password": password}
	if err := c.Do(ctx, http.MethodPost, "/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token in the session store.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", body, &token); err != nil {
		return nil, err
	}
	if err := c.session.Set(token.AccessToken); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp MeResponse
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListProdutos returns the saved products.
func (c *Client) ListProdutos(ctx context.Context) ([]ProdutoRow, error) {
	var rows []ProdutoRow
	if err := c.Do(ctx, http.MethodGet, "/produtos", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateProdutoJSON persists an already-extracted product.
func (c *Client) CreateProdutoJSON(ctx context.Context, produto match.Produto) (json.RawMessage, error) {
	var echo json.RawMessage
	if err := c.Do(ctx, http.MethodPost, "/produtos/json", produto, &echo); err != nil {
		return nil, err
	}
	return echo, nil
}

// UploadProdutoPDF uploads a datasheet PDF for server-side extraction.
func (c *Client) UploadProdutoPDF(ctx context.Context, filename string, data []byte) (*UploadProdutoResponse, error) {
	var resp UploadProdutoResponse
	fields := []MultipartField{{Name: "file", Filename: filename, Data: data}}
	if err := c.DoMultipart(ctx, "/produtos/upload", fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditalIDs lists the tender ids already indexed by the backend.
func (c *Client) EditalIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.Do(ctx, http.MethodGet, "/editais/ids", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// UploadEdital uploads one tender PDF for indexing.
func (c *Client) UploadEdital(ctx context.Context, filename string, data []byte) (*UploadEditalResponse, error) {
	var resp UploadEditalResponse
	fields := []MultipartField{{Name: "file", Filename: filename, Data: data}}
	if err := c.DoMultipart(ctx, "/editais/upload", fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MatchMultiple runs a product-vs-tenders matching request.
func (c *Client) MatchMultiple(ctx context.Context, req match.MatchMultipleRequest) (*match.MatchMultipleResponse, error) {
	var resp match.MatchMultipleResponse
	if err := c.Do(ctx, http.MethodPost, "/editais/match_multiple", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendEmail delivers an exported artifact as an email attachment via the
// backend. An empty recipient fails locally without touching the network.
func (c *Client) SendEmail(ctx context.Context, to, subject, bodyText, filename string, data []byte) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}
	fields := []MultipartField{
		{Name: "to_email", Value: strings.TrimSpace(to)},
		{Name: "subject", Value: subject},
		{Name: "body_text", Value: bodyText},
		{Name: "file", Filename: filename, Data: data},
	}
	return c.DoMultipart(ctx, "/editais/email", fields, nil)
}
